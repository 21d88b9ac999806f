package cmd

import (
	"fmt"
	"runtime"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/build"
	"github.com/devrun-sh/devrun/internal/ui"
)

func fullVersion() string {
	return fmt.Sprintf("%s (%s, %s/%s)", build.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func maybePrintBanner(gs *state.GlobalState) {
	if gs.Flags.Quiet {
		return
	}
	banner := ui.Banner()
	if !gs.Flags.NoColor && gs.Stdout.IsTTY {
		banner = BannerColor.Sprint(banner)
	}
	printToStdout(gs, fmt.Sprintf("\n%s\n\n", banner))
}

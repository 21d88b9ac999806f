package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/clean"
)

// coverage artifacts that live at the project root
var cleanRootFiles = []string{".coverage", "coverage.xml", "htmlcov"} //nolint:gochecknoglobals

type cleanCmd struct {
	gs *state.GlobalState
}

func (c *cleanCmd) run(_ *cobra.Command, _ []string) error {
	conf, err := getProjectConfig(c.gs)
	if err != nil {
		return err
	}

	cwd, err := c.gs.Getwd()
	if err != nil {
		return err
	}

	res, err := clean.Clean(c.gs.FS, cwd, clean.Options{
		DirPatterns: conf.CleanPatterns,
		Files:       cleanRootFiles,
		LogDir:      conf.LogDir.String,
		SkipDirs:    clean.DefaultSkipDirs(),
	})
	if err != nil {
		return err
	}

	for _, path := range res.Removed {
		c.gs.Logger.WithField("path", path).Debug("removed")
	}
	printToStdout(c.gs, fmt.Sprintf("Removed %d paths.\n", len(res.Removed)))
	return nil
}

func getCmdClean(gs *state.GlobalState) *cobra.Command {
	c := &cleanCmd{gs: gs}

	return &cobra.Command{
		Use:   "clean",
		Short: "Remove tool caches and logs",
		Long: `Remove the Python tool cache directories (__pycache__, .pytest_cache and
friends), the coverage artifacts and the contents of the log directory.
Running it on an already clean tree is a no-op.`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}
}

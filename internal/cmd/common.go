package cmd

import (
	"fmt"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/project"
)

// Panic if the given error is not nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func printToStdout(gs *state.GlobalState, s string) {
	if _, err := fmt.Fprint(gs.Stdout, s); err != nil {
		gs.Logger.Errorf("could not print '%s' to stdout: %s", s, err.Error())
	}
}

// parseMode turns a --mode flag value into a project.Mode, logging a warning
// and falling back to dev semantics when the value is not recognized.
func parseMode(gs *state.GlobalState, raw string) project.Mode {
	mode, ok := project.ParseMode(raw)
	if !ok {
		gs.Logger.Warnf("unknown mode %q, assuming %q", raw, mode)
	}
	return mode
}

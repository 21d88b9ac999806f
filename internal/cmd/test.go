package cmd

import (
	"github.com/spf13/cobra"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/pm"
	"github.com/devrun-sh/devrun/internal/proc"
	"github.com/devrun-sh/devrun/internal/project"
)

type testCmd struct {
	gs *state.GlobalState
}

func (c *testCmd) run(_ *cobra.Command, args []string) error {
	conf, err := getProjectConfig(c.gs)
	if err != nil {
		return err
	}

	mgr, err := pm.Detect(c.gs.LookPath, conf.PackageManager.String)
	if err != nil {
		return err
	}

	pytestArgs := []string{
		"--cov=" + conf.SourceDir.String,
		"--cov-report=term-missing",
	}
	// extra arguments go straight to pytest, e.g. `devrun test -- -k converters`
	pytestArgs = append(pytestArgs, args...)

	return c.gs.Runner.Run(c.gs.Ctx, proc.Command{
		Name: "pytest",
		Path: mgr.Path,
		Args: mgr.RunArgs("pytest", pytestArgs...),
		Env:  project.ChildEnv(c.gs.Env, project.ModeTest),
	})
}

func getCmdTest(gs *state.GlobalState) *cobra.Command {
	c := &testCmd{gs: gs}

	return &cobra.Command{
		Use:   "test [flags] [-- pytest args]",
		Short: "Run the test suite",
		Long: `Run pytest with coverage measurement enabled. Everything after -- is passed
through to pytest unchanged.`,
		RunE: c.run,
	}
}

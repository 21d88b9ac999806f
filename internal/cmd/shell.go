package cmd

import (
	"github.com/spf13/cobra"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/pm"
	"github.com/devrun-sh/devrun/internal/proc"
	"github.com/devrun-sh/devrun/internal/project"
)

type shellCmd struct {
	gs *state.GlobalState
}

func (c *shellCmd) run(_ *cobra.Command, _ []string) error {
	conf, err := getProjectConfig(c.gs)
	if err != nil {
		return err
	}

	mgr, err := pm.Detect(c.gs.LookPath, conf.PackageManager.String)
	if err != nil {
		return err
	}

	args := []string{"ipython", "--no-banner"}
	if conf.ShellStartup.Valid && conf.ShellStartup.String != "" {
		args = append(args, "-i", conf.ShellStartup.String)
	}

	return c.gs.Runner.Run(c.gs.Ctx, proc.Command{
		Name: "ipython",
		Path: mgr.Path,
		Args: mgr.RunArgs(args[0], args[1:]...),
		Env:  project.ChildEnv(c.gs.Env, project.DefaultMode),
	})
}

func getCmdShell(gs *state.GlobalState) *cobra.Command {
	c := &shellCmd{gs: gs}

	return &cobra.Command{
		Use:   "shell",
		Short: "Open an interactive Python shell",
		Long: `Open an ipython shell inside the project virtualenv, optionally running the
configured startup file first.`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}
}

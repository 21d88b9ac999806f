package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/pm"
	"github.com/devrun-sh/devrun/internal/proc"
	"github.com/devrun-sh/devrun/internal/project"
)

type installCmd struct {
	gs   *state.GlobalState
	mode string
}

func (c *installCmd) run(_ *cobra.Command, _ []string) error {
	conf, err := getProjectConfig(c.gs)
	if err != nil {
		return err
	}

	mgr, err := pm.Detect(c.gs.LookPath, conf.PackageManager.String)
	if err != nil {
		return err
	}

	mode := parseMode(c.gs, c.mode)
	c.gs.Logger.WithFields(logrus.Fields{
		"manager": mgr.Kind, "mode": mode,
	}).Debug("Installing dependencies")

	return c.gs.Runner.Run(c.gs.Ctx, proc.Command{
		Name: string(mgr.Kind),
		Path: mgr.Path,
		Args: mgr.InstallArgs(mode == project.ModeProd),
		Env:  project.ChildEnv(c.gs.Env, mode),
	})
}

func getCmdInstall(gs *state.GlobalState) *cobra.Command {
	c := &installCmd{gs: gs, mode: string(project.DefaultMode)}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install project dependencies",
		Long: `Install the project dependencies through the package manager.

In prod mode only the main dependency group is installed; dev and test modes
install everything, including the local tool groups.`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	cmd.Flags().StringVarP(&c.mode, "mode", "m", c.mode, "dependency set to install (dev, prod or test)")

	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/pm"
	"github.com/devrun-sh/devrun/internal/proc"
	"github.com/devrun-sh/devrun/internal/project"
)

type formatCmd struct {
	gs *state.GlobalState
}

func (c *formatCmd) run(_ *cobra.Command, _ []string) error {
	conf, err := getProjectConfig(c.gs)
	if err != nil {
		return err
	}

	mgr, err := pm.Detect(c.gs.LookPath, conf.PackageManager.String)
	if err != nil {
		return err
	}

	env := project.ChildEnv(c.gs.Env, project.DefaultMode)
	tools := [][]string{
		{"isort", "."},
		{"black", "."},
		{"ruff", "check", "--fix", "."},
	}
	cmds := make([]proc.Command, 0, len(tools))
	for _, tool := range tools {
		cmds = append(cmds, proc.Command{
			Name: tool[0],
			Path: mgr.Path,
			Args: mgr.RunArgs(tool[0], tool[1:]...),
			Env:  env,
		})
	}

	return proc.RunAll(c.gs.Ctx, c.gs.Runner, cmds...)
}

func getCmdFormat(gs *state.GlobalState) *cobra.Command {
	c := &formatCmd{gs: gs}

	return &cobra.Command{
		Use:   "format",
		Short: "Reformat the source tree",
		Long:  `Run isort, black and ruff --fix over the source tree, in that order.`,
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
}

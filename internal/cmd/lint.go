package cmd

import (
	"github.com/spf13/cobra"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/pm"
	"github.com/devrun-sh/devrun/internal/proc"
	"github.com/devrun-sh/devrun/internal/project"
)

// lintTools lists the lint sub-tools in the order they must run. The first
// failing tool aborts the rest and its exit code becomes devrun's.
func lintTools(srcDir string) [][]string {
	return [][]string{
		{"pyright", srcDir},
		{"isort", "--check-only", "."},
		{"black", "--check", "."},
		{"ruff", "check", "."},
		{"vulture", srcDir},
		{"bandit", "-r", srcDir},
	}
}

type lintCmd struct {
	gs *state.GlobalState
}

func (c *lintCmd) run(_ *cobra.Command, _ []string) error {
	conf, err := getProjectConfig(c.gs)
	if err != nil {
		return err
	}

	mgr, err := pm.Detect(c.gs.LookPath, conf.PackageManager.String)
	if err != nil {
		return err
	}

	env := project.ChildEnv(c.gs.Env, project.DefaultMode)
	tools := lintTools(conf.SourceDir.String)
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

func getCmdLint(gs *state.GlobalState) *cobra.Command {
	c := &lintCmd{gs: gs}

	return &cobra.Command{
		Use:   "lint",
		Short: "Run all lint checks",
		Long: `Run pyright, isort, black, ruff, vulture and bandit in a fixed order,
stopping at the first failing tool.`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}
}

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/pm"
	"github.com/devrun-sh/devrun/internal/proc"
	"github.com/devrun-sh/devrun/internal/project"
)

type runCmd struct {
	gs   *state.GlobalState
	mode string
}

func (c *runCmd) run(_ *cobra.Command, _ []string) error {
	conf, err := getProjectConfig(c.gs)
	if err != nil {
		return err
	}

	mgr, err := pm.Detect(c.gs.LookPath, conf.PackageManager.String)
	if err != nil {
		return err
	}

	mode := parseMode(c.gs, c.mode)

	args := []string{
		conf.App.String, "--factory",
		"--host", conf.Host.String,
		"--port", strconv.FormatInt(conf.Port.Int64, 10),
	}
	if mode == project.ModeProd {
		args = append(args, "--workers", strconv.FormatInt(conf.Workers.Int64, 10))
	} else {
		args = append(args, "--reload", "--log-level", "debug")
	}

	maybePrintBanner(c.gs)

	return c.gs.Runner.Run(c.gs.Ctx, proc.Command{
		Name: "uvicorn",
		Path: mgr.Path,
		Args: mgr.RunArgs("uvicorn", args...),
		Env:  project.ChildEnv(c.gs.Env, mode),
	})
}

func getCmdRun(gs *state.GlobalState) *cobra.Command {
	c := &runCmd{gs: gs, mode: string(project.DefaultMode)}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the web application",
		Long: `Start the ASGI application through uvicorn. In dev and test modes the server
watches the source tree and reloads on changes; in prod mode it runs with the
configured number of workers and no reloader.`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	cmd.Flags().StringVarP(&c.mode, "mode", "m", c.mode, "server mode (dev, prod or test)")

	return cmd
}

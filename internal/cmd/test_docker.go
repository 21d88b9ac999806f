package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/proc"
	"github.com/devrun-sh/devrun/internal/project"
)

type testDockerCmd struct {
	gs *state.GlobalState
}

func (c *testDockerCmd) run(_ *cobra.Command, _ []string) error {
	conf, err := getProjectConfig(c.gs)
	if err != nil {
		return err
	}

	cwd, err := c.gs.Getwd()
	if err != nil {
		return err
	}

	composeFile := conf.ComposeFile.String
	composePath := composeFile
	if !filepath.IsAbs(composePath) {
		composePath = filepath.Join(cwd, composePath)
	}

	service, err := project.ComposeService(c.gs.FS, composePath, conf.ComposeService.String)
	if err != nil {
		return err
	}

	env := project.ChildEnv(c.gs.Env, project.ModeTest)
	runErr := c.gs.Runner.Run(c.gs.Ctx, proc.Command{
		Name: "docker compose up",
		Path: "docker",
		Args: []string{
			"compose", "-f", composeFile, "up",
			"--build", "--abort-on-container-exit", "--exit-code-from", service,
		},
		Env: env,
	})

	// Tear the environment down even when the test run failed; a failing
	// teardown must not mask the test result.
	if derr := c.gs.Runner.Run(c.gs.Ctx, proc.Command{
		Name: "docker compose down",
		Path: "docker",
		Args: []string{"compose", "-f", composeFile, "down", "-v"},
		Env:  env,
	}); derr != nil {
		c.gs.Logger.WithError(derr).Warn("failed to tear down the docker test environment")
	}

	return runErr
}

func getCmdTestDocker(gs *state.GlobalState) *cobra.Command {
	c := &testDockerCmd{gs: gs}

	return &cobra.Command{
		Use:     "test-docker",
		Aliases: []string{"test_docker"},
		Short:   "Run the test suite in docker",
		Long: `Build and run the docker compose test environment, propagating the exit code
of the test service, then tear the environment down.`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}
}

package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devrun-sh/devrun/errext"
	"github.com/devrun-sh/devrun/internal/cmd/tests"
	"github.com/devrun-sh/devrun/lib/fsext"
)

const composeFixture = `services:
  tests:
    build: .
    command: pytest
`

func TestTestDockerUpThenDown(t *testing.T) {
	t.Parallel()

	ts := tests.NewGlobalTestState(t)
	require.NoError(t, fsext.WriteFile(ts.FS,
		ts.Cwd+"docker-compose.test.yml", []byte(composeFixture), 0o644))

	ts.CmdArgs = []string{"devrun", "test-docker"}
	newRootCommand(ts.GlobalState).execute()

	cmds := ts.Commands.Commands()
	require.Len(t, cmds, 2)

	assert.Equal(t, "docker", cmds[0].Path)
	assert.Equal(t, []string{
		"compose", "-f", "docker-compose.test.yml", "up",
		"--build", "--abort-on-container-exit", "--exit-code-from", "tests",
	}, cmds[0].Args)
	assert.Contains(t, cmds[0].Env, "PROJECT_RUN_MODE=test")

	assert.Equal(t, []string{
		"compose", "-f", "docker-compose.test.yml", "down", "-v",
	}, cmds[1].Args)
}

func TestTestDockerTearsDownAfterFailure(t *testing.T) {
	t.Parallel()

	ts := tests.NewGlobalTestState(t)
	require.NoError(t, fsext.WriteFile(ts.FS,
		ts.Cwd+"docker-compose.test.yml", []byte(composeFixture), 0o644))

	ts.Commands.FailWith = map[string]error{
		"docker compose up": errext.WithExitCodeIfNone(errors.New("tests exited with code 3"), 3),
	}
	ts.CmdArgs = []string{"devrun", "test-docker"}
	ts.ExpectedExitCode = 3

	newRootCommand(ts.GlobalState).execute()

	// the down still runs, and the up's exit code wins
	assert.Equal(t, []string{"docker compose up", "docker compose down"}, ts.Commands.Names())
}

func TestTestDockerAmbiguousService(t *testing.T) {
	t.Parallel()

	ts := tests.NewGlobalTestState(t)
	require.NoError(t, fsext.WriteFile(ts.FS,
		ts.Cwd+"docker-compose.test.yml",
		[]byte("services:\n  db: {}\n  tests: {}\n"), 0o644))

	ts.CmdArgs = []string{"devrun", "test-docker"}
	ts.ExpectedExitCode = -1

	newRootCommand(ts.GlobalState).execute()
	assert.Empty(t, ts.Commands.Commands())
}

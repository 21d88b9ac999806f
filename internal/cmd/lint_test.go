package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devrun-sh/devrun/errext"
	"github.com/devrun-sh/devrun/internal/cmd/tests"
)

func TestLintRunsToolsInOrder(t *testing.T) {
	t.Parallel()

	ts := tests.NewGlobalTestState(t)
	ts.CmdArgs = []string{"devrun", "lint"}
	newRootCommand(ts.GlobalState).execute()

	assert.Equal(t,
		[]string{"pyright", "isort", "black", "ruff", "vulture", "bandit"},
		ts.Commands.Names())

	cmds := ts.Commands.Commands()
	require.Len(t, cmds, 6)
	assert.Equal(t, []string{"run", "pyright", "src"}, cmds[0].Args)
	assert.Equal(t, []string{"run", "isort", "--check-only", "."}, cmds[1].Args)
	assert.Equal(t, []string{"run", "black", "--check", "."}, cmds[2].Args)
}

func TestLintStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	ts := tests.NewGlobalTestState(t)
	ts.Commands.FailWith = map[string]error{
		"black": errext.WithExitCodeIfNone(errors.New("black exited with code 1"), 1),
	}
	ts.CmdArgs = []string{"devrun", "lint"}
	ts.ExpectedExitCode = 1

	newRootCommand(ts.GlobalState).execute()

	// ruff, vulture and bandit must not run after black failed
	assert.Equal(t, []string{"pyright", "isort", "black"}, ts.Commands.Names())
}

func TestFormatToolOrder(t *testing.T) {
	t.Parallel()

	ts := tests.NewGlobalTestState(t)
	ts.CmdArgs = []string{"devrun", "format"}
	newRootCommand(ts.GlobalState).execute()

	assert.Equal(t, []string{"isort", "black", "ruff"}, ts.Commands.Names())

	cmds := ts.Commands.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, []string{"run", "ruff", "check", "--fix", "."}, cmds[2].Args)
}

package cmd

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devrun-sh/devrun/internal/cmd/tests"
	"github.com/devrun-sh/devrun/internal/lib/testutils"
)

func TestRunModeFlagSelection(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		extraArgs       []string
		wantArgsContain []string
		wantArgsMissing []string
		wantRunMode     string
		wantWarning     string
	}{
		{
			name:            "dev mode reloads on changes",
			wantArgsContain: []string{"--reload"},
			wantArgsMissing: []string{"--workers"},
			wantRunMode:     "PROJECT_RUN_MODE=dev",
		},
		{
			name:            "prod mode uses workers and no reloader",
			extraArgs:       []string{"--mode", "prod"},
			wantArgsContain: []string{"--workers", "4"},
			wantArgsMissing: []string{"--reload"},
			wantRunMode:     "PROJECT_RUN_MODE=prod",
		},
		{
			name:            "test mode behaves like dev",
			extraArgs:       []string{"--mode", "test"},
			wantArgsContain: []string{"--reload"},
			wantArgsMissing: []string{"--workers"},
			wantRunMode:     "PROJECT_RUN_MODE=test",
		},
		{
			name:            "unknown mode warns and falls back to dev",
			extraArgs:       []string{"--mode", "staging"},
			wantArgsContain: []string{"--reload"},
			wantArgsMissing: []string{"--workers"},
			wantRunMode:     "PROJECT_RUN_MODE=dev",
			wantWarning:     `unknown mode "staging"`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ts := tests.NewGlobalTestState(t)
			ts.CmdArgs = append([]string{"devrun", "run"}, tc.extraArgs...)
			newRootCommand(ts.GlobalState).execute()

			cmds := ts.Commands.Commands()
			require.Len(t, cmds, 1)
			assert.Equal(t, "uvicorn", cmds[0].Name)
			assert.Equal(t, "/usr/bin/poetry", cmds[0].Path)

			wantPrefix := []string{
				"run", "uvicorn", "src.app.main:get_application", "--factory",
				"--host", "127.0.0.1", "--port", "8000",
			}
			require.GreaterOrEqual(t, len(cmds[0].Args), len(wantPrefix))
			assert.Equal(t, wantPrefix, cmds[0].Args[:len(wantPrefix)])

			for _, arg := range tc.wantArgsContain {
				assert.Contains(t, cmds[0].Args, arg)
			}
			for _, arg := range tc.wantArgsMissing {
				assert.NotContains(t, cmds[0].Args, arg)
			}
			assert.Contains(t, cmds[0].Env, tc.wantRunMode)

			if tc.wantWarning != "" {
				assert.True(t, testutils.LogContains(ts.LoggerHook.Drain(), logrus.WarnLevel, tc.wantWarning))
			}
		})
	}
}

func TestRunConfigOverrides(t *testing.T) {
	t.Parallel()

	ts := tests.NewGlobalTestState(t)
	ts.Env["DEVRUN_APP"] = "app.factory:create_app"
	ts.Env["DEVRUN_PORT"] = "9000"
	ts.CmdArgs = []string{"devrun", "run"}

	newRootCommand(ts.GlobalState).execute()

	cmds := ts.Commands.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "app.factory:create_app", cmds[0].Args[2])
	assert.Contains(t, cmds[0].Args, "9000")
}

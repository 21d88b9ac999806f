// Package tests contains the test state harness for devrun's CLI tests.
package tests

import (
	"bytes"
	"context"
	"os"
	"runtime"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/lib/testutils"
	"github.com/devrun-sh/devrun/internal/lib/testutils/proctest"
	"github.com/devrun-sh/devrun/internal/ui/console"
	"github.com/devrun-sh/devrun/lib/fsext"
)

// GlobalTestState is a wrapper around GlobalState with an in-memory
// filesystem, recorded output streams, a recording subprocess runner and a
// faked OS exit.
type GlobalTestState struct {
	*state.GlobalState
	Cancel func()

	Stdout, Stderr *bytes.Buffer
	Stdin          *bytes.Buffer
	LoggerHook     *testutils.SimpleLogrusHook

	// Commands records every external command a task composed.
	Commands *proctest.RecordingRunner

	Cwd string

	ExpectedExitCode int
}

// NewGlobalTestState returns an initialized GlobalTestState, mocking all
// of the in-process state as needed for a typical CLI test.
func NewGlobalTestState(t testing.TB) *GlobalTestState {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	fs := fsext.NewMemMapFs()
	cwd := "/test/"
	if runtime.GOOS == "windows" {
		cwd = "c:\\test\\"
	}
	require.NoError(t, fs.MkdirAll(cwd, 0o755))

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetOutput(testutils.NewTestOutput(t))
	hook := testutils.NewLogHook()
	logger.AddHook(hook)

	ts := &GlobalTestState{
		Cwd:        cwd,
		Cancel:     cancel,
		LoggerHook: hook,
		Stdout:     new(bytes.Buffer),
		Stderr:     new(bytes.Buffer),
		Stdin:      new(bytes.Buffer),
		Commands:   &proctest.RecordingRunner{},
	}

	defaultFlags := state.GetDefaultFlags()
	flags := defaultFlags
	flags.NoColor = true

	outMutex := &sync.Mutex{}
	ts.GlobalState = &state.GlobalState{
		Ctx:          ctx,
		FS:           fs,
		Getwd:        func() (string, error) { return ts.Cwd, nil },
		BinaryName:   "devrun",
		CmdArgs:      []string{},
		Env:          map[string]string{"DEVRUN_NO_COLOR": "true"},
		DefaultFlags: defaultFlags,
		Flags:        flags,
		OutMutex:     outMutex,
		Stdout: &console.Writer{
			RawOut: ts.Stdout, Mutex: outMutex, Writer: ts.Stdout, IsTTY: false,
		},
		Stderr: &console.Writer{
			RawOut: ts.Stderr, Mutex: outMutex, Writer: ts.Stderr, IsTTY: false,
		},
		Stdin: ts.Stdin,
		LookPath: func(file string) (string, error) {
			return "/usr/bin/" + file, nil
		},
		Runner: ts.Commands,
		OSExit: func(exitCode int) {
			require.Equal(t, ts.ExpectedExitCode, exitCode)
		},
		SignalNotify:   func(chan<- os.Signal, ...os.Signal) {},
		SignalStop:     func(chan<- os.Signal) {},
		Logger:         logger,
		FallbackLogger: testutils.NewLogger(t),
	}

	return ts
}

package proc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/devrun-sh/devrun/errext"
	"github.com/devrun-sh/devrun/errext/exitcodes"
)

// Runner executes external commands one at a time.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// Options configures the OS-backed Runner.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Logger logrus.FieldLogger

	SignalNotify func(chan<- os.Signal, ...os.Signal)
	SignalStop   func(chan<- os.Signal)
}

// NewRunner returns a Runner that actually executes commands as OS
// subprocesses. Streams and signal handling default to the real OS ones when
// they are not set in opts.
func NewRunner(opts Options) Runner {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.SignalNotify == nil {
		opts.SignalNotify = signal.Notify
	}
	if opts.SignalStop == nil {
		opts.SignalStop = signal.Stop
	}
	return &osRunner{opts: opts}
}

type osRunner struct {
	opts Options
}

func (r *osRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...) //nolint:gosec

	// The OS streams are passed through so interactive tools (ipython, the
	// uvicorn reloader) detect the terminal type correctly.
	cmd.Stdout = r.opts.Stdout
	cmd.Stderr = r.opts.Stderr
	cmd.Stdin = r.opts.Stdin
	cmd.Env = c.Env
	cmd.Dir = c.Dir

	sigC := make(chan os.Signal, 2)
	r.opts.SignalNotify(sigC, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer r.opts.SignalStop(sigC)

	r.opts.Logger.WithField("cmd", c.CommandLine()).Debugf("Running %s", c.Name)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start %s: %w", c.Name, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	for {
		select {
		case err := <-done:
			return wrapExitError(c, err)
		case sig := <-sigC:
			// The subprocess shares the terminal's foreground process group,
			// so it receives the signal directly. Keep waiting for it to
			// handle the signal and return.
			r.opts.Logger.WithField("signal", sig.String()).
				Debug("Signal received, waiting for the subprocess to handle it and return.")
		}
	}
}

// wrapExitError attaches the subprocess exit code to the error, so it can
// bubble up and become devrun's own exit code.
func wrapExitError(c Command, err error) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ExitCode() > 0 && ee.ExitCode() <= 125 {
		return errext.WithExitCodeIfNone(
			fmt.Errorf("%s exited with code %d", c.Name, ee.ExitCode()),
			exitcodes.ExitCode(ee.ExitCode()),
		)
	}
	return fmt.Errorf("%s: %w", c.Name, err)
}

// RunAll runs the given commands in order, stopping at the first failing one.
func RunAll(ctx context.Context, r Runner, cmds ...Command) error {
	for _, c := range cmds {
		if err := r.Run(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

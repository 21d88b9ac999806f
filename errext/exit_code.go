package errext

import (
	"errors"

	"github.com/devrun-sh/devrun/errext/exitcodes"
)

// HasExitCode is an error with an attached process exit code. When such an
// error bubbles up to the root command, devrun exits with that code, so a
// failing wrapped tool decides the exit status of the whole task.
type HasExitCode interface {
	error
	ExitCode() exitcodes.ExitCode
}

// WithExitCodeIfNone attaches exitCode to the given error, unless some error
// in its chain already carries one. The first attached code wins: a tool's
// own exit code is never overwritten by the more generic codes of the layers
// above it. A nil error stays nil.
func WithExitCodeIfNone(err error, exitCode exitcodes.ExitCode) error {
	if err == nil {
		return nil
	}
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		return err
	}
	return withExitCode{err, exitCode}
}

type withExitCode struct {
	error
	exitCode exitcodes.ExitCode
}

func (wh withExitCode) Unwrap() error {
	return wh.error
}

func (wh withExitCode) ExitCode() exitcodes.ExitCode {
	return wh.exitCode
}

var _ HasExitCode = withExitCode{}

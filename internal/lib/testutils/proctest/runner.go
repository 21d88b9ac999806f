// Package proctest provides a proc.Runner replacement for tests.
package proctest

import (
	"context"
	"sync"

	"github.com/devrun-sh/devrun/internal/proc"
)

// RecordingRunner captures the commands that an execution would have run,
// instead of actually running them. The zero value is ready to use.
type RecordingRunner struct {
	mx       sync.Mutex
	commands []proc.Command

	// FailWith maps a command Name to the error that its execution returns,
	// for simulating failing external tools.
	FailWith map[string]error
}

var _ proc.Runner = &RecordingRunner{}

// Run records the command and returns the scripted error, if any.
func (r *RecordingRunner) Run(_ context.Context, c proc.Command) error {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.commands = append(r.commands, c)
	if err, ok := r.FailWith[c.Name]; ok {
		return err
	}
	return nil
}

// Commands returns a copy of everything recorded so far.
func (r *RecordingRunner) Commands() []proc.Command {
	r.mx.Lock()
	defer r.mx.Unlock()
	res := make([]proc.Command, len(r.commands))
	copy(res, r.commands)
	return res
}

// Names returns just the Name of every recorded command, in order.
func (r *RecordingRunner) Names() []string {
	cmds := r.Commands()
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

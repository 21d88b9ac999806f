package proc

import (
	"context"
	"fmt"
	"io"
)

// NewPrintRunner returns a Runner that only prints the command lines it would
// have executed, one per line. It backs the --dry-run global flag.
func NewPrintRunner(out io.Writer) Runner {
	return printRunner{out: out}
}

type printRunner struct {
	out io.Writer
}

func (r printRunner) Run(_ context.Context, c Command) error {
	_, err := fmt.Fprintln(r.out, c.CommandLine())
	return err
}

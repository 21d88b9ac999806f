// Package proc executes the external tools devrun wraps. Commands always run
// one at a time, sequentially, sharing the parent's terminal.
package proc

import (
	"strings"
)

// Command describes a single external tool invocation. Args does not include
// the binary itself.
type Command struct {
	// Name is the short tool name used in logs and error messages, e.g.
	// "black" or "uvicorn", even when the tool actually runs through the
	// package manager binary.
	Name string
	// Path is the binary to execute, either absolute or resolved through the
	// PATH by the OS.
	Path string
	Args []string
	// Env is the complete child environment in KEY=VALUE form. A nil Env
	// means the child inherits the parent environment untouched.
	Env []string
	Dir string
}

// CommandLine returns a shell-like rendering of the command, used for logs
// and for --dry-run output.
func (c Command) CommandLine() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteArg(c.Path))
	for _, arg := range c.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\"'") {
		return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
	}
	return arg
}

// Package console contains TTY-aware output streams shared by all devrun
// subcommands.
package console

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// DefaultWidth is used for usage wrapping when the output is not a terminal
// or its size cannot be determined.
const DefaultWidth = 120

// Writer wraps an output stream with a mutex, so that concurrent writes from
// the logger and from subcommands do not interleave, and remembers whether
// the stream is a real TTY.
type Writer struct {
	RawOut io.Writer // the original, unwrapped OS stream
	Mutex  *sync.Mutex
	Writer io.Writer
	IsTTY  bool
}

func (w *Writer) Write(p []byte) (n int, err error) {
	origLen := len(p)
	w.Mutex.Lock()
	n, err = w.Writer.Write(p)
	w.Mutex.Unlock()

	if err != nil && n < origLen {
		return n, err
	}
	return origLen, nil
}

// Width returns the current terminal width of the wrapped stream, or
// DefaultWidth when the stream is not a terminal.
func (w *Writer) Width() int {
	f, ok := w.RawOut.(*os.File)
	if !ok || !w.IsTTY {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// devrun is a task runner for Python service projects: one binary wrapping
// the package manager, the linters, the test runner and the ASGI server
// behind stable task names.
package main

import (
	"context"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/internal/cmd"
)

func main() {
	gs := state.NewGlobalState(context.Background())
	cmd.ExecuteWithGlobalState(gs)
}

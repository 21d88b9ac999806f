// Package pm abstracts the Python package managers devrun can drive.
package pm

import (
	"errors"
	"fmt"

	"github.com/devrun-sh/devrun/errext"
	"github.com/devrun-sh/devrun/errext/exitcodes"
)

// Kind enumerates the supported Python package managers.
type Kind string

// The supported package managers, in detection order.
const (
	Poetry Kind = "poetry"
	PDM    Kind = "pdm"
)

// ErrNotFound is returned when no supported package manager binary can be
// found on the PATH. It carries the MissingPackageManager exit code.
var ErrNotFound = errors.New("no supported Python package manager found in PATH")

// LookPathFunc mirrors exec.LookPath, so detection can be replaced in tests.
type LookPathFunc func(file string) (string, error)

// Manager is a resolved package manager binary.
type Manager struct {
	Kind Kind
	Path string
}

// Detect resolves the package manager to drive. A non-empty preferred value
// pins the manager (and is validated), otherwise poetry and pdm are tried in
// order. The returned errors carry exit codes, a missing binary aborts the
// whole task with code 2.
func Detect(lookPath LookPathFunc, preferred string) (Manager, error) {
	candidates := []Kind{Poetry, PDM}
	if preferred != "" {
		k := Kind(preferred)
		if k != Poetry && k != PDM {
			return Manager{}, errext.WithExitCodeIfNone(
				fmt.Errorf("unsupported package manager %q, only %q and %q can be used", preferred, Poetry, PDM),
				exitcodes.InvalidConfig,
			)
		}
		candidates = []Kind{k}
	}

	for _, k := range candidates {
		path, err := lookPath(string(k))
		if err == nil {
			return Manager{Kind: k, Path: path}, nil
		}
	}

	err := errext.WithHint(ErrNotFound,
		"install poetry (https://python-poetry.org) or pdm (https://pdm-project.org), "+
			"or pin one with packageManager in devrun.json")
	return Manager{}, errext.WithExitCodeIfNone(err, exitcodes.MissingPackageManager)
}

// InstallArgs composes the dependency installation arguments. With prodOnly
// the development and local tool dependency groups are excluded.
func (m Manager) InstallArgs(prodOnly bool) []string {
	switch m.Kind {
	case PDM:
		if prodOnly {
			return []string{"install", "--prod"}
		}
		return []string{"install", "--dev"}
	default: // poetry
		if prodOnly {
			return []string{"install", "--only", "main", "--no-interaction"}
		}
		return []string{"install", "--no-interaction"}
	}
}

// RunArgs returns the argument vector that runs tool with the given args
// inside the managed virtualenv.
func (m Manager) RunArgs(tool string, args ...string) []string {
	return append([]string{"run", tool}, args...)
}

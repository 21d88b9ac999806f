// Package exitcodes contains the constants representing the exit codes devrun
// itself can produce. Exit codes of wrapped external tools are propagated
// as-is and are not listed here.
package exitcodes

// ExitCode is just a type representing a process exit code for devrun.
type ExitCode uint8

// List of exit codes used by devrun. Values should stay between 0 and 125:
// https://unix.stackexchange.com/questions/418784/what-is-the-min-and-max-values-of-exit-codes-in-linux
const (
	// MissingPackageManager is returned when neither poetry nor pdm (or the
	// explicitly configured manager) can be found on the PATH.
	MissingPackageManager ExitCode = 2

	InvalidConfig ExitCode = 104
	GoPanic       ExitCode = 105
)

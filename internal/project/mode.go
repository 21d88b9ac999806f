// Package project holds the per-project configuration of devrun: the run
// mode, the consolidated config values and the docker compose metadata.
package project

import "sort"

// Mode selects between the dev, prod and test behavior variants of the
// mode-aware tasks.
type Mode string

// The supported modes.
const (
	ModeDev  Mode = "dev"
	ModeProd Mode = "prod"
	ModeTest Mode = "test"
)

// DefaultMode is used when a task is invoked without an explicit mode and as
// the fallback for unrecognized mode values.
const DefaultMode = ModeDev

// RunModeEnvVar is exported into every child process spawned by a task, so
// the wrapped application and its tests can tell which variant they run in.
const RunModeEnvVar = "PROJECT_RUN_MODE"

// ParseMode parses s as a Mode. When s is not a known mode, it returns
// DefaultMode and false; callers are expected to warn the user about the
// fallback.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeDev, ModeProd, ModeTest:
		return Mode(s), true
	}
	return DefaultMode, false
}

func (m Mode) String() string {
	return string(m)
}

// ChildEnv flattens the given environment into KEY=VALUE pairs with
// RunModeEnvVar set to mode, overriding any inherited value. The result is
// sorted so command composition stays deterministic.
func ChildEnv(env map[string]string, mode Mode) []string {
	res := make([]string, 0, len(env)+1)
	for k, v := range env {
		if k == RunModeEnvVar {
			continue
		}
		res = append(res, k+"="+v)
	}
	res = append(res, RunModeEnvVar+"="+string(mode))
	sort.Strings(res)
	return res
}

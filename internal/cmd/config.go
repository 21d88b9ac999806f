package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/devrun-sh/devrun/cmd/state"
	"github.com/devrun-sh/devrun/errext"
	"github.com/devrun-sh/devrun/errext/exitcodes"
	"github.com/devrun-sh/devrun/internal/project"
	"github.com/devrun-sh/devrun/lib/fsext"
)

// readDiskConfig reads the raw devrun.json contents, if the file exists. A
// missing config file is fine, the defaults and the environment cover it.
func readDiskConfig(gs *state.GlobalState) ([]byte, error) {
	path := gs.Flags.ConfigFilePath
	if !filepath.IsAbs(path) {
		cwd, err := gs.Getwd()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(cwd, path)
	}

	data, err := fsext.ReadFile(gs.FS, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errext.WithExitCodeIfNone(
			fmt.Errorf("couldn't read the config file %s: %w", path, err),
			exitcodes.InvalidConfig,
		)
	}
	return data, nil
}

// getProjectConfig consolidates the defaults, the config file and the
// DEVRUN_* environment variables into the effective project config.
func getProjectConfig(gs *state.GlobalState) (project.Config, error) {
	raw, err := readDiskConfig(gs)
	if err != nil {
		return project.Config{}, err
	}

	conf, err := project.GetConsolidatedConfig(raw, gs.Env)
	if err != nil {
		return conf, errext.WithExitCodeIfNone(err, exitcodes.InvalidConfig)
	}
	return conf, nil
}

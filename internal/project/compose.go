package project

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/devrun-sh/devrun/lib/fsext"
)

// composeFile is the subset of the docker compose file format devrun needs:
// just the service names.
type composeFile struct {
	Services map[string]yaml.Node `yaml:"services"`
}

// ComposeService returns the service whose exit code decides the outcome of
// `devrun test-docker`. When the config doesn't pin one, the compose file is
// parsed and, with exactly one service defined, that service is used.
func ComposeService(fs fsext.Fs, path, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	data, err := fsext.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("could not read compose file %s: %w", path, err)
	}

	var cf composeFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return "", fmt.Errorf("could not parse compose file %s: %w", path, err)
	}

	if len(cf.Services) == 0 {
		return "", fmt.Errorf("compose file %s defines no services", path)
	}

	names := make([]string, 0, len(cf.Services))
	for name := range cf.Services {
		names = append(names, name)
	}
	if len(names) > 1 {
		sort.Strings(names)
		return "", fmt.Errorf(
			"compose file %s defines %d services (%v), set composeService to pick the one to watch",
			path, len(names), names)
	}

	return names[0], nil
}

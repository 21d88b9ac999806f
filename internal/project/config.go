package project

import (
	"encoding/json"

	"github.com/mstoykov/envconfig"
	"gopkg.in/guregu/null.v3"
)

// Config describes everything devrun needs to know about the wrapped Python
// project. All fields are nullable so that config consolidation can tell
// "not set" apart from zero values.
type Config struct {
	// PackageManager pins the manager instead of auto-detection, "poetry" or "pdm".
	PackageManager null.String `json:"packageManager" envconfig:"DEVRUN_PACKAGE_MANAGER"`

	// App is the ASGI application factory import string passed to uvicorn.
	App     null.String `json:"app" envconfig:"DEVRUN_APP"`
	Host    null.String `json:"host" envconfig:"DEVRUN_HOST"`
	Port    null.Int    `json:"port" envconfig:"DEVRUN_PORT"`
	Workers null.Int    `json:"workers" envconfig:"DEVRUN_WORKERS"`

	// SourceDir is the package the linters, vulture/bandit scans and the
	// pytest coverage measurement point at.
	SourceDir null.String `json:"sourceDir" envconfig:"DEVRUN_SOURCE_DIR"`

	LogDir null.String `json:"logDir" envconfig:"DEVRUN_LOG_DIR"`

	// CleanPatterns are the directory base names `devrun clean` removes
	// wherever they appear in the tree.
	CleanPatterns []string `json:"cleanPatterns" envconfig:"DEVRUN_CLEAN_PATTERNS"`

	ComposeFile    null.String `json:"composeFile" envconfig:"DEVRUN_COMPOSE_FILE"`
	ComposeService null.String `json:"composeService" envconfig:"DEVRUN_COMPOSE_SERVICE"`

	// ShellStartup is an optional Python file executed before the ipython
	// prompt shows up.
	ShellStartup null.String `json:"shellStartup" envconfig:"DEVRUN_SHELL_STARTUP"`
}

// NewConfig returns the default project configuration.
func NewConfig() Config {
	return Config{
		App:       null.NewString("src.app.main:get_application", false),
		Host:      null.NewString("127.0.0.1", false),
		Port:      null.NewInt(8000, false),
		Workers:   null.NewInt(4, false),
		SourceDir: null.NewString("src", false),
		LogDir:    null.NewString("logs", false),
		CleanPatterns: []string{
			"__pycache__", ".pytest_cache", ".mypy_cache", ".ruff_cache",
		},
		ComposeFile: null.NewString("docker-compose.test.yml", false),
	}
}

// Apply overlays the set fields of cfg on top of c and returns the result.
func (c Config) Apply(cfg Config) Config {
	if cfg.PackageManager.Valid && cfg.PackageManager.String != "" {
		c.PackageManager = cfg.PackageManager
	}
	if cfg.App.Valid && cfg.App.String != "" {
		c.App = cfg.App
	}
	if cfg.Host.Valid && cfg.Host.String != "" {
		c.Host = cfg.Host
	}
	if cfg.Port.Valid {
		c.Port = cfg.Port
	}
	if cfg.Workers.Valid {
		c.Workers = cfg.Workers
	}
	if cfg.SourceDir.Valid && cfg.SourceDir.String != "" {
		c.SourceDir = cfg.SourceDir
	}
	if cfg.LogDir.Valid {
		c.LogDir = cfg.LogDir
	}
	if len(cfg.CleanPatterns) > 0 {
		c.CleanPatterns = cfg.CleanPatterns
	}
	if cfg.ComposeFile.Valid && cfg.ComposeFile.String != "" {
		c.ComposeFile = cfg.ComposeFile
	}
	if cfg.ComposeService.Valid && cfg.ComposeService.String != "" {
		c.ComposeService = cfg.ComposeService
	}
	if cfg.ShellStartup.Valid {
		c.ShellStartup = cfg.ShellStartup
	}
	return c
}

// GetConsolidatedConfig combines the default config values with the JSON from
// the config file (if any) and the DEVRUN_* environment variables, in that
// order of precedence.
func GetConsolidatedConfig(jsonRawConf []byte, env map[string]string) (Config, error) {
	result := NewConfig()

	if jsonRawConf != nil {
		jsonConf := Config{}
		if err := json.Unmarshal(jsonRawConf, &jsonConf); err != nil {
			return result, err
		}
		result = result.Apply(jsonConf)
	}

	envConfig := Config{}
	if err := envconfig.Process("", &envConfig, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}); err != nil {
		return result, err
	}
	result = result.Apply(envConfig)

	return result, nil
}

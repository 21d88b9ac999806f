package state

// The config file is looked up relative to the project root by default,
// since devrun configuration is per-project, not per-user.
const defaultConfigFileName = "devrun.json"

// GlobalFlags contains global config values that apply to all devrun
// sub-commands.
type GlobalFlags struct {
	ConfigFilePath string
	Quiet          bool
	NoColor        bool
	Verbose        bool
	DryRun         bool
	LogOutput      string
	LogFormat      string
}

// GetDefaultFlags returns the default global flags.
func GetDefaultFlags() GlobalFlags {
	return GlobalFlags{
		ConfigFilePath: defaultConfigFileName,
		LogOutput:      "stderr",
	}
}

func getFlags(defaultFlags GlobalFlags, env map[string]string) GlobalFlags {
	result := defaultFlags

	if val, ok := env["DEVRUN_CONFIG"]; ok {
		result.ConfigFilePath = val
	}
	if val, ok := env["DEVRUN_LOG_OUTPUT"]; ok {
		result.LogOutput = val
	}
	if val, ok := env["DEVRUN_LOG_FORMAT"]; ok {
		result.LogFormat = val
	}
	if env["DEVRUN_NO_COLOR"] != "" {
		result.NoColor = true
	}
	// Support https://no-color.org/, even an empty value should disable the
	// color output from devrun.
	if _, ok := env["NO_COLOR"]; ok {
		result.NoColor = true
	}
	return result
}

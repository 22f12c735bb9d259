package shell

import (
	"routerswitch/config"
	"routerswitch/internal/envcmd"
)

// GenerateClearEnvironmentCommands loads the config at path and returns the
// POSIX lines that clear provider. An unknown provider yields no lines.
func GenerateClearEnvironmentCommands(path, provider string) ([]string, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return RenderAll(POSIX{}, envcmd.ClearCommands(cfg, provider)), nil
}

// GenerateSetEnvironmentCommands loads the config at path and returns the
// POSIX lines that activate provider with model ("" for the default).
func GenerateSetEnvironmentCommands(path, provider, model string) ([]string, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	stmts, err := envcmd.SetCommands(cfg, provider, model)
	if err != nil {
		return nil, err
	}
	return RenderAll(POSIX{}, stmts), nil
}

package config

import (
	"fmt"
	"strings"
)

// ConfigError reports a config file that could not be read or parsed
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SchemaError reports well-formed JSON that does not match the provider schema.
// It unwraps to a *ConfigError so callers can match either kind.
type SchemaError struct {
	Path  string
	Field string // gjson path of the offending value, e.g. "providers.glm.env"
	Msg   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid config %s: %s: %s", e.Path, e.Field, e.Msg)
}

func (e *SchemaError) Unwrap() error {
	return &ConfigError{Path: e.Path, Err: fmt.Errorf("%s: %s", e.Field, e.Msg)}
}

// ProviderNotFoundError reports a provider name missing from the config.
// Available is empty when the caller did not ask for alternatives.
type ProviderNotFoundError struct {
	Provider  string
	Available []string
}

func (e *ProviderNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("provider '%s' not found in config", e.Provider)
	}
	return fmt.Sprintf("provider '%s' not found in config. Available providers: %s",
		e.Provider, strings.Join(e.Available, ", "))
}

// ModelNotFoundError reports a model that the provider does not declare
type ModelNotFoundError struct {
	Provider  string
	Model     string
	Available []string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model '%s' not found for provider '%s'. Available models: %s",
		e.Model, e.Provider, strings.Join(e.Available, ", "))
}

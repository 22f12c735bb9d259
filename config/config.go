// Package config loads the provider file that router-switch reads on every run.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/tidwall/gjson"

	"routerswitch/config/models"
)

const (
	// DefaultFileName is looked up in the current working directory
	DefaultFileName = "config.json"
	// PathEnvVar overrides the default config location when no flag is given
	PathEnvVar = "ROUTERSWITCH_CONFIG"
)

var envKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ResolvePath picks the config path: explicit flag, then $ROUTERSWITCH_CONFIG, then ./config.json
func ResolvePath(flagPath, envPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if envPath != "" {
		return envPath
	}
	return DefaultFileName
}

// LoadDefault loads config.json from the current working directory
func LoadDefault() (*models.Config, error) {
	return Load(DefaultFileName)
}

// Load reads and parses the config file at path.
// The file is re-read on every call.
func Load(path string) (*models.Config, error) {
	data, err := readLocked(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// readLocked reads the whole file while holding a shared lock on it
func readLocked(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := lockFileShared(file); err != nil {
		return nil, fmt.Errorf("failed to lock config file: %w", err)
	}
	defer unlockFile(file)

	return io.ReadAll(file)
}

// Parse validates data against the provider schema.
// path is only used in error messages.
func Parse(path string, data []byte) (*models.Config, error) {
	if !gjson.ValidBytes(data) {
		// gjson only says no; ask encoding/json for the offset
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
		}
		return nil, &ConfigError{Path: path, Err: errors.New("invalid JSON")}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &SchemaError{Path: path, Field: "$", Msg: "top level must be an object"}
	}

	providers, ok := objectFields(root)["providers"]
	if !ok {
		return nil, &SchemaError{Path: path, Field: "providers", Msg: "missing"}
	}
	if !providers.IsObject() {
		return nil, &SchemaError{Path: path, Field: "providers", Msg: "must be an object"}
	}

	cfg := &models.Config{Providers: []models.ProviderConfig{}}
	var parseErr error
	providers.ForEach(func(key, value gjson.Result) bool {
		provider, err := parseProvider(path, key.String(), value)
		if err != nil {
			parseErr = err
			return false
		}
		// Duplicate keys: last value wins, first position is kept
		if existing, ok := cfg.Get(provider.Name); ok {
			*existing = provider
			return true
		}
		cfg.Providers = append(cfg.Providers, provider)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return cfg, nil
}

func parseProvider(path, name string, value gjson.Result) (models.ProviderConfig, error) {
	field := "providers." + name
	provider := models.ProviderConfig{Name: name}

	if !value.IsObject() {
		return provider, &SchemaError{Path: path, Field: field, Msg: "must be an object"}
	}

	fields := objectFields(value)

	strFields := []struct {
		key      string
		dst      *string
		required bool
	}{
		{"description", &provider.Description, false},
		{"base_url", &provider.BaseURL, true},
		{"api_key", &provider.APIKey, true},
	}
	for _, f := range strFields {
		r, ok := fields[f.key]
		if !ok || r.Type == gjson.Null {
			if f.required {
				return provider, &SchemaError{Path: path, Field: field + "." + f.key, Msg: "missing"}
			}
			continue
		}
		if r.Type != gjson.String {
			return provider, &SchemaError{Path: path, Field: field + "." + f.key, Msg: "must be a string"}
		}
		*f.dst = r.String()
	}

	if r, ok := fields["models"]; ok && r.Type != gjson.Null {
		if !r.IsArray() {
			return provider, &SchemaError{Path: path, Field: field + ".models", Msg: "must be an array of strings"}
		}
		for i, m := range r.Array() {
			if m.Type != gjson.String {
				return provider, &SchemaError{
					Path:  path,
					Field: fmt.Sprintf("%s.models.%d", field, i),
					Msg:   "must be a string",
				}
			}
			provider.Models = append(provider.Models, m.String())
		}
	}

	if r, ok := fields["env"]; ok && r.Type != gjson.Null {
		env, err := parseEnv(path, field+".env", r)
		if err != nil {
			return provider, err
		}
		provider.Env = env
	}

	return provider, nil
}

// objectFields indexes the members of obj by key. A repeated key keeps its
// last value, matching how providers and env entries are merged.
func objectFields(obj gjson.Result) map[string]gjson.Result {
	fields := make(map[string]gjson.Result)
	obj.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value
		return true
	})
	return fields
}

func parseEnv(path, field string, r gjson.Result) ([]models.EnvVar, error) {
	if !r.IsObject() {
		return nil, &SchemaError{Path: path, Field: field, Msg: "must be an object"}
	}

	var env []models.EnvVar
	var parseErr error
	r.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if !envKeyPattern.MatchString(name) {
			parseErr = &SchemaError{Path: path, Field: field, Msg: fmt.Sprintf("'%s' is not a valid variable name", name)}
			return false
		}

		var v string
		switch value.Type {
		case gjson.String:
			v = value.String()
		case gjson.Number:
			v = value.Raw
		default:
			parseErr = &SchemaError{Path: path, Field: field + "." + name, Msg: "must be a string or number"}
			return false
		}

		for i := range env {
			if env[i].Key == name {
				env[i].Value = v
				return true
			}
		}
		env = append(env, models.EnvVar{Key: name, Value: v})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return env, nil
}

// Package validation holds the pre-flight checks run before any statement is emitted.
package validation

import (
	"fmt"
	"strings"

	"routerswitch/config"
	"routerswitch/config/models"
	"routerswitch/internal/utils"
)

// ValidateProviderAndModel checks that provider exists and, when the provider
// declares models, that model is one of them. An empty model always passes.
func ValidateProviderAndModel(cfg *models.Config, provider, model string) error {
	p, ok := cfg.Get(provider)
	if !ok {
		return &config.ProviderNotFoundError{Provider: provider, Available: cfg.Names()}
	}

	if model != "" && len(p.Models) > 0 {
		return NewModelValidator().ValidateModelInList(p, model)
	}

	return nil
}

// Lint returns non-fatal warnings about a provider entry
func Lint(p *models.ProviderConfig) []string {
	var warnings []string

	if !utils.ValidateURL(p.BaseURL) {
		warnings = append(warnings, fmt.Sprintf("base_url %q is not an http(s) URL", p.BaseURL))
	}
	if strings.TrimSpace(p.APIKey) == "" {
		warnings = append(warnings, "api_key is empty")
	}
	for i, m := range p.Models {
		if strings.TrimSpace(m) == "" {
			warnings = append(warnings, fmt.Sprintf("models[%d] is empty", i))
		}
	}
	for _, kv := range p.Env {
		if isManagedKey(kv.Key) {
			warnings = append(warnings, fmt.Sprintf("env key %s is overwritten by router-switch", kv.Key))
		}
	}

	return warnings
}

func isManagedKey(key string) bool {
	switch key {
	case "ANTHROPIC_BASE_URL", "ANTHROPIC_AUTH_TOKEN", "ANTHROPIC_MODEL", "ROUTERSWITCH_CURRENT_PROVIDER":
		return true
	}
	return false
}

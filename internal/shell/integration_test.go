package shell

import (
	"strings"
	"testing"

	"routerswitch/config/models"
)

func TestGeneratorGenerate(t *testing.T) {
	cfg := &models.Config{Providers: []models.ProviderConfig{
		{Name: "deepseek"},
		{Name: "glm"},
		{Name: "bad name"},
		{Name: "$(reboot)"},
	}}

	g, skipped := NewGenerator(cfg)
	if len(skipped) != 2 {
		t.Errorf("skipped = %v, want 2 entries", skipped)
	}
	if strings.Join(g.Providers, ",") != "deepseek,glm" {
		t.Errorf("Providers = %v", g.Providers)
	}

	script, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		"router-switch() {",
		`local __rs_cmd="${ROUTER_SWITCH_BIN:-router-switch}"`,
		"provider: AI provider name (deepseek, glm)",
		"providers=(deepseek glm)",
		`local providers="deepseek glm"`,
		`eval "$__rs_output"`,
		"compdef _router-switch router-switch",
		"complete -F _router_switch_bash router-switch",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q", want)
		}
	}

	if strings.Contains(script, "reboot") || strings.Contains(script, "bad name") {
		t.Error("unsafe provider names must not reach the script")
	}
}

func TestGeneratorNoProviders(t *testing.T) {
	g, skipped := NewGenerator(&models.Config{})
	if len(skipped) != 0 {
		t.Errorf("skipped = %v", skipped)
	}

	script, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(script, "providers=()") {
		t.Error("empty provider list should render an empty completion array")
	}
}

package envcmd

import (
	"errors"
	"reflect"
	"testing"

	"routerswitch/config"
	"routerswitch/config/models"
)

func glmConfig() *models.Config {
	return &models.Config{Providers: []models.ProviderConfig{
		{
			Name:        "glm",
			Description: "d",
			BaseURL:     "https://x",
			APIKey:      "k",
			Models:      []string{"m1", "m2"},
		},
		{
			Name:    "kimi",
			BaseURL: "https://api.moonshot.cn/anthropic",
			APIKey:  "sk-kimi",
			Models:  []string{"kimi-k2"},
			Env: []models.EnvVar{
				{Key: "FOO", Value: "bar"},
				{Key: "API_TIMEOUT_MS", Value: "600000"},
			},
		},
		{
			Name:    "bare",
			BaseURL: "https://bare",
			APIKey:  "bare-key",
		},
	}}
}

func TestClearCommands(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		want     []Statement
	}{
		{
			name:     "provider without env",
			provider: "glm",
			want: []Statement{
				UnsetVar(BaseURLVar),
				UnsetVar(AuthTokenVar),
				UnsetVar(ModelVar),
				UnsetVar(CurrentProviderVar),
			},
		},
		{
			name:     "env keys in order before tracking variable",
			provider: "kimi",
			want: []Statement{
				UnsetVar(BaseURLVar),
				UnsetVar(AuthTokenVar),
				UnsetVar(ModelVar),
				UnsetVar("FOO"),
				UnsetVar("API_TIMEOUT_MS"),
				UnsetVar(CurrentProviderVar),
			},
		},
		{
			name:     "unknown provider clears nothing",
			provider: "removed-provider",
			want:     []Statement{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClearCommands(glmConfig(), tt.provider)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClearCommands() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetCommands(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		model    string
		want     []Statement
	}{
		{
			name:     "default model",
			provider: "glm",
			want: []Statement{
				SetVar(BaseURLVar, "https://x"),
				SetVar(AuthTokenVar, "k"),
				SetVar(ModelVar, "m1"),
				SetVar(CurrentProviderVar, "glm"),
			},
		},
		{
			name:     "requested model",
			provider: "glm",
			model:    "m2",
			want: []Statement{
				SetVar(BaseURLVar, "https://x"),
				SetVar(AuthTokenVar, "k"),
				SetVar(ModelVar, "m2"),
				SetVar(CurrentProviderVar, "glm"),
			},
		},
		{
			name:     "env after model",
			provider: "kimi",
			want: []Statement{
				SetVar(BaseURLVar, "https://api.moonshot.cn/anthropic"),
				SetVar(AuthTokenVar, "sk-kimi"),
				SetVar(ModelVar, "kimi-k2"),
				SetVar("FOO", "bar"),
				SetVar("API_TIMEOUT_MS", "600000"),
				SetVar(CurrentProviderVar, "kimi"),
			},
		},
		{
			name:     "no models means no model statement",
			provider: "bare",
			model:    "ignored",
			want: []Statement{
				SetVar(BaseURLVar, "https://bare"),
				SetVar(AuthTokenVar, "bare-key"),
				SetVar(CurrentProviderVar, "bare"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SetCommands(glmConfig(), tt.provider, tt.model)
			if err != nil {
				t.Fatalf("SetCommands() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SetCommands() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetCommandsErrors(t *testing.T) {
	_, err := SetCommands(glmConfig(), "nope", "")
	var notFound *config.ProviderNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("unknown provider error = %v, want *ProviderNotFoundError", err)
	}
	if len(notFound.Available) != 0 {
		t.Errorf("SetCommands should not list alternatives, got %v", notFound.Available)
	}

	stmts, err := SetCommands(glmConfig(), "glm", "m3")
	var modelErr *config.ModelNotFoundError
	if !errors.As(err, &modelErr) {
		t.Fatalf("unknown model error = %v, want *ModelNotFoundError", err)
	}
	if stmts != nil {
		t.Errorf("failed SetCommands should return no statements, got %v", stmts)
	}
}

func TestClearThenSetRoundTrip(t *testing.T) {
	cfg := glmConfig()

	stmts := ClearCommands(cfg, "kimi")
	set, err := SetCommands(cfg, "kimi", "")
	if err != nil {
		t.Fatalf("SetCommands() error = %v", err)
	}
	stmts = append(stmts, set...)

	unsetAt, exportAt := -1, -1
	for i, s := range stmts {
		if s.Key != "FOO" {
			continue
		}
		if s.Kind == Unset && unsetAt < 0 {
			unsetAt = i
		}
		if s.Kind == Set && s.Value == "bar" {
			exportAt = i
		}
	}
	if unsetAt < 0 || exportAt < 0 || unsetAt > exportAt {
		t.Errorf("want unset FOO before export FOO=bar, got unset at %d, export at %d", unsetAt, exportAt)
	}
}

func TestKindString(t *testing.T) {
	if Set.String() != "set" || Unset.String() != "unset" {
		t.Errorf("Kind.String() = %q/%q", Set.String(), Unset.String())
	}
}

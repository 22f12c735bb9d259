// Package envcmd turns provider entries into ordered environment statements.
// Nothing here touches the process environment or renders shell syntax.
package envcmd

import (
	"routerswitch/config"
	"routerswitch/config/models"
	"routerswitch/config/validation"
)

// Variables managed for every provider
const (
	BaseURLVar         = "ANTHROPIC_BASE_URL"
	AuthTokenVar       = "ANTHROPIC_AUTH_TOKEN"
	ModelVar           = "ANTHROPIC_MODEL"
	CurrentProviderVar = "ROUTERSWITCH_CURRENT_PROVIDER"
)

// Kind tells a renderer whether to set or remove a variable
type Kind int

const (
	Unset Kind = iota
	Set
)

func (k Kind) String() string {
	if k == Set {
		return "set"
	}
	return "unset"
}

// Statement is a single environment change; Value is ignored for Unset
type Statement struct {
	Kind  Kind
	Key   string
	Value string
}

// UnsetVar builds an Unset statement
func UnsetVar(key string) Statement {
	return Statement{Kind: Unset, Key: key}
}

// SetVar builds a Set statement
func SetVar(key, value string) Statement {
	return Statement{Kind: Set, Key: key, Value: value}
}

// ClearCommands returns the statements that remove everything provider set.
// A provider missing from cfg yields no statements: it may have been removed
// from the file since it was activated.
func ClearCommands(cfg *models.Config, provider string) []Statement {
	p, ok := cfg.Get(provider)
	if !ok {
		return []Statement{}
	}

	stmts := make([]Statement, 0, 4+len(p.Env))
	stmts = append(stmts,
		UnsetVar(BaseURLVar),
		UnsetVar(AuthTokenVar),
		UnsetVar(ModelVar),
	)
	for _, kv := range p.Env {
		stmts = append(stmts, UnsetVar(kv.Key))
	}
	stmts = append(stmts, UnsetVar(CurrentProviderVar))

	return stmts
}

// SetCommands returns the statements that activate provider with model.
// An empty model selects the provider's default. When the provider declares
// no models, no model statement is produced and model is not checked.
func SetCommands(cfg *models.Config, provider, model string) ([]Statement, error) {
	p, ok := cfg.Get(provider)
	if !ok {
		return nil, &config.ProviderNotFoundError{Provider: provider}
	}

	selected, err := validation.NewModelValidator().SelectModel(p, model)
	if err != nil {
		return nil, err
	}

	stmts := make([]Statement, 0, 4+len(p.Env))
	stmts = append(stmts,
		SetVar(BaseURLVar, p.BaseURL),
		SetVar(AuthTokenVar, p.APIKey),
	)
	if len(p.Models) > 0 {
		stmts = append(stmts, SetVar(ModelVar, selected))
	}
	for _, kv := range p.Env {
		stmts = append(stmts, SetVar(kv.Key, kv.Value))
	}
	stmts = append(stmts, SetVar(CurrentProviderVar, provider))

	return stmts, nil
}

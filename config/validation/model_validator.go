package validation

import (
	"routerswitch/config"
	"routerswitch/config/models"
)

// ModelValidator validates model selection
type ModelValidator struct{}

// NewModelValidator creates a new ModelValidator instance
func NewModelValidator() *ModelValidator {
	return &ModelValidator{}
}

// ValidateModelInList checks that model is one of the provider's declared models.
// Matching is exact; model names are used verbatim in the emitted statements.
func (v *ModelValidator) ValidateModelInList(p *models.ProviderConfig, model string) error {
	if p.HasModel(model) {
		return nil
	}
	return &config.ModelNotFoundError{Provider: p.Name, Model: model, Available: p.Models}
}

// SelectModel returns the model to export for p: the requested one when it is
// declared, models[0] when none was requested, "" when p declares no models.
func (v *ModelValidator) SelectModel(p *models.ProviderConfig, requested string) (string, error) {
	if len(p.Models) == 0 {
		return "", nil
	}
	if requested == "" {
		return p.DefaultModel(), nil
	}
	if err := v.ValidateModelInList(p, requested); err != nil {
		return "", err
	}
	return requested, nil
}

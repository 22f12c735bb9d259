package validation

import (
	"fmt"
	"strings"
)

// maxNameLength bounds provider names offered for shell completion
const maxNameLength = 64

// InputValidator validates names that end up inside generated shell code
type InputValidator struct {
}

// NewInputValidator creates a new InputValidator
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// ValidateProviderName checks that name can be placed unquoted in a completion word list
func (iv *InputValidator) ValidateProviderName(name string) error {
	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}
	if strings.ContainsAny(name, " \t\n<>\"'&|;$`\\(){}[]*?!#") {
		return fmt.Errorf("provider name %q contains shell metacharacters", name)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("provider name is too long (max %d characters)", maxNameLength)
	}
	return nil
}

// Package validation provides a small chainable validator used by
// configuration types.
package validation

import (
	"fmt"
	"strings"
)

// Validator accumulates validation errors across chained checks.
type Validator struct {
	errors []error
	prefix string
}

// NewValidator creates an empty validator.
func NewValidator() *Validator {
	return &Validator{errors: make([]error, 0)}
}

// NewValidatorWithPrefix creates a validator that prefixes every message.
func NewValidatorWithPrefix(prefix string) *Validator {
	return &Validator{errors: make([]error, 0), prefix: prefix}
}

// RequireString validates that a string is not empty or blank.
func (v *Validator) RequireString(value, name string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.addError("%s is required", name)
	}
	return v
}

// RequirePositive validates that an integer is greater than zero.
func (v *Validator) RequirePositive(value int, name string) *Validator {
	if value <= 0 {
		v.addError("%s must be positive", name)
	}
	return v
}

// RequireRange validates that a value falls within [min, max].
func (v *Validator) RequireRange(value, min, max int, name string) *Validator {
	if value < min || value > max {
		v.addError("%s must be between %d and %d", name, min, max)
	}
	return v
}

// RequireOneOf validates that a value is one of the allowed values.
func (v *Validator) RequireOneOf(value string, allowed []string, name string) *Validator {
	if value == "" {
		v.addError("%s is required", name)
		return v
	}
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.addError("%s must be one of: %s", name, strings.Join(allowed, ", "))
	return v
}

// Validate runs a custom validation function.
func (v *Validator) Validate(fn func() error) *Validator {
	if err := fn(); err != nil {
		v.errors = append(v.errors, err)
	}
	return v
}

// ValidateIf runs a validation function only when the condition holds.
func (v *Validator) ValidateIf(condition bool, fn func() error) *Validator {
	if condition {
		return v.Validate(fn)
	}
	return v
}

func (v *Validator) addError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if v.prefix != "" {
		msg = v.prefix + ": " + msg
	}
	v.errors = append(v.errors, fmt.Errorf("%s", msg))
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns every accumulated error.
func (v *Validator) Errors() []error {
	return v.errors
}

// Error collapses the accumulated errors into a single error, or nil.
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	if len(v.errors) == 1 {
		return v.errors[0]
	}

	parts := make([]string, len(v.errors))
	for i, err := range v.errors {
		parts[i] = err.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(parts, "; "))
}

package config

import (
	"errors"
	"fmt"
)

// ErrInvalid matches every *ConfigError via errors.Is.
var ErrInvalid = errors.New("invalid configuration")

// ConfigError reports a required field that is absent or a present field
// that fails shape validation.
type ConfigError struct {
	Field  string
	Reason string
}

// Error formats the field and the reason.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalid.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalid }

// Invalid builds a *ConfigError for field.
func Invalid(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}

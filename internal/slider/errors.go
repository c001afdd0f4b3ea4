package slider

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration rejection.
var ErrInvalidConfig = errors.New("invalid slider configuration")

// ConfigError describes a rejected configuration field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidConfig, e.Field, e.Message)
}

// Unwrap returns ErrInvalidConfig for errors.Is support.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Message: fmt.Sprintf(format, args...)}
}

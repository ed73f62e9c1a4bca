// internal/config/errors.go
package config

import (
	"errors"
	"fmt"
)

// ErrOutOfRange marks a numeric value the tick cannot work with.
var ErrOutOfRange = errors.New("value out of range")

// ConfigError reports a configuration value the engine cannot honour.
// Unknown easing, pattern and shape names end up here and are never
// replaced with a default.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIntersection is returned when a line is parallel to a plane
	ErrNoIntersection = errors.New("no intersection")
	// ErrDegenerateDirection is returned for zero or non-finite direction vectors
	ErrDegenerateDirection = errors.New("degenerate direction vector")
	// ErrNotInSystem is returned when an element has not been added to a system
	ErrNotInSystem = errors.New("element is not part of a system")
)

// ConfigError reports an invalid configuration value at the call that supplied it
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// NewConfigError creates a ConfigError
func NewConfigError(field string, value any, reason string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}

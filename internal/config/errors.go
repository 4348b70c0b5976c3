// Package config loads the moai-starter user configuration: generation
// defaults, dependency aliases, output and logging settings. Values come
// from an optional YAML file and MOAI_STARTER_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in a configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidEnv indicates an environment override could not be parsed.
	ErrInvalidEnv = errors.New("config: invalid environment override")

	// ErrDynamicToken indicates an unexpanded dynamic token was detected in a config value.
	ErrDynamicToken = errors.New("config: unexpanded dynamic token detected")

	// ErrUnknownKey indicates a default refers to an unknown profile, layout or level.
	ErrUnknownKey = errors.New("config: unknown key")
)

// ValidationError is one rejected config field. Kind is the sentinel the
// problem is reported under.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Kind    error
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return e.Field + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, fmt.Sprint(e.Value))
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// ValidationErrors carries every problem Validate found, in field order.
type ValidationErrors struct {
	Errors []ValidationError
}

func (e *ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("invalid config")
	for i := range e.Errors {
		b.WriteString("\n  ")
		b.WriteString(e.Errors[i].Error())
	}
	return b.String()
}

// Is matches ErrInvalidConfig and the kind of any contained error.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	return slices.ContainsFunc(e.Errors, func(ve ValidationError) bool {
		return ve.Kind != nil && errors.Is(ve.Kind, target)
	})
}

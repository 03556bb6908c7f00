package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for startup and configuration.
var (
	// ErrTooManyEntities indicates an entity count above MaxEntities.
	ErrTooManyEntities = errors.New("dynamo: entity count exceeds shader capacity")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrShaderCompile indicates a shader failed to compile or link.
	ErrShaderCompile = errors.New("dynamo: shader compilation failed")

	// ErrUniformNotFound indicates a required uniform is missing from a program.
	ErrUniformNotFound = errors.New("dynamo: uniform not found")

	// ErrCapacityMismatch indicates the shader array size differs from MaxEntities.
	ErrCapacityMismatch = errors.New("dynamo: shader capacity does not match MaxEntities")
)

// ConfigError wraps a validation failure with the offending field.
type ConfigError struct {
	Field   string
	Value   any
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s = %v: %v", e.Field, e.Value, e.Wrapped)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}

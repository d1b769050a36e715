// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrUnknownLegType    = errors.New("unknown option leg type")
	ErrInvalidParameters = errors.New("invalid simulation parameters")
	ErrUnknownStrategy   = errors.New("unknown strategy")
	ErrConfigInvalid     = errors.New("invalid configuration")
)

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// Unwrap makes ValidationError match ErrInvalidParameters with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameters
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// LegError represents an error for a specific strategy leg.
type LegError struct {
	Index int
	Type  string
	Err   error
}

func (e *LegError) Error() string {
	return fmt.Sprintf("leg error [%d] type %q: %v", e.Index, e.Type, e.Err)
}

func (e *LegError) Unwrap() error {
	return e.Err
}

// NewLegError creates a new LegError.
func NewLegError(index int, legType string, err error) *LegError {
	return &LegError{
		Index: index,
		Type:  legType,
		Err:   err,
	}
}

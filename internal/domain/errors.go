package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually wrapped by a ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// MaxLabelLength bounds names, titles and sentences.
const MaxLabelLength = 255

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap supports errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// validateLabel enforces the rules shared by every name-like column.
func validateLabel(field, value string) error {
	if value == "" {
		return NewValidationError(field, "cannot be empty", nil)
	}
	if utf8.RuneCountInString(value) > MaxLabelLength {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", MaxLabelLength), nil)
	}
	return nil
}

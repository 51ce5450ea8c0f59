package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/quire/internal/domain"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the web and api layers map them to responses.
var (
	// ErrInvalidCredentials indicates a login with an unknown identity or a wrong password.
	// The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ServiceError wraps errors from a service with the operation that failed.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_post", "register_user")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Message: message, Err: err}
}

func isValidation(err error) bool {
	return errors.Is(err, domain.ErrValidation)
}

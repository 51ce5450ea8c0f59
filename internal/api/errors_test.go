package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/quire/internal/api/shared"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/service"
	"github.com/phrazzld/quire/internal/service/auth"
	"github.com/phrazzld/quire/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", fmt.Errorf("validate: %w", auth.ErrExpiredToken), http.StatusUnauthorized},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not allowed", domain.ErrUnauthorized, http.StatusForbidden},
		{"post not found", store.ErrPostNotFound, http.StatusNotFound},
		{"wrapped form not found", fmt.Errorf("get form: %w", store.ErrFormNotFound), http.StatusNotFound},
		{"user exists", store.ErrUserExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"domain validation", domain.NewValidationError("name", "is required", domain.ErrValidation), http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"validator error", shared.Validate.Struct(&LoginRequest{}), http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"post not found", store.ErrPostNotFound, "Post not found"},
		{"form not found", store.ErrFormNotFound, "Form not found"},
		{"other not found", store.ErrAnswerNotFound, "Resource not found"},
		{"user exists", store.ErrUserExists, "Username or email already taken"},
		{"domain validation", domain.NewValidationError("name", "is required", domain.ErrValidation), "name is required"},
		{"internal details hidden", errors.New("pq: relation \"posts\" does not exist"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  LoginRequest
		want string
	}{
		{"missing email", LoginRequest{Password: "secret"}, "Invalid email: required field"},
		{"malformed email", LoginRequest{Email: "nope", Password: "secret"}, "Invalid email: invalid email format"},
		{"missing password", LoginRequest{Email: "a@example.com"}, "Invalid password: required field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := shared.Validate.Struct(&tt.req)
			assert.Equal(t, tt.want, SanitizeValidationError(err))
		})
	}

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("plain")))
}

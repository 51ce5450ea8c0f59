package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/service"
)

// MockUserService implements service.UserService for testing. Methods
// without a function field return Err.
type MockUserService struct {
	RegisterFn     func(ctx context.Context, name, email, password string) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, identifier, password string) (*domain.User, error)
	GetUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	ListUsersFn    func(ctx context.Context, query string) ([]*domain.User, error)
	UpdateUserFn   func(ctx context.Context, userID uuid.UUID, update service.UserUpdate) (*domain.User, error)
	DeleteUserFn   func(ctx context.Context, userID uuid.UUID) error

	Err error
}

var _ service.UserService = (*MockUserService)(nil)

// Register implements service.UserService
func (m *MockUserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, name, email, password)
	}
	return nil, m.Err
}

// Authenticate implements service.UserService
func (m *MockUserService) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, identifier, password)
	}
	return nil, m.Err
}

// GetUser implements service.UserService
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return nil, m.Err
}

// ListUsers implements service.UserService
func (m *MockUserService) ListUsers(ctx context.Context, query string) ([]*domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx, query)
	}
	return nil, m.Err
}

// UpdateUser implements service.UserService
func (m *MockUserService) UpdateUser(ctx context.Context, userID uuid.UUID, update service.UserUpdate) (*domain.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, userID, update)
	}
	return nil, m.Err
}

// DeleteUser implements service.UserService
func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	return m.Err
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/service"
)

// MockPostService implements service.PostService for testing. Methods
// without a function field return Err.
type MockPostService struct {
	CreatePostFn func(ctx context.Context, input service.PostInput, owner uuid.UUID) (*domain.Post, error)
	GetPostFn    func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListPostsFn  func(ctx context.Context, query string) ([]*domain.Post, error)
	UpdatePostFn func(ctx context.Context, id uuid.UUID, input service.PostInput) (*domain.Post, error)
	DeletePostFn func(ctx context.Context, id uuid.UUID) error

	Err error
}

var _ service.PostService = (*MockPostService)(nil)

// CreatePost implements service.PostService
func (m *MockPostService) CreatePost(ctx context.Context, input service.PostInput, owner uuid.UUID) (*domain.Post, error) {
	if m.CreatePostFn != nil {
		return m.CreatePostFn(ctx, input, owner)
	}
	return nil, m.Err
}

// GetPost implements service.PostService
func (m *MockPostService) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetPostFn != nil {
		return m.GetPostFn(ctx, id)
	}
	return nil, m.Err
}

// ListPosts implements service.PostService
func (m *MockPostService) ListPosts(ctx context.Context, query string) ([]*domain.Post, error) {
	if m.ListPostsFn != nil {
		return m.ListPostsFn(ctx, query)
	}
	return nil, m.Err
}

// UpdatePost implements service.PostService
func (m *MockPostService) UpdatePost(ctx context.Context, id uuid.UUID, input service.PostInput) (*domain.Post, error) {
	if m.UpdatePostFn != nil {
		return m.UpdatePostFn(ctx, id, input)
	}
	return nil, m.Err
}

// DeletePost implements service.PostService
func (m *MockPostService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if m.DeletePostFn != nil {
		return m.DeletePostFn(ctx, id)
	}
	return m.Err
}

package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

// PostInput carries the submitted fields of a post. CategoryIDs and
// AuthorIDs replace the post's collections.
type PostInput struct {
	Name        string
	Content     string
	CategoryIDs []uuid.UUID
	AuthorIDs   []uuid.UUID
}

// PostService provides post operations that write more than one table.
type PostService interface {
	// CreatePost saves a new post owned by owner (which may be uuid.Nil).
	CreatePost(ctx context.Context, input PostInput, owner uuid.UUID) (*domain.Post, error)

	// GetPost retrieves a post with its owner, categories and authors.
	GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// ListPosts returns all posts, or those whose name contains query.
	ListPosts(ctx context.Context, query string) ([]*domain.Post, error)

	// UpdatePost replaces the post's fields and collections. Ownership is kept.
	UpdatePost(ctx context.Context, id uuid.UUID, input PostInput) (*domain.Post, error)

	// DeletePost removes a post.
	DeletePost(ctx context.Context, id uuid.UUID) error
}

// PostServiceImpl implements the PostService interface
type PostServiceImpl struct {
	posts      store.PostStore
	categories store.CategoryStore
	authors    store.AuthorStore
	tx         store.TxRunner
	logger     *slog.Logger
}

// NewPostService creates a new PostService.
func NewPostService(
	posts store.PostStore,
	categories store.CategoryStore,
	authors store.AuthorStore,
	tx store.TxRunner,
	logger *slog.Logger,
) *PostServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostServiceImpl{
		posts:      posts,
		categories: categories,
		authors:    authors,
		tx:         tx,
		logger:     logger.With("component", "post_service"),
	}
}

var _ PostService = (*PostServiceImpl)(nil)

// bind resolves the selected categories and authors onto post. An unknown id
// is a validation error on the matching field.
func (s *PostServiceImpl) bind(ctx context.Context, tx *sql.Tx, post *domain.Post, input PostInput) error {
	categories := s.categories.WithTx(tx)
	authors := s.authors.WithTx(tx)

	post.Categories = nil
	for _, id := range input.CategoryIDs {
		c, err := categories.GetByID(ctx, id)
		if err != nil {
			if store.IsNotFoundError(err) {
				return domain.NewValidationError("categories", fmt.Sprintf("unknown category %s", id), nil)
			}
			return err
		}
		post.AddCategory(c)
	}

	post.Authors = nil
	for _, id := range input.AuthorIDs {
		a, err := authors.GetByID(ctx, id)
		if err != nil {
			if store.IsNotFoundError(err) {
				return domain.NewValidationError("authors", fmt.Sprintf("unknown author %s", id), nil)
			}
			return err
		}
		post.AddAuthor(a)
	}
	return nil
}

// CreatePost implements PostService.
func (s *PostServiceImpl) CreatePost(ctx context.Context, input PostInput, owner uuid.UUID) (*domain.Post, error) {
	post, err := domain.NewPost(input.Name, input.Content)
	if err != nil {
		return nil, err
	}
	if owner != uuid.Nil {
		post.UserID = uuid.NullUUID{UUID: owner, Valid: true}
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.bind(ctx, tx, post, input); err != nil {
			return err
		}
		return s.posts.WithTx(tx).Create(ctx, post)
	})
	if err != nil {
		s.logFailure("failed to create post", err)
		return nil, err
	}

	s.logger.Info("post created", "post_id", post.ID)
	return post, nil
}

// GetPost implements PostService.
func (s *PostServiceImpl) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// ListPosts implements PostService.
func (s *PostServiceImpl) ListPosts(ctx context.Context, query string) ([]*domain.Post, error) {
	if query = strings.TrimSpace(query); query != "" {
		return s.posts.FindByName(ctx, query)
	}
	return s.posts.List(ctx)
}

// UpdatePost implements PostService.
func (s *PostServiceImpl) UpdatePost(ctx context.Context, id uuid.UUID, input PostInput) (*domain.Post, error) {
	var updated *domain.Post
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		posts := s.posts.WithTx(tx)

		post, err := posts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		post.Name = strings.TrimSpace(input.Name)
		post.Content = input.Content
		if err := post.Validate(); err != nil {
			return err
		}
		if err := s.bind(ctx, tx, post, input); err != nil {
			return err
		}
		if err := posts.Update(ctx, post); err != nil {
			return err
		}
		updated = post
		return nil
	})
	if err != nil {
		s.logFailure("failed to update post", err, "post_id", id)
		return nil, err
	}

	s.logger.Info("post updated", "post_id", id)
	return updated, nil
}

// DeletePost implements PostService.
func (s *PostServiceImpl) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		s.logFailure("failed to delete post", err, "post_id", id)
		return err
	}
	s.logger.Info("post deleted", "post_id", id)
	return nil
}

// logFailure logs expected outcomes at debug and everything else at error.
func (s *PostServiceImpl) logFailure(msg string, err error, args ...any) {
	args = append(args, "error", err)
	if store.IsNotFoundError(err) || isValidation(err) {
		s.logger.Debug(msg, args...)
		return
	}
	s.logger.Error(msg, args...)
}

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// PostStore defines the interface for post persistence.
type PostStore interface {
	// Create saves a new post and links it to the categories and authors it
	// carries. It assigns ID, CreatedAt and UpdatedAt.
	// Returns ErrInvalidEntity if a linked category, author or user does not exist.
	// Linking writes several rows; run it inside a transaction.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post with its owner, categories and authors loaded.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// List returns every post, oldest first, with categories loaded.
	List(ctx context.Context) ([]*domain.Post, error)

	// FindByName returns posts whose name contains query, ignoring case.
	FindByName(ctx context.Context, query string) ([]*domain.Post, error)

	// ListByUser returns the posts owned by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error)

	// Update saves the post's fields and replaces its category and author links.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post and its links.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a PostStore bound to tx.
	WithTx(tx *sql.Tx) PostStore
}

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category. Returns ErrInvalidEntity if its form does not exist.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category with its form and posts loaded.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// List returns every category ordered by title.
	List(ctx context.Context) ([]*domain.Category, error)

	// FindByName returns categories whose title contains query, ignoring case.
	FindByName(ctx context.Context, query string) ([]*domain.Category, error)

	// ListByForm returns the categories grouped under a form.
	ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Category, error)

	// Update saves the category's title and form.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category; posts lose the link but survive.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a CategoryStore bound to tx.
	WithTx(tx *sql.Tx) CategoryStore
}

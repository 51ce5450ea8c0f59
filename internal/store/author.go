package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// AuthorStore defines the interface for author persistence.
type AuthorStore interface {
	Create(ctx context.Context, author *domain.Author) error

	// GetByID retrieves an author with the posts crediting them.
	// Returns ErrAuthorNotFound if the author does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error)

	// List returns every author ordered by name.
	List(ctx context.Context) ([]*domain.Author, error)

	FindByName(ctx context.Context, query string) ([]*domain.Author, error)
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx *sql.Tx) AuthorStore
}

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// FormStore defines the interface for survey form persistence.
type FormStore interface {
	Create(ctx context.Context, form *domain.Form) error

	// GetByID retrieves a form with its categories and questions loaded.
	// Returns ErrFormNotFound if the form does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error)

	// List returns every form ordered by name.
	List(ctx context.Context) ([]*domain.Form, error)

	FindByName(ctx context.Context, query string) ([]*domain.Form, error)
	Update(ctx context.Context, form *domain.Form) error

	// Delete removes a form together with its questions and their answers.
	// Categories of the form are kept and detached.
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) FormStore
}

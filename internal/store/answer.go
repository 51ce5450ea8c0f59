package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// AnswerStore defines the interface for answer persistence.
type AnswerStore interface {
	// Create saves a new answer. Returns ErrInvalidEntity if its question or user does not exist.
	Create(ctx context.Context, answer *domain.Answer) error

	// GetByID retrieves an answer with its question and user loaded.
	// Returns ErrAnswerNotFound if the answer does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)

	// List returns every answer with its question loaded.
	List(ctx context.Context) ([]*domain.Answer, error)

	FindByName(ctx context.Context, query string) ([]*domain.Answer, error)
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error)
	Update(ctx context.Context, answer *domain.Answer) error
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx *sql.Tx) AnswerStore
}

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// QuestionStore defines the interface for question persistence.
type QuestionStore interface {
	// Create saves a new question. Returns ErrInvalidEntity if its form does not exist.
	Create(ctx context.Context, question *domain.Question) error

	// GetByID retrieves a question with its form and answers loaded.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)

	// List returns every question with its form loaded.
	List(ctx context.Context) ([]*domain.Question, error)

	// FindByName returns questions whose sentence contains query, ignoring case.
	FindByName(ctx context.Context, query string) ([]*domain.Question, error)

	ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Question, error)
	Update(ctx context.Context, question *domain.Question) error

	// Delete removes a question together with its answers.
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) QuestionStore
}

package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

const answerSelect = `
	SELECT ` + answerColumns + `, q.sentence, u.name
	FROM answers an
	JOIN questions q ON q.id = an.question_id
	LEFT JOIN users u ON u.id = an.user_id`

// PostgresAnswerStore implements the store.AnswerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAnswerStore struct {
	base
}

// NewPostgresAnswerStore creates a new PostgreSQL implementation of the AnswerStore interface.
func NewPostgresAnswerStore(db store.DBTX, logger *slog.Logger) *PostgresAnswerStore {
	return &PostgresAnswerStore{base: newBase(db, logger, "answer_store")}
}

var _ store.AnswerStore = (*PostgresAnswerStore)(nil)

// Create implements store.AnswerStore.Create.
// Returns store.ErrInvalidEntity if the question or user doesn't exist.
func (s *PostgresAnswerStore) Create(ctx context.Context, answer *domain.Answer) error {
	log := s.log(ctx)

	if err := answer.Validate(); err != nil {
		log.Warn("answer validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO answers (name, question_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		answer.Name, answer.QuestionID, answer.UserID).Scan(&answer.ID, &answer.CreatedAt, &answer.UpdatedAt)
	if err != nil {
		err = MapError(err, nil)
		log.Warn("failed to create answer",
			slog.String("error", err.Error()),
			slog.String("question_id", answer.QuestionID.String()))
		return err
	}

	log.Info("answer created successfully", slog.String("answer_id", answer.ID.String()))
	return nil
}

// GetByID implements store.AnswerStore.GetByID.
// Returns store.ErrAnswerNotFound if the answer does not exist.
func (s *PostgresAnswerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	answer, err := scanAnswerWithRefs(s.db.QueryRowContext(ctx, answerSelect+` WHERE an.id = $1`, id))
	if err != nil {
		return nil, MapError(err, store.ErrAnswerNotFound)
	}
	return answer, nil
}

func (s *PostgresAnswerStore) list(ctx context.Context, where string, args ...any) ([]*domain.Answer, error) {
	answers, err := queryList(ctx, s.db, scanAnswerWithRefs,
		answerSelect+where+` ORDER BY an.created_at, an.id`, args...)
	if err != nil {
		s.log(ctx).Error("failed to list answers", slog.String("error", err.Error()))
		return nil, err
	}
	return answers, nil
}

// List implements store.AnswerStore.List.
func (s *PostgresAnswerStore) List(ctx context.Context) ([]*domain.Answer, error) {
	return s.list(ctx, "")
}

// FindByName implements store.AnswerStore.FindByName.
func (s *PostgresAnswerStore) FindByName(ctx context.Context, query string) ([]*domain.Answer, error) {
	return s.list(ctx, ` WHERE an.name ILIKE $1`, likePattern(query))
}

// ListByQuestion implements store.AnswerStore.ListByQuestion.
func (s *PostgresAnswerStore) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error) {
	return s.list(ctx, ` WHERE an.question_id = $1`, questionID)
}

// Update implements store.AnswerStore.Update.
func (s *PostgresAnswerStore) Update(ctx context.Context, answer *domain.Answer) error {
	log := s.log(ctx)

	if err := answer.Validate(); err != nil {
		log.Warn("answer validation failed during update", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		UPDATE answers SET name = $1, question_id = $2, user_id = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at`,
		answer.Name, answer.QuestionID, answer.UserID, answer.ID).Scan(&answer.CreatedAt, &answer.UpdatedAt)
	if err != nil {
		err = MapError(err, store.ErrAnswerNotFound)
		log.Warn("failed to update answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return err
	}

	log.Info("answer updated successfully", slog.String("answer_id", answer.ID.String()))
	return nil
}

// Delete implements store.AnswerStore.Delete.
func (s *PostgresAnswerStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := execDelete(ctx, s.db, `DELETE FROM answers WHERE id = $1`, id, store.ErrAnswerNotFound); err != nil {
		s.log(ctx).Warn("failed to delete answer",
			slog.String("error", err.Error()),
			slog.String("answer_id", id.String()))
		return err
	}
	s.log(ctx).Info("answer deleted successfully", slog.String("answer_id", id.String()))
	return nil
}

// WithTx implements store.AnswerStore.WithTx.
func (s *PostgresAnswerStore) WithTx(tx *sql.Tx) store.AnswerStore {
	return &PostgresAnswerStore{base: base{db: tx, logger: s.logger}}
}

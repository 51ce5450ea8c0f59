package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

const questionSelect = `
	SELECT ` + questionColumns + `, f.name
	FROM questions q
	JOIN forms f ON f.id = q.form_id`

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresQuestionStore struct {
	base
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the QuestionStore interface.
func NewPostgresQuestionStore(db store.DBTX, logger *slog.Logger) *PostgresQuestionStore {
	return &PostgresQuestionStore{base: newBase(db, logger, "question_store")}
}

var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

// Create implements store.QuestionStore.Create.
// Returns store.ErrInvalidEntity if the form doesn't exist (foreign key violation).
func (s *PostgresQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	log := s.log(ctx)

	if err := question.Validate(); err != nil {
		log.Warn("question validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO questions (sentence, form_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`,
		question.Sentence, question.FormID).Scan(&question.ID, &question.CreatedAt, &question.UpdatedAt)
	if err != nil {
		err = MapError(err, nil)
		log.Warn("failed to create question",
			slog.String("error", err.Error()),
			slog.String("form_id", question.FormID.String()))
		return err
	}

	log.Info("question created successfully", slog.String("question_id", question.ID.String()))
	return nil
}

// GetByID implements store.QuestionStore.GetByID.
// Returns store.ErrQuestionNotFound if the question does not exist.
func (s *PostgresQuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	question, err := scanQuestionWithForm(s.db.QueryRowContext(ctx, questionSelect+` WHERE q.id = $1`, id))
	if err != nil {
		return nil, MapError(err, store.ErrQuestionNotFound)
	}

	question.Answers, err = queryList(ctx, s.db, scanAnswer, `
		SELECT `+answerColumns+`
		FROM answers an
		WHERE an.question_id = $1
		ORDER BY an.created_at, an.id`, id)
	if err != nil {
		s.log(ctx).Error("failed to load question answers",
			slog.String("error", err.Error()),
			slog.String("question_id", id.String()))
		return nil, err
	}
	return question, nil
}

func (s *PostgresQuestionStore) list(ctx context.Context, where string, args ...any) ([]*domain.Question, error) {
	questions, err := queryList(ctx, s.db, scanQuestionWithForm,
		questionSelect+where+` ORDER BY q.created_at, q.id`, args...)
	if err != nil {
		s.log(ctx).Error("failed to list questions", slog.String("error", err.Error()))
		return nil, err
	}
	return questions, nil
}

// List implements store.QuestionStore.List.
func (s *PostgresQuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	return s.list(ctx, "")
}

// FindByName implements store.QuestionStore.FindByName.
func (s *PostgresQuestionStore) FindByName(ctx context.Context, query string) ([]*domain.Question, error) {
	return s.list(ctx, ` WHERE q.sentence ILIKE $1`, likePattern(query))
}

// ListByForm implements store.QuestionStore.ListByForm.
func (s *PostgresQuestionStore) ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Question, error) {
	return s.list(ctx, ` WHERE q.form_id = $1`, formID)
}

// Update implements store.QuestionStore.Update.
func (s *PostgresQuestionStore) Update(ctx context.Context, question *domain.Question) error {
	log := s.log(ctx)

	if err := question.Validate(); err != nil {
		log.Warn("question validation failed during update", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		UPDATE questions SET sentence = $1, form_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING created_at, updated_at`,
		question.Sentence, question.FormID, question.ID).Scan(&question.CreatedAt, &question.UpdatedAt)
	if err != nil {
		err = MapError(err, store.ErrQuestionNotFound)
		log.Warn("failed to update question",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return err
	}

	log.Info("question updated successfully", slog.String("question_id", question.ID.String()))
	return nil
}

// Delete implements store.QuestionStore.Delete. Answers cascade.
func (s *PostgresQuestionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := execDelete(ctx, s.db, `DELETE FROM questions WHERE id = $1`, id, store.ErrQuestionNotFound); err != nil {
		s.log(ctx).Warn("failed to delete question",
			slog.String("error", err.Error()),
			slog.String("question_id", id.String()))
		return err
	}
	s.log(ctx).Info("question deleted successfully", slog.String("question_id", id.String()))
	return nil
}

// WithTx implements store.QuestionStore.WithTx.
func (s *PostgresQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return &PostgresQuestionStore{base: base{db: tx, logger: s.logger}}
}

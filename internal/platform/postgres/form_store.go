package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

// PostgresFormStore implements the store.FormStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFormStore struct {
	base
}

// NewPostgresFormStore creates a new PostgreSQL implementation of the FormStore interface.
func NewPostgresFormStore(db store.DBTX, logger *slog.Logger) *PostgresFormStore {
	return &PostgresFormStore{base: newBase(db, logger, "form_store")}
}

var _ store.FormStore = (*PostgresFormStore)(nil)

// Create implements store.FormStore.Create.
func (s *PostgresFormStore) Create(ctx context.Context, form *domain.Form) error {
	log := s.log(ctx)

	if err := form.Validate(); err != nil {
		log.Warn("form validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO forms (name) VALUES ($1) RETURNING id, created_at, updated_at`,
		form.Name).Scan(&form.ID, &form.CreatedAt, &form.UpdatedAt)
	if err != nil {
		err = MapError(err, nil)
		log.Error("failed to create form", slog.String("error", err.Error()))
		return err
	}

	log.Info("form created successfully", slog.String("form_id", form.ID.String()))
	return nil
}

// GetByID implements store.FormStore.GetByID.
// Returns store.ErrFormNotFound if the form does not exist.
func (s *PostgresFormStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	log := s.log(ctx)

	form, err := scanForm(s.db.QueryRowContext(ctx,
		`SELECT `+formColumns+` FROM forms f WHERE f.id = $1`, id))
	if err != nil {
		return nil, MapError(err, store.ErrFormNotFound)
	}

	form.Categories, err = queryList(ctx, s.db, scanCategory, `
		SELECT `+categoryColumns+`
		FROM categories c
		WHERE c.form_id = $1
		ORDER BY lower(c.title), c.created_at`, id)
	if err != nil {
		log.Error("failed to load form categories",
			slog.String("error", err.Error()),
			slog.String("form_id", id.String()))
		return nil, err
	}

	form.Questions, err = queryList(ctx, s.db, scanQuestion, `
		SELECT `+questionColumns+`
		FROM questions q
		WHERE q.form_id = $1
		ORDER BY q.created_at, q.id`, id)
	if err != nil {
		log.Error("failed to load form questions",
			slog.String("error", err.Error()),
			slog.String("form_id", id.String()))
		return nil, err
	}
	return form, nil
}

func (s *PostgresFormStore) list(ctx context.Context, where string, args ...any) ([]*domain.Form, error) {
	forms, err := queryList(ctx, s.db, scanForm,
		`SELECT `+formColumns+` FROM forms f`+where+` ORDER BY lower(f.name), f.created_at`, args...)
	if err != nil {
		s.log(ctx).Error("failed to list forms", slog.String("error", err.Error()))
		return nil, err
	}
	return forms, nil
}

// List implements store.FormStore.List.
func (s *PostgresFormStore) List(ctx context.Context) ([]*domain.Form, error) {
	return s.list(ctx, "")
}

// FindByName implements store.FormStore.FindByName.
func (s *PostgresFormStore) FindByName(ctx context.Context, query string) ([]*domain.Form, error) {
	return s.list(ctx, ` WHERE f.name ILIKE $1`, likePattern(query))
}

// Update implements store.FormStore.Update.
func (s *PostgresFormStore) Update(ctx context.Context, form *domain.Form) error {
	log := s.log(ctx)

	if err := form.Validate(); err != nil {
		log.Warn("form validation failed during update", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		UPDATE forms SET name = $1, updated_at = now()
		WHERE id = $2
		RETURNING created_at, updated_at`,
		form.Name, form.ID).Scan(&form.CreatedAt, &form.UpdatedAt)
	if err != nil {
		err = MapError(err, store.ErrFormNotFound)
		log.Warn("failed to update form",
			slog.String("error", err.Error()),
			slog.String("form_id", form.ID.String()))
		return err
	}

	log.Info("form updated successfully", slog.String("form_id", form.ID.String()))
	return nil
}

// Delete implements store.FormStore.Delete.
// Questions and answers cascade; categories keep living with a NULL form_id.
func (s *PostgresFormStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := execDelete(ctx, s.db, `DELETE FROM forms WHERE id = $1`, id, store.ErrFormNotFound); err != nil {
		s.log(ctx).Warn("failed to delete form",
			slog.String("error", err.Error()),
			slog.String("form_id", id.String()))
		return err
	}
	s.log(ctx).Info("form deleted successfully", slog.String("form_id", id.String()))
	return nil
}

// WithTx implements store.FormStore.WithTx.
func (s *PostgresFormStore) WithTx(tx *sql.Tx) store.FormStore {
	return &PostgresFormStore{base: base{db: tx, logger: s.logger}}
}

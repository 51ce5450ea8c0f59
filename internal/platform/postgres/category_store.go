package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

const categorySelect = `
	SELECT ` + categoryColumns + `, f.name
	FROM categories c
	LEFT JOIN forms f ON f.id = c.form_id`

// PostgresCategoryStore implements the store.CategoryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCategoryStore struct {
	base
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the CategoryStore interface.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	return &PostgresCategoryStore{base: newBase(db, logger, "category_store")}
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// Create implements store.CategoryStore.Create.
// Returns store.ErrInvalidEntity if the form doesn't exist (foreign key violation).
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := s.log(ctx)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO categories (title, form_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, category.Title, category.FormID).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		err = MapError(err, nil)
		log.Warn("failed to create category", slog.String("error", err.Error()))
		return err
	}

	log.Info("category created successfully", slog.String("category_id", category.ID.String()))
	return nil
}

// GetByID implements store.CategoryStore.GetByID.
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	log := s.log(ctx)
	log.Debug("retrieving category by ID", slog.String("category_id", id.String()))

	category, err := scanCategoryWithForm(s.db.QueryRowContext(ctx, categorySelect+` WHERE c.id = $1`, id))
	if err != nil {
		return nil, MapError(err, store.ErrCategoryNotFound)
	}

	posts, err := queryList(ctx, s.db, scanPost, `
		SELECT `+postColumns+`
		FROM post_categories pc
		JOIN posts p ON p.id = pc.post_id
		WHERE pc.category_id = $1`+postOrder, id)
	if err != nil {
		log.Error("failed to load category posts",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return nil, err
	}
	category.Posts = posts
	return category, nil
}

func (s *PostgresCategoryStore) list(ctx context.Context, where string, args ...any) ([]*domain.Category, error) {
	categories, err := queryList(ctx, s.db, scanCategoryWithForm,
		categorySelect+where+` ORDER BY lower(c.title), c.created_at`, args...)
	if err != nil {
		s.log(ctx).Error("failed to list categories", slog.String("error", err.Error()))
		return nil, err
	}
	return categories, nil
}

// List implements store.CategoryStore.List.
func (s *PostgresCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	return s.list(ctx, "")
}

// FindByName implements store.CategoryStore.FindByName.
func (s *PostgresCategoryStore) FindByName(ctx context.Context, query string) ([]*domain.Category, error) {
	return s.list(ctx, ` WHERE c.title ILIKE $1`, likePattern(query))
}

// ListByForm implements store.CategoryStore.ListByForm.
func (s *PostgresCategoryStore) ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Category, error) {
	return s.list(ctx, ` WHERE c.form_id = $1`, formID)
}

// Update implements store.CategoryStore.Update.
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := s.log(ctx)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during update", slog.String("error", err.Error()))
		return err
	}

	query := `
		UPDATE categories
		SET title = $1, form_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, category.Title, category.FormID, category.ID).
		Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		err = MapError(err, store.ErrCategoryNotFound)
		log.Warn("failed to update category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	log.Info("category updated successfully", slog.String("category_id", category.ID.String()))
	return nil
}

// Delete implements store.CategoryStore.Delete.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := execDelete(ctx, s.db, `DELETE FROM categories WHERE id = $1`, id, store.ErrCategoryNotFound); err != nil {
		s.log(ctx).Warn("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return err
	}
	s.log(ctx).Info("category deleted successfully", slog.String("category_id", id.String()))
	return nil
}

// WithTx implements store.CategoryStore.WithTx.
func (s *PostgresCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &PostgresCategoryStore{base: base{db: tx, logger: s.logger}}
}

package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

// PostgresAuthorStore implements the store.AuthorStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAuthorStore struct {
	base
}

// NewPostgresAuthorStore creates a new PostgreSQL implementation of the AuthorStore interface.
func NewPostgresAuthorStore(db store.DBTX, logger *slog.Logger) *PostgresAuthorStore {
	return &PostgresAuthorStore{base: newBase(db, logger, "author_store")}
}

var _ store.AuthorStore = (*PostgresAuthorStore)(nil)

// Create implements store.AuthorStore.Create.
func (s *PostgresAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	log := s.log(ctx)

	if err := author.Validate(); err != nil {
		log.Warn("author validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO authors (name) VALUES ($1) RETURNING id, created_at, updated_at`,
		author.Name).Scan(&author.ID, &author.CreatedAt, &author.UpdatedAt)
	if err != nil {
		err = MapError(err, nil)
		log.Error("failed to create author", slog.String("error", err.Error()))
		return err
	}

	log.Info("author created successfully", slog.String("author_id", author.ID.String()))
	return nil
}

// GetByID implements store.AuthorStore.GetByID.
// Returns store.ErrAuthorNotFound if the author does not exist.
func (s *PostgresAuthorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	log := s.log(ctx)

	author, err := scanAuthor(s.db.QueryRowContext(ctx,
		`SELECT `+authorColumns+` FROM authors a WHERE a.id = $1`, id))
	if err != nil {
		return nil, MapError(err, store.ErrAuthorNotFound)
	}

	posts, err := queryList(ctx, s.db, scanPost, `
		SELECT `+postColumns+`
		FROM post_authors pa
		JOIN posts p ON p.id = pa.post_id
		WHERE pa.author_id = $1`+postOrder, id)
	if err != nil {
		log.Error("failed to load author posts",
			slog.String("error", err.Error()),
			slog.String("author_id", id.String()))
		return nil, err
	}
	author.Posts = posts
	return author, nil
}

func (s *PostgresAuthorStore) list(ctx context.Context, where string, args ...any) ([]*domain.Author, error) {
	authors, err := queryList(ctx, s.db, scanAuthor,
		`SELECT `+authorColumns+` FROM authors a`+where+` ORDER BY lower(a.name), a.created_at`, args...)
	if err != nil {
		s.log(ctx).Error("failed to list authors", slog.String("error", err.Error()))
		return nil, err
	}
	return authors, nil
}

// List implements store.AuthorStore.List.
func (s *PostgresAuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	return s.list(ctx, "")
}

// FindByName implements store.AuthorStore.FindByName.
func (s *PostgresAuthorStore) FindByName(ctx context.Context, query string) ([]*domain.Author, error) {
	return s.list(ctx, ` WHERE a.name ILIKE $1`, likePattern(query))
}

// Update implements store.AuthorStore.Update.
func (s *PostgresAuthorStore) Update(ctx context.Context, author *domain.Author) error {
	log := s.log(ctx)

	if err := author.Validate(); err != nil {
		log.Warn("author validation failed during update", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		UPDATE authors SET name = $1, updated_at = now()
		WHERE id = $2
		RETURNING created_at, updated_at`,
		author.Name, author.ID).Scan(&author.CreatedAt, &author.UpdatedAt)
	if err != nil {
		err = MapError(err, store.ErrAuthorNotFound)
		log.Warn("failed to update author",
			slog.String("error", err.Error()),
			slog.String("author_id", author.ID.String()))
		return err
	}

	log.Info("author updated successfully", slog.String("author_id", author.ID.String()))
	return nil
}

// Delete implements store.AuthorStore.Delete.
func (s *PostgresAuthorStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := execDelete(ctx, s.db, `DELETE FROM authors WHERE id = $1`, id, store.ErrAuthorNotFound); err != nil {
		s.log(ctx).Warn("failed to delete author",
			slog.String("error", err.Error()),
			slog.String("author_id", id.String()))
		return err
	}
	s.log(ctx).Info("author deleted successfully", slog.String("author_id", id.String()))
	return nil
}

// WithTx implements store.AuthorStore.WithTx.
func (s *PostgresAuthorStore) WithTx(tx *sql.Tx) store.AuthorStore {
	return &PostgresAuthorStore{base: base{db: tx, logger: s.logger}}
}

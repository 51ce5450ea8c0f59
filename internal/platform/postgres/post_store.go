package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

const (
	postSelect = `
		SELECT ` + postColumns + `, u.name, u.email
		FROM posts p
		LEFT JOIN users u ON u.id = p.user_id`

	postOrder = ` ORDER BY p.created_at, p.id`

	postCategoriesSelect = `
		SELECT pc.post_id, ` + categoryColumns + `
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id`
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	base
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	return &PostgresPostStore{base: newBase(db, logger, "post_store")}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create.
// The post row and its join rows are separate statements; callers run it in a
// transaction through WithTx.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := s.log(ctx)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO posts (name, content, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, post.Name, post.Content, post.UserID).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		log.Error("failed to create post", slog.String("error", err.Error()))
		return MapError(err, nil)
	}

	if err := s.writeLinks(ctx, post); err != nil {
		log.Error("failed to link post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return MapError(err, nil)
	}

	log.Info("post created successfully", slog.String("post_id", post.ID.String()))
	return nil
}

func (s *PostgresPostStore) writeLinks(ctx context.Context, post *domain.Post) error {
	if err := replaceLinks(ctx, s.db, "post_categories", "post_id", "category_id", post.ID, post.CategoryIDs()); err != nil {
		return err
	}
	return replaceLinks(ctx, s.db, "post_authors", "post_id", "author_id", post.ID, post.AuthorIDs())
}

// GetByID implements store.PostStore.GetByID.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	log := s.log(ctx)
	log.Debug("retrieving post by ID", slog.String("post_id", id.String()))

	post, err := scanPostWithOwner(s.db.QueryRowContext(ctx, postSelect+` WHERE p.id = $1`, id))
	if err != nil {
		err = MapError(err, store.ErrPostNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to get post by ID",
				slog.String("error", err.Error()),
				slog.String("post_id", id.String()))
		}
		return nil, err
	}

	if err := s.attachCategories(ctx, []*domain.Post{post}, ` WHERE pc.post_id = $1`, id); err != nil {
		return nil, err
	}

	authors, err := queryList(ctx, s.db, scanAuthor, `
		SELECT `+authorColumns+`
		FROM post_authors pa
		JOIN authors a ON a.id = pa.author_id
		WHERE pa.post_id = $1
		ORDER BY lower(a.name), a.created_at`, id)
	if err != nil {
		log.Error("failed to load post authors",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, err
	}
	post.Authors = authors
	return post, nil
}

// attachCategories loads the categories of posts. where filters
// post_categories (alias pc) and shares args with it.
func (s *PostgresPostStore) attachCategories(ctx context.Context, posts []*domain.Post, where string, args ...any) error {
	if len(posts) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*domain.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}

	rows, err := s.db.QueryContext(ctx, postCategoriesSelect+where+` ORDER BY lower(c.title), c.created_at`, args...)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			postID uuid.UUID
			c      domain.Category
		)
		if err := rows.Scan(&postID, &c.ID, &c.Title, &c.FormID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
		if p, ok := byID[postID]; ok {
			cat := c
			p.Categories = append(p.Categories, &cat)
		}
	}
	return rows.Err()
}

// list returns the posts matching where (over alias p) with owners and
// categories loaded.
func (s *PostgresPostStore) list(ctx context.Context, where string, args ...any) ([]*domain.Post, error) {
	log := s.log(ctx)

	posts, err := queryList(ctx, s.db, scanPostWithOwner, postSelect+where+postOrder, args...)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}

	linkWhere := ` WHERE pc.post_id IN (SELECT p.id FROM posts p` + where + `)`
	if err := s.attachCategories(ctx, posts, linkWhere, args...); err != nil {
		log.Error("failed to load post categories", slog.String("error", err.Error()))
		return nil, err
	}
	return posts, nil
}

// List implements store.PostStore.List.
func (s *PostgresPostStore) List(ctx context.Context) ([]*domain.Post, error) {
	return s.list(ctx, "")
}

// FindByName implements store.PostStore.FindByName.
func (s *PostgresPostStore) FindByName(ctx context.Context, query string) ([]*domain.Post, error) {
	return s.list(ctx, ` WHERE p.name ILIKE $1`, likePattern(query))
}

// ListByUser implements store.PostStore.ListByUser.
func (s *PostgresPostStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error) {
	return s.list(ctx, ` WHERE p.user_id = $1`, userID)
}

// Update implements store.PostStore.Update.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := s.log(ctx)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update", slog.String("error", err.Error()))
		return err
	}

	query := `
		UPDATE posts
		SET name = $1, content = $2, user_id = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, post.Name, post.Content, post.UserID, post.ID).
		Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		err = MapError(err, store.ErrPostNotFound)
		log.Warn("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	if err := s.writeLinks(ctx, post); err != nil {
		log.Error("failed to relink post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return MapError(err, nil)
	}

	log.Info("post updated successfully", slog.String("post_id", post.ID.String()))
	return nil
}

// Delete implements store.PostStore.Delete.
// Join rows go with the post.
func (s *PostgresPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := execDelete(ctx, s.db, `DELETE FROM posts WHERE id = $1`, id, store.ErrPostNotFound); err != nil {
		s.log(ctx).Warn("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return err
	}
	s.log(ctx).Info("post deleted successfully", slog.String("post_id", id.String()))
	return nil
}

// WithTx implements store.PostStore.WithTx.
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{base: base{db: tx, logger: s.logger}}
}

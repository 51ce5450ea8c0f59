package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/redact"
	"github.com/phrazzld/quire/internal/store"
)

const userSelect = `SELECT ` + userColumns + ` FROM users u`

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
// It expects HashedPassword to be set; plaintext passwords never reach the database.
type PostgresUserStore struct {
	base
	posts *PostgresPostStore
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	return &PostgresUserStore{
		base:  newBase(db, logger, "user_store"),
		posts: NewPostgresPostStore(db, logger),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// mapUserError turns unique violations on name or email into store.ErrUserExists.
func mapUserError(err error, notFound error) error {
	if IsUniqueViolation(err) {
		return store.ErrUserExists
	}
	return MapError(err, notFound)
}

// Create implements store.UserStore.Create.
// Returns store.ErrUserExists if the name or email is taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := s.log(ctx)

	if user.HashedPassword == "" {
		return domain.NewValidationError("password", "must be hashed before storing", nil)
	}
	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		user.Name, user.Email, user.HashedPassword).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		err = mapUserError(err, nil)
		log.Warn("failed to create user", slog.String("error", redact.Error(err)))
		return err
	}
	user.Password = ""

	log.Info("user created successfully", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		return nil, MapError(err, store.ErrUserNotFound)
	}

	user.Posts, err = s.posts.ListByUser(ctx, id)
	if err != nil {
		s.log(ctx).Error("failed to load user posts",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}
	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		userSelect+` WHERE lower(u.email) = lower($1)`, strings.TrimSpace(email)))
	if err != nil {
		return nil, MapError(err, store.ErrUserNotFound)
	}
	return user, nil
}

// GetByName implements store.UserStore.GetByName.
func (s *PostgresUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx, userSelect+` WHERE u.name = $1`, name))
	if err != nil {
		return nil, MapError(err, store.ErrUserNotFound)
	}
	return user, nil
}

func (s *PostgresUserStore) list(ctx context.Context, where string, args ...any) ([]*domain.User, error) {
	users, err := queryList(ctx, s.db, scanUser,
		userSelect+where+` ORDER BY lower(u.name), u.created_at`, args...)
	if err != nil {
		s.log(ctx).Error("failed to list users", slog.String("error", err.Error()))
		return nil, err
	}
	return users, nil
}

// List implements store.UserStore.List.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	return s.list(ctx, "")
}

// FindByName implements store.UserStore.FindByName.
func (s *PostgresUserStore) FindByName(ctx context.Context, query string) ([]*domain.User, error) {
	return s.list(ctx, ` WHERE u.name ILIKE $1`, likePattern(query))
}

// FindDuplicates implements store.UserStore.FindDuplicates.
func (s *PostgresUserStore) FindDuplicates(ctx context.Context, name, email string) ([]*domain.User, error) {
	return s.list(ctx, ` WHERE u.name = $1 OR lower(u.email) = lower($2)`, name, email)
}

// Update implements store.UserStore.Update.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := s.log(ctx)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		UPDATE users SET name = $1, email = $2, hashed_password = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at`,
		user.Name, user.Email, user.HashedPassword, user.ID).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		err = mapUserError(err, store.ErrUserNotFound)
		log.Warn("failed to update user",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		return err
	}
	user.Password = ""

	log.Info("user updated successfully", slog.String("user_id", user.ID.String()))
	return nil
}

// Delete implements store.UserStore.Delete.
// Posts and answers keep living with a NULL user_id.
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := execDelete(ctx, s.db, `DELETE FROM users WHERE id = $1`, id, store.ErrUserNotFound); err != nil {
		s.log(ctx).Warn("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}
	s.log(ctx).Info("user deleted successfully", slog.String("user_id", id.String()))
	return nil
}

// WithTx implements store.UserStore.WithTx.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{base: base{db: tx, logger: s.logger}}
}

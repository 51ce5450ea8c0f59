package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Stores only ever see hashed passwords; hashing is the caller's job.
type UserStore interface {
	// Create saves a new user. It assigns ID, CreatedAt and UpdatedAt.
	// Returns ErrUserExists if the name or email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID with their posts loaded.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email, ignoring case.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByName retrieves a user by exact name.
	// Returns ErrUserNotFound if the user does not exist.
	GetByName(ctx context.Context, name string) (*domain.User, error)

	// List returns every user ordered by name.
	List(ctx context.Context) ([]*domain.User, error)

	FindByName(ctx context.Context, query string) ([]*domain.User, error)

	// FindDuplicates returns the users whose name equals name or whose email
	// equals email ignoring case. Registration uses it to reject clashes.
	FindDuplicates(ctx context.Context, name, email string) ([]*domain.User, error)

	// Update modifies name, email and password hash.
	// Returns ErrUserNotFound if the user does not exist and ErrUserExists on a clash.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user. Their posts and answers are kept without an owner.
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) UserStore
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/service/auth"
	"github.com/phrazzld/quire/internal/store"
)

// UserUpdate carries the editable fields of an account. An empty Password
// keeps the current one.
type UserUpdate struct {
	Name     string
	Email    string
	Password string
}

// UserService provides account operations.
type UserService interface {
	// Register creates an account. It fails with store.ErrUserExists when
	// another account already has the same name or the same email.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Authenticate checks a login. identifier is an email or a user name.
	// Returns ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)

	// GetUser retrieves a user by their ID with their posts.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// ListUsers returns all users, or those whose name contains query.
	ListUsers(ctx context.Context, query string) ([]*domain.User, error)

	// UpdateUser applies the same duplicate rule as Register, ignoring the user itself.
	UpdateUser(ctx context.Context, userID uuid.UUID, update UserUpdate) (*domain.User, error)

	// DeleteUser deletes a user by their ID
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	users    store.UserStore
	tx       store.TxRunner
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// NewUserService creates a new UserService. BcryptVerifier satisfies both
// hasher and verifier.
func NewUserService(
	users store.UserStore,
	tx store.TxRunner,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		users:    users,
		tx:       tx,
		hasher:   hasher,
		verifier: verifier,
		logger:   logger.With("component", "user_service"),
	}
}

var _ UserService = (*UserServiceImpl)(nil)

// hashPassword moves u.Password into u.HashedPassword.
func (s *UserServiceImpl) hashPassword(u *domain.User) error {
	hash, err := s.hasher.Hash(u.Password)
	if err != nil {
		return err
	}
	u.HashedPassword = hash
	u.Password = ""
	return nil
}

// Register implements UserService.
func (s *UserServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		s.logger.Debug("rejected registration", "error", err)
		return nil, err
	}
	if err := s.hashPassword(user); err != nil {
		return nil, NewServiceError("register_user", "failed to hash password", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		users := s.users.WithTx(tx)

		dups, err := users.FindDuplicates(ctx, user.Name, user.Email)
		if err != nil {
			return err
		}
		if len(dups) > 0 {
			return store.ErrUserExists
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			s.logger.Debug("attempted to register an existing identity", "name", user.Name)
			return nil, err
		}
		s.logger.Error("failed to register user", "error", err)
		return nil, NewServiceError("register_user", "failed to save user", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate implements UserService.
func (s *UserServiceImpl) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.GetByEmail(ctx, identifier)
	} else {
		user, err = s.users.GetByName(ctx, identifier)
	}
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return nil, NewServiceError("authenticate", "failed to look up user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser implements UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ListUsers implements UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, query string) ([]*domain.User, error) {
	if query = strings.TrimSpace(query); query != "" {
		return s.users.FindByName(ctx, query)
	}
	return s.users.List(ctx)
}

// UpdateUser implements UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, userID uuid.UUID, update UserUpdate) (*domain.User, error) {
	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		users := s.users.WithTx(tx)

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		user.Name = strings.TrimSpace(update.Name)
		user.Email = strings.TrimSpace(update.Email)
		user.Password = update.Password
		if err := user.Validate(); err != nil {
			return err
		}
		if user.Password != "" {
			if err := s.hashPassword(user); err != nil {
				return NewServiceError("update_user", "failed to hash password", err)
			}
		}

		dups, err := users.FindDuplicates(ctx, user.Name, user.Email)
		if err != nil {
			return err
		}
		for _, d := range dups {
			if d.ID != user.ID {
				return store.ErrUserExists
			}
		}

		if err := users.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserExists) && !errors.Is(err, domain.ErrValidation) && !store.IsNotFoundError(err) {
			s.logger.Error("failed to update user", "error", err, "user_id", userID)
		}
		return nil, err
	}

	s.logger.Info("user updated", "user_id", userID)
	return updated, nil
}

// DeleteUser implements UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to delete user", "error", err, "user_id", userID)
		}
		return err
	}
	s.logger.Info("user deleted", "user_id", userID)
	return nil
}

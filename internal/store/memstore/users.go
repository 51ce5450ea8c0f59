package memstore

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

// UserStore implements store.UserStore in memory. Name and email are unique;
// email comparisons ignore case.
type UserStore struct {
	db *DB
}

// NewUserStore returns a UserStore over db.
func NewUserStore(db *DB) *UserStore { return &UserStore{db: db} }

var _ store.UserStore = (*UserStore)(nil)

// clashes reports whether another user already holds u's name or email.
// Callers hold the lock.
func (s *UserStore) clashes(u *domain.User) bool {
	for id, row := range s.db.users {
		if id != u.ID && u.SameIdentity(&row.user) {
			return true
		}
	}
	return false
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.clashes(user) {
		return store.ErrUserExists
	}
	seq, now := s.db.stamp()
	user.ID = uuid.New()
	user.CreatedAt, user.UpdatedAt = now, now
	row := &userRow{seq: seq, user: *user}
	row.user.Password = ""
	s.db.users[user.ID] = row
	return nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.db.mu.RLock()
	row, ok := s.db.users[id]
	var user *domain.User
	if ok {
		user = row.copy()
	}
	s.db.mu.RUnlock()
	if !ok {
		return nil, store.ErrUserNotFound
	}

	posts, err := (&PostStore{db: s.db}).ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Posts = posts
	return user, nil
}

func (s *UserStore) first(match func(*userRow) bool) (*domain.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, row := range s.db.users {
		if match(row) {
			return row.copy(), nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements store.UserStore.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	return s.first(func(r *userRow) bool { return strings.EqualFold(r.user.Email, email) })
}

// GetByName implements store.UserStore.
func (s *UserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	return s.first(func(r *userRow) bool { return r.user.Name == name })
}

func (s *UserStore) collect(match func(*userRow) bool) []*domain.User {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := make([]*userRow, 0, len(s.db.users))
	for _, row := range s.db.users {
		if match(row) {
			rows = append(rows, row)
		}
	}
	sortBy(rows, func(r *userRow) string { return r.user.Name }, func(r *userRow) int64 { return r.seq })

	out := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.copy())
	}
	return out
}

// List implements store.UserStore.
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	return s.collect(func(*userRow) bool { return true }), nil
}

// FindByName implements store.UserStore.
func (s *UserStore) FindByName(ctx context.Context, query string) ([]*domain.User, error) {
	return s.collect(func(r *userRow) bool { return contains(r.user.Name, query) }), nil
}

// FindDuplicates implements store.UserStore.
func (s *UserStore) FindDuplicates(ctx context.Context, name, email string) ([]*domain.User, error) {
	candidate := &domain.User{Name: name, Email: email}
	return s.collect(func(r *userRow) bool { return candidate.SameIdentity(&r.user) }), nil
}

// Update implements store.UserStore.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	row, ok := s.db.users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}
	if s.clashes(user) {
		return store.ErrUserExists
	}
	user.CreatedAt = row.user.CreatedAt
	user.UpdatedAt = s.db.now()
	row.user = *user
	row.user.Password = ""
	return nil
}

// Delete implements store.UserStore. Posts and answers lose their owner.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.db.users, id)
	for _, p := range s.db.posts {
		if p.post.UserID.Valid && p.post.UserID.UUID == id {
			p.post.UserID = uuid.NullUUID{}
		}
	}
	for _, a := range s.db.answers {
		if a.answer.UserID.Valid && a.answer.UserID.UUID == id {
			a.answer.UserID = uuid.NullUUID{}
		}
	}
	return nil
}

// WithTx implements store.UserStore.
func (s *UserStore) WithTx(_ *sql.Tx) store.UserStore { return s }

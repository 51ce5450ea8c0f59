package memstore

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

// AuthorStore implements store.AuthorStore in memory.
type AuthorStore struct {
	db *DB
}

// NewAuthorStore returns an AuthorStore over db.
func NewAuthorStore(db *DB) *AuthorStore { return &AuthorStore{db: db} }

var _ store.AuthorStore = (*AuthorStore)(nil)

// Create implements store.AuthorStore.
func (s *AuthorStore) Create(ctx context.Context, author *domain.Author) error {
	if err := author.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	seq, now := s.db.stamp()
	author.ID = uuid.New()
	author.CreatedAt, author.UpdatedAt = now, now
	s.db.authors[author.ID] = &authorRow{seq: seq, author: *author}
	return nil
}

// GetByID implements store.AuthorStore.
func (s *AuthorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	row, ok := s.db.authors[id]
	if !ok {
		return nil, store.ErrAuthorNotFound
	}
	author := row.copy()
	var posts []*postRow
	for _, p := range s.db.posts {
		for _, aid := range p.authors {
			if aid == id {
				posts = append(posts, p)
				break
			}
		}
	}
	sortPostRows(posts)
	for _, p := range posts {
		author.Posts = append(author.Posts, p.copy())
	}
	return author, nil
}

func (s *AuthorStore) collect(match func(*authorRow) bool) []*domain.Author {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := make([]*authorRow, 0, len(s.db.authors))
	for _, row := range s.db.authors {
		if match(row) {
			rows = append(rows, row)
		}
	}
	sortBy(rows, func(r *authorRow) string { return r.author.Name }, func(r *authorRow) int64 { return r.seq })

	out := make([]*domain.Author, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.copy())
	}
	return out
}

// List implements store.AuthorStore.
func (s *AuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	return s.collect(func(*authorRow) bool { return true }), nil
}

// FindByName implements store.AuthorStore.
func (s *AuthorStore) FindByName(ctx context.Context, query string) ([]*domain.Author, error) {
	return s.collect(func(r *authorRow) bool { return contains(r.author.Name, query) }), nil
}

// Update implements store.AuthorStore.
func (s *AuthorStore) Update(ctx context.Context, author *domain.Author) error {
	if err := author.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	row, ok := s.db.authors[author.ID]
	if !ok {
		return store.ErrAuthorNotFound
	}
	author.CreatedAt = row.author.CreatedAt
	author.UpdatedAt = s.db.now()
	row.author = *author
	return nil
}

// Delete implements store.AuthorStore. Posts drop the credit.
func (s *AuthorStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.authors[id]; !ok {
		return store.ErrAuthorNotFound
	}
	delete(s.db.authors, id)
	for _, p := range s.db.posts {
		p.authors = without(p.authors, id)
	}
	return nil
}

// WithTx implements store.AuthorStore.
func (s *AuthorStore) WithTx(_ *sql.Tx) store.AuthorStore { return s }

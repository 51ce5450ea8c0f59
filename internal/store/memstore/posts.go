package memstore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

// PostStore implements store.PostStore in memory.
type PostStore struct {
	db *DB
}

// NewPostStore returns a PostStore over db.
func NewPostStore(db *DB) *PostStore { return &PostStore{db: db} }

var _ store.PostStore = (*PostStore)(nil)

// checkPostRefs verifies the owner, categories and authors exist.
// Callers hold the lock.
func (s *PostStore) checkPostRefs(post *domain.Post) error {
	if post.UserID.Valid {
		if _, ok := s.db.users[post.UserID.UUID]; !ok {
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, post.UserID.UUID)
		}
	}
	for _, id := range post.CategoryIDs() {
		if _, ok := s.db.categories[id]; !ok {
			return fmt.Errorf("%w: category with ID %s not found", store.ErrInvalidEntity, id)
		}
	}
	for _, id := range post.AuthorIDs() {
		if _, ok := s.db.authors[id]; !ok {
			return fmt.Errorf("%w: author with ID %s not found", store.ErrInvalidEntity, id)
		}
	}
	return nil
}

func linkIDs(ids []uuid.UUID) []uuid.UUID {
	var out []uuid.UUID
	for _, id := range ids {
		out = appendUnique(out, id)
	}
	return out
}

// Create implements store.PostStore.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := s.checkPostRefs(post); err != nil {
		return err
	}
	seq, now := s.db.stamp()
	post.ID = uuid.New()
	post.CreatedAt, post.UpdatedAt = now, now
	row := &postRow{
		seq:        seq,
		categories: linkIDs(post.CategoryIDs()),
		authors:    linkIDs(post.AuthorIDs()),
	}
	row.post = *post
	s.db.posts[post.ID] = row
	return nil
}

// GetByID implements store.PostStore.
func (s *PostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	row, ok := s.db.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	post := s.db.loadPost(row)
	for _, aid := range row.authors {
		if a, ok := s.db.authors[aid]; ok {
			post.Authors = append(post.Authors, a.copy())
		}
	}
	return post, nil
}

// loadPost copies row with owner and categories attached.
func (db *DB) loadPost(row *postRow) *domain.Post {
	post := row.copy()
	if post.UserID.Valid {
		if u, ok := db.users[post.UserID.UUID]; ok {
			post.User = u.copy()
		}
	}
	for _, cid := range row.categories {
		if c, ok := db.categories[cid]; ok {
			post.Categories = append(post.Categories, c.copy())
		}
	}
	return post
}

// sortPostRows orders posts oldest first.
func sortPostRows(rows []*postRow) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
}

func (s *PostStore) collect(match func(*postRow) bool) []*domain.Post {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := make([]*postRow, 0, len(s.db.posts))
	for _, row := range s.db.posts {
		if match(row) {
			rows = append(rows, row)
		}
	}
	sortPostRows(rows)

	posts := make([]*domain.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, s.db.loadPost(row))
	}
	return posts
}

// List implements store.PostStore.
func (s *PostStore) List(ctx context.Context) ([]*domain.Post, error) {
	return s.collect(func(*postRow) bool { return true }), nil
}

// FindByName implements store.PostStore.
func (s *PostStore) FindByName(ctx context.Context, query string) ([]*domain.Post, error) {
	return s.collect(func(r *postRow) bool { return contains(r.post.Name, query) }), nil
}

// ListByUser implements store.PostStore.
func (s *PostStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error) {
	return s.collect(func(r *postRow) bool {
		return r.post.UserID.Valid && r.post.UserID.UUID == userID
	}), nil
}

// Update implements store.PostStore.
func (s *PostStore) Update(ctx context.Context, post *domain.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	row, ok := s.db.posts[post.ID]
	if !ok {
		return store.ErrPostNotFound
	}
	if err := s.checkPostRefs(post); err != nil {
		return err
	}
	post.CreatedAt = row.post.CreatedAt
	post.UpdatedAt = s.db.now()
	row.post = *post
	row.categories = linkIDs(post.CategoryIDs())
	row.authors = linkIDs(post.AuthorIDs())
	return nil
}

// Delete implements store.PostStore.
func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.posts[id]; !ok {
		return store.ErrPostNotFound
	}
	delete(s.db.posts, id)
	return nil
}

// WithTx implements store.PostStore. Transactions do not apply in memory.
func (s *PostStore) WithTx(_ *sql.Tx) store.PostStore { return s }

package memstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

// CategoryStore implements store.CategoryStore in memory.
type CategoryStore struct {
	db *DB
}

// NewCategoryStore returns a CategoryStore over db.
func NewCategoryStore(db *DB) *CategoryStore { return &CategoryStore{db: db} }

var _ store.CategoryStore = (*CategoryStore)(nil)

func (s *CategoryStore) checkForm(c *domain.Category) error {
	if !c.FormID.Valid {
		return nil
	}
	if _, ok := s.db.forms[c.FormID.UUID]; !ok {
		return fmt.Errorf("%w: form with ID %s not found", store.ErrInvalidEntity, c.FormID.UUID)
	}
	return nil
}

// Create implements store.CategoryStore.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := s.checkForm(category); err != nil {
		return err
	}
	seq, now := s.db.stamp()
	category.ID = uuid.New()
	category.CreatedAt, category.UpdatedAt = now, now
	s.db.categories[category.ID] = &categoryRow{seq: seq, category: *category}
	return nil
}

// GetByID implements store.CategoryStore.
func (s *CategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	row, ok := s.db.categories[id]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	category := s.db.loadCategory(row)
	posts := make([]*postRow, 0)
	for _, p := range s.db.posts {
		for _, cid := range p.categories {
			if cid == id {
				posts = append(posts, p)
				break
			}
		}
	}
	sortPostRows(posts)
	for _, p := range posts {
		category.Posts = append(category.Posts, p.copy())
	}
	return category, nil
}

func (db *DB) loadCategory(row *categoryRow) *domain.Category {
	category := row.copy()
	if category.FormID.Valid {
		if f, ok := db.forms[category.FormID.UUID]; ok {
			category.Form = f.copy()
		}
	}
	return category
}

func (s *CategoryStore) collect(match func(*categoryRow) bool) []*domain.Category {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := make([]*categoryRow, 0, len(s.db.categories))
	for _, row := range s.db.categories {
		if match(row) {
			rows = append(rows, row)
		}
	}
	sortBy(rows, func(r *categoryRow) string { return r.category.Title }, func(r *categoryRow) int64 { return r.seq })

	out := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.db.loadCategory(row))
	}
	return out
}

// List implements store.CategoryStore.
func (s *CategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	return s.collect(func(*categoryRow) bool { return true }), nil
}

// FindByName implements store.CategoryStore.
func (s *CategoryStore) FindByName(ctx context.Context, query string) ([]*domain.Category, error) {
	return s.collect(func(r *categoryRow) bool { return contains(r.category.Title, query) }), nil
}

// ListByForm implements store.CategoryStore.
func (s *CategoryStore) ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Category, error) {
	return s.collect(func(r *categoryRow) bool {
		return r.category.FormID.Valid && r.category.FormID.UUID == formID
	}), nil
}

// Update implements store.CategoryStore.
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	row, ok := s.db.categories[category.ID]
	if !ok {
		return store.ErrCategoryNotFound
	}
	if err := s.checkForm(category); err != nil {
		return err
	}
	category.CreatedAt = row.category.CreatedAt
	category.UpdatedAt = s.db.now()
	row.category = *category
	return nil
}

// Delete implements store.CategoryStore. Posts drop the link.
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.categories[id]; !ok {
		return store.ErrCategoryNotFound
	}
	delete(s.db.categories, id)
	for _, p := range s.db.posts {
		p.categories = without(p.categories, id)
	}
	return nil
}

// WithTx implements store.CategoryStore.
func (s *CategoryStore) WithTx(_ *sql.Tx) store.CategoryStore { return s }

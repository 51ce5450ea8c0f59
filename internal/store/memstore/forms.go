package memstore

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/store"
)

// FormStore implements store.FormStore in memory.
type FormStore struct {
	db *DB
}

// NewFormStore returns a FormStore over db.
func NewFormStore(db *DB) *FormStore { return &FormStore{db: db} }

var _ store.FormStore = (*FormStore)(nil)

// Create implements store.FormStore.
func (s *FormStore) Create(ctx context.Context, form *domain.Form) error {
	if err := form.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	seq, now := s.db.stamp()
	form.ID = uuid.New()
	form.CreatedAt, form.UpdatedAt = now, now
	s.db.forms[form.ID] = &formRow{seq: seq, form: *form}
	return nil
}

// GetByID implements store.FormStore.
func (s *FormStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	row, ok := s.db.forms[id]
	if !ok {
		return nil, store.ErrFormNotFound
	}
	form := row.copy()

	var categories []*categoryRow
	for _, c := range s.db.categories {
		if c.category.FormID.Valid && c.category.FormID.UUID == id {
			categories = append(categories, c)
		}
	}
	sortBy(categories, func(r *categoryRow) string { return r.category.Title }, func(r *categoryRow) int64 { return r.seq })
	for _, c := range categories {
		form.Categories = append(form.Categories, c.copy())
	}

	for _, q := range s.db.questionsOf(id) {
		form.Questions = append(form.Questions, q.copy())
	}
	return form, nil
}

func (s *FormStore) collect(match func(*formRow) bool) []*domain.Form {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := make([]*formRow, 0, len(s.db.forms))
	for _, row := range s.db.forms {
		if match(row) {
			rows = append(rows, row)
		}
	}
	sortBy(rows, func(r *formRow) string { return r.form.Name }, func(r *formRow) int64 { return r.seq })

	out := make([]*domain.Form, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.copy())
	}
	return out
}

// List implements store.FormStore.
func (s *FormStore) List(ctx context.Context) ([]*domain.Form, error) {
	return s.collect(func(*formRow) bool { return true }), nil
}

// FindByName implements store.FormStore.
func (s *FormStore) FindByName(ctx context.Context, query string) ([]*domain.Form, error) {
	return s.collect(func(r *formRow) bool { return contains(r.form.Name, query) }), nil
}

// Update implements store.FormStore.
func (s *FormStore) Update(ctx context.Context, form *domain.Form) error {
	if err := form.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	row, ok := s.db.forms[form.ID]
	if !ok {
		return store.ErrFormNotFound
	}
	form.CreatedAt = row.form.CreatedAt
	form.UpdatedAt = s.db.now()
	row.form = *form
	return nil
}

// Delete implements store.FormStore. Questions and their answers go with the
// form; categories are detached.
func (s *FormStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.forms[id]; !ok {
		return store.ErrFormNotFound
	}
	delete(s.db.forms, id)
	for _, q := range s.db.questionsOf(id) {
		s.db.deleteQuestion(q.question.ID)
	}
	for _, c := range s.db.categories {
		if c.category.FormID.Valid && c.category.FormID.UUID == id {
			c.category.FormID = uuid.NullUUID{}
		}
	}
	return nil
}

// WithTx implements store.FormStore.
func (s *FormStore) WithTx(_ *sql.Tx) store.FormStore { return s }

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

// AnswerStore implements store.AnswerStore in memory.
type AnswerStore struct {
	db *DB
}

// NewAnswerStore returns an AnswerStore over db.
func NewAnswerStore(db *DB) *AnswerStore { return &AnswerStore{db: db} }

var _ store.AnswerStore = (*AnswerStore)(nil)

// answersOf returns the answers to a question in creation order.
// Callers hold the lock.
func (db *DB) answersOf(questionID uuid.UUID) []*answerRow {
	var rows []*answerRow
	for _, a := range db.answers {
		if a.answer.QuestionID == questionID {
			rows = append(rows, a)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	return rows
}

func (s *AnswerStore) checkRefs(a *domain.Answer) error {
	if _, ok := s.db.questions[a.QuestionID]; !ok {
		return fmt.Errorf("%w: question with ID %s not found", store.ErrInvalidEntity, a.QuestionID)
	}
	if a.UserID.Valid {
		if _, ok := s.db.users[a.UserID.UUID]; !ok {
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, a.UserID.UUID)
		}
	}
	return nil
}

// Create implements store.AnswerStore.
func (s *AnswerStore) Create(ctx context.Context, answer *domain.Answer) error {
	if err := answer.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := s.checkRefs(answer); err != nil {
		return err
	}
	seq, now := s.db.stamp()
	answer.ID = uuid.New()
	answer.CreatedAt, answer.UpdatedAt = now, now
	s.db.answers[answer.ID] = &answerRow{seq: seq, answer: *answer}
	return nil
}

func (db *DB) loadAnswer(row *answerRow) *domain.Answer {
	a := row.copy()
	if q, ok := db.questions[a.QuestionID]; ok {
		a.Question = q.copy()
	}
	if a.UserID.Valid {
		if u, ok := db.users[a.UserID.UUID]; ok {
			a.User = u.copy()
		}
	}
	return a
}

// GetByID implements store.AnswerStore.
func (s *AnswerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	row, ok := s.db.answers[id]
	if !ok {
		return nil, store.ErrAnswerNotFound
	}
	return s.db.loadAnswer(row), nil
}

func (s *AnswerStore) collect(match func(*answerRow) bool) []*domain.Answer {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := make([]*answerRow, 0, len(s.db.answers))
	for _, row := range s.db.answers {
		if match(row) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]*domain.Answer, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.db.loadAnswer(row))
	}
	return out
}

// List implements store.AnswerStore.
func (s *AnswerStore) List(ctx context.Context) ([]*domain.Answer, error) {
	return s.collect(func(*answerRow) bool { return true }), nil
}

// FindByName implements store.AnswerStore.
func (s *AnswerStore) FindByName(ctx context.Context, query string) ([]*domain.Answer, error) {
	return s.collect(func(r *answerRow) bool { return contains(r.answer.Name, query) }), nil
}

// ListByQuestion implements store.AnswerStore.
func (s *AnswerStore) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error) {
	return s.collect(func(r *answerRow) bool { return r.answer.QuestionID == questionID }), nil
}

// Update implements store.AnswerStore.
func (s *AnswerStore) Update(ctx context.Context, answer *domain.Answer) error {
	if err := answer.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	row, ok := s.db.answers[answer.ID]
	if !ok {
		return store.ErrAnswerNotFound
	}
	if err := s.checkRefs(answer); err != nil {
		return err
	}
	answer.CreatedAt = row.answer.CreatedAt
	answer.UpdatedAt = s.db.now()
	row.answer = *answer
	return nil
}

// Delete implements store.AnswerStore.
func (s *AnswerStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.answers[id]; !ok {
		return store.ErrAnswerNotFound
	}
	delete(s.db.answers, id)
	return nil
}

// WithTx implements store.AnswerStore.
func (s *AnswerStore) WithTx(_ *sql.Tx) store.AnswerStore { return s }

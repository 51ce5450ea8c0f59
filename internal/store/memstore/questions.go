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

// QuestionStore implements store.QuestionStore in memory.
type QuestionStore struct {
	db *DB
}

// NewQuestionStore returns a QuestionStore over db.
func NewQuestionStore(db *DB) *QuestionStore { return &QuestionStore{db: db} }

var _ store.QuestionStore = (*QuestionStore)(nil)

// questionsOf returns the questions of a form in creation order.
// Callers hold the lock.
func (db *DB) questionsOf(formID uuid.UUID) []*questionRow {
	var rows []*questionRow
	for _, q := range db.questions {
		if q.question.FormID == formID {
			rows = append(rows, q)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	return rows
}

// deleteQuestion removes a question and its answers. Callers hold the write lock.
func (db *DB) deleteQuestion(id uuid.UUID) {
	delete(db.questions, id)
	for aid, a := range db.answers {
		if a.answer.QuestionID == id {
			delete(db.answers, aid)
		}
	}
}

func (s *QuestionStore) checkForm(q *domain.Question) error {
	if _, ok := s.db.forms[q.FormID]; !ok {
		return fmt.Errorf("%w: form with ID %s not found", store.ErrInvalidEntity, q.FormID)
	}
	return nil
}

// Create implements store.QuestionStore.
func (s *QuestionStore) Create(ctx context.Context, question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := s.checkForm(question); err != nil {
		return err
	}
	seq, now := s.db.stamp()
	question.ID = uuid.New()
	question.CreatedAt, question.UpdatedAt = now, now
	s.db.questions[question.ID] = &questionRow{seq: seq, question: *question}
	return nil
}

func (db *DB) loadQuestion(row *questionRow) *domain.Question {
	q := row.copy()
	if f, ok := db.forms[q.FormID]; ok {
		q.Form = f.copy()
	}
	return q
}

// GetByID implements store.QuestionStore.
func (s *QuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	row, ok := s.db.questions[id]
	if !ok {
		return nil, store.ErrQuestionNotFound
	}
	question := s.db.loadQuestion(row)
	for _, a := range s.db.answersOf(id) {
		question.Answers = append(question.Answers, a.copy())
	}
	return question, nil
}

func (s *QuestionStore) collect(match func(*questionRow) bool) []*domain.Question {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := make([]*questionRow, 0, len(s.db.questions))
	for _, row := range s.db.questions {
		if match(row) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]*domain.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.db.loadQuestion(row))
	}
	return out
}

// List implements store.QuestionStore.
func (s *QuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	return s.collect(func(*questionRow) bool { return true }), nil
}

// FindByName implements store.QuestionStore.
func (s *QuestionStore) FindByName(ctx context.Context, query string) ([]*domain.Question, error) {
	return s.collect(func(r *questionRow) bool { return contains(r.question.Sentence, query) }), nil
}

// ListByForm implements store.QuestionStore.
func (s *QuestionStore) ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Question, error) {
	return s.collect(func(r *questionRow) bool { return r.question.FormID == formID }), nil
}

// Update implements store.QuestionStore.
func (s *QuestionStore) Update(ctx context.Context, question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	row, ok := s.db.questions[question.ID]
	if !ok {
		return store.ErrQuestionNotFound
	}
	if err := s.checkForm(question); err != nil {
		return err
	}
	question.CreatedAt = row.question.CreatedAt
	question.UpdatedAt = s.db.now()
	row.question = *question
	return nil
}

// Delete implements store.QuestionStore.
func (s *QuestionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.questions[id]; !ok {
		return store.ErrQuestionNotFound
	}
	s.db.deleteQuestion(id)
	return nil
}

// WithTx implements store.QuestionStore.
func (s *QuestionStore) WithTx(_ *sql.Tx) store.QuestionStore { return s }

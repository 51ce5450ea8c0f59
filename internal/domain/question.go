package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Question is a sentence asked by a form.
type Question struct {
	ID        uuid.UUID `json:"id"`
	Sentence  string    `json:"sentence"`
	FormID    uuid.UUID `json:"form_id"`
	Form      *Form     `json:"form,omitempty"`
	Answers   []*Answer `json:"answers,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewQuestion builds an unsaved question for the given form.
func NewQuestion(formID uuid.UUID, sentence string) (*Question, error) {
	q := &Question{FormID: formID, Sentence: strings.TrimSpace(sentence)}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Validate checks the question's fields.
func (q *Question) Validate() error {
	if err := validateLabel("sentence", q.Sentence); err != nil {
		return err
	}
	if q.FormID == uuid.Nil {
		return NewValidationError("form", "is required", ErrInvalidID)
	}
	return nil
}

// AddAnswer attaches a to the question and points a back at it.
func (q *Question) AddAnswer(a *Answer) {
	if a == nil {
		return
	}
	for _, existing := range q.Answers {
		if sameEntity(existing, a, existing.ID, a.ID) {
			return
		}
	}
	q.Answers = append(q.Answers, a)
	a.Question = q
	a.QuestionID = q.ID
}

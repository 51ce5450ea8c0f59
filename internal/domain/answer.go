package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Answer is a user's reply to a question.
type Answer struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	QuestionID uuid.UUID     `json:"question_id"`
	Question   *Question     `json:"question,omitempty"`
	UserID     uuid.NullUUID `json:"user_id"`
	User       *User         `json:"user,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// NewAnswer builds an unsaved answer to the given question.
func NewAnswer(questionID uuid.UUID, name string) (*Answer, error) {
	a := &Answer{QuestionID: questionID, Name: strings.TrimSpace(name)}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the answer's fields.
func (a *Answer) Validate() error {
	if err := validateLabel("name", a.Name); err != nil {
		return err
	}
	if a.QuestionID == uuid.Nil {
		return NewValidationError("question", "is required", ErrInvalidID)
	}
	return nil
}

// SetUser records who answered. A nil user clears it.
func (a *Answer) SetUser(u *User) {
	a.User = u
	if u == nil {
		a.UserID = uuid.NullUUID{}
		return
	}
	a.UserID = uuid.NullUUID{UUID: u.ID, Valid: true}
}

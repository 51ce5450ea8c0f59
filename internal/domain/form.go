package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Form is a named survey. It owns questions and can also group categories.
type Form struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Categories []*Category `json:"categories,omitempty"`
	Questions  []*Question `json:"questions,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewForm builds an unsaved form.
func NewForm(name string) (*Form, error) {
	f := &Form{Name: strings.TrimSpace(name)}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the form's own fields.
func (f *Form) Validate() error {
	return validateLabel("name", f.Name)
}

// AddQuestion attaches q to the form and points q back at it.
func (f *Form) AddQuestion(q *Question) {
	if q == nil {
		return
	}
	for _, existing := range f.Questions {
		if sameEntity(existing, q, existing.ID, q.ID) {
			return
		}
	}
	f.Questions = append(f.Questions, q)
	q.Form = f
	q.FormID = f.ID
}

// AddCategory attaches c to the form and points c back at it.
func (f *Form) AddCategory(c *Category) {
	if c == nil {
		return
	}
	for _, existing := range f.Categories {
		if sameEntity(existing, c, existing.ID, c.ID) {
			return
		}
	}
	f.Categories = append(f.Categories, c)
	c.Form = f
	c.FormID = uuid.NullUUID{UUID: f.ID, Valid: f.ID != uuid.Nil}
}

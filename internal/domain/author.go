package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Author is credited on posts. It is the inverse side of Post.Authors.
type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Posts     []*Post   `json:"posts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAuthor builds an unsaved author.
func NewAuthor(name string) (*Author, error) {
	a := &Author{Name: strings.TrimSpace(name)}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the author's own fields.
func (a *Author) Validate() error {
	return validateLabel("name", a.Name)
}

// HasPost reports whether p credits the author.
func (a *Author) HasPost(p *Post) bool {
	if p == nil {
		return false
	}
	for _, existing := range a.Posts {
		if sameEntity(existing, p, existing.ID, p.ID) {
			return true
		}
	}
	return false
}

// AddPost links p to the author; the post side is kept in sync.
func (a *Author) AddPost(p *Post) {
	if p == nil {
		return
	}
	p.AddAuthor(a)
}

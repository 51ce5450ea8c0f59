package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups posts. It is the inverse side of Post.Categories and may
// belong to a form.
type Category struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	FormID    uuid.NullUUID `json:"form_id"`
	Form      *Form         `json:"form,omitempty"`
	Posts     []*Post       `json:"posts,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewCategory builds an unsaved category.
func NewCategory(title string) (*Category, error) {
	c := &Category{Title: strings.TrimSpace(title)}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the category's own fields.
func (c *Category) Validate() error {
	return validateLabel("title", c.Title)
}

// HasPost reports whether p is linked to the category.
func (c *Category) HasPost(p *Post) bool {
	if p == nil {
		return false
	}
	for _, existing := range c.Posts {
		if sameEntity(existing, p, existing.ID, p.ID) {
			return true
		}
	}
	return false
}

// AddPost links p to the category; the post side is kept in sync.
func (c *Category) AddPost(p *Post) {
	if p == nil {
		return
	}
	p.AddCategory(c)
}

package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry. It may belong to a user and is linked to categories
// and authors through many-to-many relationships.
type Post struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Content    string        `json:"content"`
	UserID     uuid.NullUUID `json:"user_id"`
	User       *User         `json:"user,omitempty"`
	Categories []*Category   `json:"categories,omitempty"`
	Authors    []*Author     `json:"authors,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// NewPost builds an unsaved post.
func NewPost(name, content string) (*Post, error) {
	p := &Post{Name: strings.TrimSpace(name), Content: content}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the post's own fields.
func (p *Post) Validate() error {
	return validateLabel("name", p.Name)
}

// SetOwner makes u the owning user. A nil user clears ownership.
func (p *Post) SetOwner(u *User) {
	p.User = u
	if u == nil {
		p.UserID = uuid.NullUUID{}
		return
	}
	p.UserID = uuid.NullUUID{UUID: u.ID, Valid: true}
}

// HasCategory reports whether c is one of the post's categories.
func (p *Post) HasCategory(c *Category) bool {
	if c == nil {
		return false
	}
	for _, existing := range p.Categories {
		if sameEntity(existing, c, existing.ID, c.ID) {
			return true
		}
	}
	return false
}

// AddCategory links c to the post on both sides. Adding twice is a no-op.
func (p *Post) AddCategory(c *Category) {
	if c == nil || p.HasCategory(c) {
		return
	}
	p.Categories = append(p.Categories, c)
	if !c.HasPost(p) {
		c.Posts = append(c.Posts, p)
	}
}

// RemoveCategory unlinks c from the post on both sides.
func (p *Post) RemoveCategory(c *Category) {
	if c == nil {
		return
	}
	p.Categories = removeMatching(p.Categories, func(x *Category) bool { return sameEntity(x, c, x.ID, c.ID) })
	c.Posts = removeMatching(c.Posts, func(x *Post) bool { return sameEntity(x, p, x.ID, p.ID) })
}

// HasAuthor reports whether a is one of the post's authors.
func (p *Post) HasAuthor(a *Author) bool {
	if a == nil {
		return false
	}
	for _, existing := range p.Authors {
		if sameEntity(existing, a, existing.ID, a.ID) {
			return true
		}
	}
	return false
}

// AddAuthor links a to the post on both sides. Adding twice is a no-op.
func (p *Post) AddAuthor(a *Author) {
	if a == nil || p.HasAuthor(a) {
		return
	}
	p.Authors = append(p.Authors, a)
	if !a.HasPost(p) {
		a.Posts = append(a.Posts, p)
	}
}

// RemoveAuthor unlinks a from the post on both sides.
func (p *Post) RemoveAuthor(a *Author) {
	if a == nil {
		return
	}
	p.Authors = removeMatching(p.Authors, func(x *Author) bool { return sameEntity(x, a, x.ID, a.ID) })
	a.Posts = removeMatching(a.Posts, func(x *Post) bool { return sameEntity(x, p, x.ID, p.ID) })
}

// CategoryIDs returns the ids of the post's persisted categories.
func (p *Post) CategoryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Categories))
	for _, c := range p.Categories {
		if c.ID != uuid.Nil {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// AuthorIDs returns the ids of the post's persisted authors.
func (p *Post) AuthorIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Authors))
	for _, a := range p.Authors {
		if a.ID != uuid.Nil {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// sameEntity compares by identity once both sides are persisted, and by
// pointer before that.
func sameEntity[T any](a, b *T, aID, bID uuid.UUID) bool {
	if aID != uuid.Nil && bID != uuid.Nil {
		return aID == bID
	}
	return a == b
}

func removeMatching[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}

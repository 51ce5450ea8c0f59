package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// LoginRequest defines the payload for the token login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT used for API authorization
	AccessToken string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// RefResponse is a reference to a related entity.
type RefResponse struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

// PostResponse is the JSON view of a post.
type PostResponse struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Content    string        `json:"content"`
	User       *RefResponse  `json:"user,omitempty"`
	Categories []RefResponse `json:"categories"`
	Authors    []RefResponse `json:"authors"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// PostSummary is the list entry for a post.
type PostSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// QuestionResponse is a question listed inside a form.
type QuestionResponse struct {
	ID       uuid.UUID `json:"id"`
	Sentence string    `json:"sentence"`
}

// FormResponse is the JSON view of a survey form.
type FormResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Categories []RefResponse      `json:"categories"`
	Questions  []QuestionResponse `json:"questions"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func postToResponse(p *domain.Post) PostResponse {
	resp := PostResponse{
		ID:         p.ID,
		Name:       p.Name,
		Content:    p.Content,
		Categories: make([]RefResponse, 0, len(p.Categories)),
		Authors:    make([]RefResponse, 0, len(p.Authors)),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.User != nil {
		resp.User = &RefResponse{ID: p.User.ID, Label: p.User.Name}
	}
	for _, c := range p.Categories {
		resp.Categories = append(resp.Categories, RefResponse{ID: c.ID, Label: c.Title})
	}
	for _, a := range p.Authors {
		resp.Authors = append(resp.Authors, RefResponse{ID: a.ID, Label: a.Name})
	}
	return resp
}

func postsToSummaries(posts []*domain.Post) []PostSummary {
	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostSummary{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt})
	}
	return out
}

func formToResponse(f *domain.Form) FormResponse {
	resp := FormResponse{
		ID:         f.ID,
		Name:       f.Name,
		Categories: make([]RefResponse, 0, len(f.Categories)),
		Questions:  make([]QuestionResponse, 0, len(f.Questions)),
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
	for _, c := range f.Categories {
		resp.Categories = append(resp.Categories, RefResponse{ID: c.ID, Label: c.Title})
	}
	for _, q := range f.Questions {
		resp.Questions = append(resp.Questions, QuestionResponse{ID: q.ID, Sentence: q.Sentence})
	}
	return resp
}

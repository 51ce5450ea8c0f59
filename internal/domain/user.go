package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Password length bounds. 72 is bcrypt's practical limit.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// User is a registered account. It authors posts and submits survey answers.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // plaintext, only set while registering or changing it
	HashedPassword string    `json:"-"`
	Posts          []*Post   `json:"posts,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser builds an unsaved user from registration data.
func NewUser(name, email, password string) (*User, error) {
	u := &User{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks the user's fields. Either a plaintext password (being set)
// or an existing hash must be present.
func (u *User) Validate() error {
	if err := validateLabel("name", u.Name); err != nil {
		return err
	}
	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", nil)
	}
	if !validEmail(u.Email) {
		return NewValidationError("email", "has invalid format", nil)
	}
	switch {
	case u.Password != "":
		if len(u.Password) < MinPasswordLength {
			return NewValidationError("password", "is too short", nil)
		}
		if len(u.Password) > MaxPasswordLength {
			return NewValidationError("password", "is too long", nil)
		}
	case u.HashedPassword == "":
		return NewValidationError("password", "cannot be empty", nil)
	}
	return nil
}

// SameIdentity reports whether other would clash with u as an account:
// same name or same email.
func (u *User) SameIdentity(other *User) bool {
	if other == nil {
		return false
	}
	return u.Name == other.Name || strings.EqualFold(u.Email, other.Email)
}

// validEmail is a deliberately loose check: something@something.tld.
func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.LastIndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}

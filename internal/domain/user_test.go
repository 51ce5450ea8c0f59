package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("  alice ", "alice@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name, "name should be trimmed")
	assert.Equal(t, uuid.Nil, user.ID, "identity is assigned on create, not here")
	assert.Equal(t, "correct-horse", user.Password)
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name      string
		user      User
		wantField string
	}{
		{"valid with password", User{Name: "bob", Email: "bob@example.com", Password: "12345678"}, ""},
		{"valid with hash", User{Name: "bob", Email: "bob@example.com", HashedPassword: "$2a$..."}, ""},
		{"empty name", User{Email: "bob@example.com", Password: "12345678"}, "name"},
		{"long name", User{Name: strings.Repeat("x", MaxLabelLength+1), Email: "bob@example.com", Password: "12345678"}, "name"},
		{"multibyte name at limit", User{Name: strings.Repeat("é", MaxLabelLength), Email: "bob@example.com", Password: "12345678"}, ""},
		{"multibyte name over limit", User{Name: strings.Repeat("é", MaxLabelLength+1), Email: "bob@example.com", Password: "12345678"}, "name"},
		{"empty email", User{Name: "bob", Password: "12345678"}, "email"},
		{"email without at", User{Name: "bob", Email: "bob.example.com", Password: "12345678"}, "email"},
		{"email without tld", User{Name: "bob", Email: "bob@example", Password: "12345678"}, "email"},
		{"short password", User{Name: "bob", Email: "bob@example.com", Password: "short"}, "password"},
		{"long password", User{Name: "bob", Email: "bob@example.com", Password: strings.Repeat("p", 73)}, "password"},
		{"no password at all", User{Name: "bob", Email: "bob@example.com"}, "password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.user.Validate()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.wantField, vErr.Field)
		})
	}
}

func TestUserSameIdentity(t *testing.T) {
	base := &User{Name: "carol", Email: "carol@example.com"}

	assert.True(t, base.SameIdentity(&User{Name: "carol", Email: "other@example.com"}), "same name")
	assert.True(t, base.SameIdentity(&User{Name: "someone", Email: "CAROL@example.com"}), "same email, any case")
	assert.True(t, base.SameIdentity(&User{Name: "carol", Email: "carol@example.com"}), "same both")
	assert.False(t, base.SameIdentity(&User{Name: "dave", Email: "dave@example.com"}))
	assert.False(t, base.SameIdentity(nil))
}

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier(bcrypt.MinCost)
	hash, err := v.Hash("correct horse battery")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NotContains(t, hash, "correct horse")

	assert.NoError(t, v.Compare(hash, "correct horse battery"))
	assert.ErrorIs(t, v.Compare(hash, "wrong password"), ErrPasswordMismatch)
	assert.Error(t, v.Compare("not-a-hash", "whatever"))
}

func TestNewBcryptVerifier_ClampsCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptVerifier(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptVerifier(99).cost)
	assert.Equal(t, 12, NewBcryptVerifier(12).cost)
}

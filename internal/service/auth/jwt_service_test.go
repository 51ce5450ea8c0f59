package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 30})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, svc.TokenLifetime())
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	userID := uuid.New()

	svc, err := newHMACJWTService(testSecret, lifetime, func() time.Time { return fixedTime })
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(lifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	userID := uuid.New()

	issuer, err := newHMACJWTService(testSecret, lifetime, func() time.Time { return fixedTime })
	require.NoError(t, err)
	token, err := issuer.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": userID.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		now     time.Time
		token   string
		wantErr error
	}{
		{name: "valid", secret: testSecret, now: fixedTime.Add(time.Minute), token: token},
		{name: "within clock skew", secret: testSecret, now: fixedTime.Add(lifetime + time.Minute), token: token},
		{name: "expired", secret: testSecret, now: fixedTime.Add(lifetime + 5*time.Minute), token: token, wantErr: ErrExpiredToken},
		{name: "wrong secret", secret: "wrong-secret-that-is-long-enough-for-testing", now: fixedTime, token: token, wantErr: ErrInvalidToken},
		{name: "malformed", secret: testSecret, now: fixedTime, token: "not.a.token", wantErr: ErrInvalidToken},
		{name: "unsigned", secret: testSecret, now: fixedTime, token: noneToken, wantErr: ErrInvalidToken},
		{name: "empty", secret: testSecret, now: fixedTime, token: "", wantErr: ErrMissingToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			now := tt.now
			svc, err := newHMACJWTService(tt.secret, lifetime, func() time.Time { return now })
			require.NoError(t, err)

			claims, err := svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

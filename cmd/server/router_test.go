package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/quire/internal/api"
	"github.com/phrazzld/quire/internal/api/middleware"
	"github.com/phrazzld/quire/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Health(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.TraceHeader))
}

func TestRouter_HomePage(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestRouter_UnknownPaths(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestRouter_APIRequiresToken(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_APILoginAndReadPosts(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()
	ctx := context.Background()

	user, err := app.users.Register(ctx, "ada", "ada@example.com", "password123")
	require.NoError(t, err)
	post, err := app.posts.CreatePost(ctx, service.PostInput{Name: "First post", Content: "Hello"}, user.ID)
	require.NoError(t, err)

	body := strings.NewReader(`{"email":"ada@example.com","password":"password123"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", body))
	require.Equal(t, http.StatusOK, rec.Code)

	var auth api.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auth))
	assert.Equal(t, user.ID, auth.UserID)
	require.NotEmpty(t, auth.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/"+post.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got api.PostResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "First post", got.Name)
	require.NotNil(t, got.User)
	assert.Equal(t, "ada", got.User.Label)

	// Login failure never says which part was wrong.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"wrong-password"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/platform/logger"
	"github.com/phrazzld/quire/internal/service/auth"
	"github.com/phrazzld/quire/internal/store"
	"github.com/phrazzld/quire/internal/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockTxRunner lets tests fail a unit of work before it runs.
type mockTxRunner struct {
	mock.Mock
}

func (m *mockTxRunner) RunInTx(ctx context.Context, fn store.TxFn) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newUserService(t *testing.T) (*UserServiceImpl, *memstore.Stores) {
	t.Helper()
	stores := memstore.NewStores()
	verifier := auth.NewBcryptVerifier(bcrypt.MinCost)
	l, _ := logger.NewTestLogger()
	return NewUserService(stores.Users, stores.Tx, verifier, verifier, l), stores
}

func newPostService(t *testing.T) (*PostServiceImpl, *memstore.Stores) {
	t.Helper()
	stores := memstore.NewStores()
	l, _ := logger.NewTestLogger()
	return NewPostService(stores.Posts, stores.Categories, stores.Authors, stores.Tx, l), stores
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, stores := newUserService(t)

	alice, err := svc.Register(ctx, " alice ", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", alice.Name)
	assert.NotEqual(t, uuid.Nil, alice.ID)
	assert.Empty(t, alice.Password)
	assert.NotEqual(t, "password123", alice.HashedPassword)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{name: "same name", userName: "alice", email: "new@example.com", password: "password123", wantErr: store.ErrUserExists},
		{name: "same email", userName: "alice2", email: "ALICE@example.com", password: "password123", wantErr: store.ErrUserExists},
		{name: "short password", userName: "bob", email: "bob@example.com", password: "short", wantErr: domain.ErrValidation},
		{name: "bad email", userName: "bob", email: "bob", password: "password123", wantErr: domain.ErrValidation},
		{name: "distinct", userName: "bob", email: "bob@example.com", password: "password123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	users, err := stores.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestRegister_TransactionFailure(t *testing.T) {
	stores := memstore.NewStores()
	verifier := auth.NewBcryptVerifier(bcrypt.MinCost)
	tx := &mockTxRunner{}
	tx.On("RunInTx", mock.Anything).Return(store.ErrTransactionFailed)

	svc := NewUserService(stores.Users, tx, verifier, verifier, nil)
	_, err := svc.Register(context.Background(), "carol", "carol@example.com", "password123")

	var serviceErr *ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "register_user", serviceErr.Operation)
	assert.ErrorIs(t, err, store.ErrTransactionFailed)
	tx.AssertExpectations(t)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)
	registered, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	tests := []struct {
		name       string
		identifier string
		password   string
		ok         bool
	}{
		{name: "by email", identifier: "alice@example.com", password: "password123", ok: true},
		{name: "by email other case", identifier: "Alice@Example.com", password: "password123", ok: true},
		{name: "by name", identifier: "alice", password: "password123", ok: true},
		{name: "wrong password", identifier: "alice", password: "password124"},
		{name: "unknown user", identifier: "nobody@example.com", password: "password123"},
		{name: "empty", identifier: "", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(ctx, tt.identifier, tt.password)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, user.ID)
		})
	}
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)
	alice, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "bob", "bob@example.com", "password123")
	require.NoError(t, err)

	// Keeping one's own identity is not a clash.
	updated, err := svc.UpdateUser(ctx, alice.ID, UserUpdate{Name: "alice", Email: "ALICE@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ALICE@example.com", updated.Email)
	assert.Equal(t, alice.HashedPassword, updated.HashedPassword)

	_, err = svc.UpdateUser(ctx, alice.ID, UserUpdate{Name: "bob", Email: "alice@example.com"})
	assert.ErrorIs(t, err, store.ErrUserExists)

	_, err = svc.UpdateUser(ctx, alice.ID, UserUpdate{Name: "alice", Email: "alice@example.com", Password: "newpassword"})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "alice", "newpassword")
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx, "alice", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.UpdateUser(ctx, uuid.New(), UserUpdate{Name: "x", Email: "x@example.com"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	require.NoError(t, svc.DeleteUser(ctx, alice.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, alice.ID), store.ErrUserNotFound)
}

func TestCreatePost_BindsCollections(t *testing.T) {
	ctx := context.Background()
	svc, stores := newPostService(t)

	cat := &domain.Category{Title: "go"}
	require.NoError(t, stores.Categories.Create(ctx, cat))
	author := &domain.Author{Name: "Rob"}
	require.NoError(t, stores.Authors.Create(ctx, author))
	owner := &domain.User{Name: "alice", Email: "alice@example.com", HashedPassword: "h"}
	require.NoError(t, stores.Users.Create(ctx, owner))

	post, err := svc.CreatePost(ctx, PostInput{
		Name:        "Hello",
		Content:     "World",
		CategoryIDs: []uuid.UUID{cat.ID, cat.ID},
		AuthorIDs:   []uuid.UUID{author.ID},
	}, owner.ID)
	require.NoError(t, err)
	assert.True(t, post.UserID.Valid)

	got, err := svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Categories, 1)
	assert.Len(t, got.Authors, 1)
	require.NotNil(t, got.User)
	assert.Equal(t, owner.ID, got.User.ID)
}

func TestCreatePost_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	svc, stores := newPostService(t)

	_, err := svc.CreatePost(ctx, PostInput{Name: "Hello", CategoryIDs: []uuid.UUID{uuid.New()}}, uuid.Nil)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "categories", vErr.Field)

	posts, err := stores.Posts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()
	svc, stores := newPostService(t)

	a := &domain.Category{Title: "a"}
	b := &domain.Category{Title: "b"}
	require.NoError(t, stores.Categories.Create(ctx, a))
	require.NoError(t, stores.Categories.Create(ctx, b))

	post, err := svc.CreatePost(ctx, PostInput{Name: "Draft", CategoryIDs: []uuid.UUID{a.ID}}, uuid.Nil)
	require.NoError(t, err)

	updated, err := svc.UpdatePost(ctx, post.ID, PostInput{Name: "Final", Content: "done", CategoryIDs: []uuid.UUID{b.ID}})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Name)

	got, err := svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "done", got.Content)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, b.ID, got.Categories[0].ID)

	_, err = svc.UpdatePost(ctx, post.ID, PostInput{Name: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdatePost(ctx, uuid.New(), PostInput{Name: "x"})
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestListAndDeletePosts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostService(t)

	for _, name := range []string{"Alpha", "beta", "Alphabet"} {
		_, err := svc.CreatePost(ctx, PostInput{Name: name}, uuid.Nil)
		require.NoError(t, err)
	}

	all, err := svc.ListPosts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	alphas, err := svc.ListPosts(ctx, "  ALPHA ")
	require.NoError(t, err)
	assert.Len(t, alphas, 2)

	require.NoError(t, svc.DeletePost(ctx, all[0].ID))
	assert.ErrorIs(t, svc.DeletePost(ctx, all[0].ID), store.ErrPostNotFound)
}

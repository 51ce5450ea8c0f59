package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/platform/postgres"
	"github.com/phrazzld/quire/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (sqlmock.Sqlmock, *postgres.PostgresPostStore, *postgres.PostgresUserStore, *postgres.PostgresFormStore) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return mock,
		postgres.NewPostgresPostStore(db, nil),
		postgres.NewPostgresUserStore(db, nil),
		postgres.NewPostgresFormStore(db, nil)
}

func q(s string) string { return regexp.QuoteMeta(s) }

func TestPostStore_CreateWritesPostAndLinks(t *testing.T) {
	mock, posts, _, _ := newMock(t)
	ctx := context.Background()

	newID := uuid.New()
	catID := uuid.New()
	now := time.Now().UTC()

	post := &domain.Post{Name: "Hello", Content: "world"}
	post.Categories = []*domain.Category{{ID: catID, Title: "go"}}

	mock.ExpectQuery(q("INSERT INTO posts (name, content, user_id)")).
		WithArgs("Hello", "world", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(newID.String(), now, now))
	mock.ExpectExec(q("DELETE FROM post_categories WHERE post_id = $1")).
		WithArgs(newID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q("INSERT INTO post_categories (post_id, category_id)")).
		WithArgs(newID.String(), catID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("DELETE FROM post_authors WHERE post_id = $1")).
		WithArgs(newID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, posts.Create(ctx, post))
	assert.Equal(t, newID, post.ID)
	assert.Equal(t, now, post.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostStore_CreateUnknownCategory(t *testing.T) {
	mock, posts, _, _ := newMock(t)
	newID := uuid.New()
	now := time.Now()

	post := &domain.Post{Name: "Hello"}
	post.Categories = []*domain.Category{{ID: uuid.New(), Title: "ghost"}}

	mock.ExpectQuery(q("INSERT INTO posts")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID.String(), now, now))
	mock.ExpectExec(q("DELETE FROM post_categories")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q("INSERT INTO post_categories")).WillReturnError(newPgError("23503"))

	err := posts.Create(context.Background(), post)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostStore_CreateValidationSkipsDatabase(t *testing.T) {
	mock, posts, _, _ := newMock(t)

	err := posts.Create(context.Background(), &domain.Post{Name: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostStore_GetByIDNotFound(t *testing.T) {
	mock, posts, _, _ := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(q("FROM posts p")).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := posts.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostStore_GetByIDLoadsRelations(t *testing.T) {
	mock, posts, _, _ := newMock(t)
	id, owner, catID, authorID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(q("LEFT JOIN users u ON u.id = p.user_id")).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "content", "user_id", "created_at", "updated_at", "uname", "uemail"}).
			AddRow(id.String(), "Post", "body", owner.String(), now, now, "alice", "alice@example.com"))
	mock.ExpectQuery(q("FROM post_categories pc")).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "id", "title", "form_id", "created_at", "updated_at"}).
			AddRow(id.String(), catID.String(), "go", nil, now, now))
	mock.ExpectQuery(q("FROM post_authors pa")).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(authorID.String(), "Rob", now, now))

	post, err := posts.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, post.User)
	assert.Equal(t, "alice", post.User.Name)
	require.Len(t, post.Categories, 1)
	assert.Equal(t, catID, post.Categories[0].ID)
	assert.False(t, post.Categories[0].FormID.Valid)
	require.Len(t, post.Authors, 1)
	assert.Equal(t, "Rob", post.Authors[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostStore_FindByNameEscapesWildcards(t *testing.T) {
	mock, posts, _, _ := newMock(t)

	mock.ExpectQuery(q("WHERE p.name ILIKE $1")).
		WithArgs(`%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "content", "user_id", "created_at", "updated_at", "uname", "uemail"}))

	got, err := posts.FindByName(context.Background(), "50%_off")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostStore_DeleteMissing(t *testing.T) {
	mock, posts, _, _ := newMock(t)
	id := uuid.New()

	mock.ExpectExec(q("DELETE FROM posts WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := posts.Delete(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_CreateDuplicate(t *testing.T) {
	mock, _, users, _ := newMock(t)

	mock.ExpectQuery(q("INSERT INTO users (name, email, hashed_password)")).
		WithArgs("alice", "alice@example.com", "$2a$10$hash").
		WillReturnError(newPgError("23505"))

	err := users.Create(context.Background(), &domain.User{
		Name: "alice", Email: "alice@example.com", HashedPassword: "$2a$10$hash",
	})
	assert.ErrorIs(t, err, store.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_CreateRequiresHash(t *testing.T) {
	mock, _, users, _ := newMock(t)

	err := users.Create(context.Background(), &domain.User{
		Name: "alice", Email: "alice@example.com", Password: "plaintext-password",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_FindDuplicates(t *testing.T) {
	mock, _, users, _ := newMock(t)
	now := time.Now()

	mock.ExpectQuery(q("WHERE u.name = $1 OR lower(u.email) = lower($2)")).
		WithArgs("alice", "ALICE@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "hashed_password", "created_at", "updated_at"}).
			AddRow(uuid.New().String(), "alice", "alice@example.com", "h", now, now))

	dups, err := users.FindDuplicates(context.Background(), "alice", "ALICE@example.com")
	require.NoError(t, err)
	assert.Len(t, dups, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_GetByIDListsPostsWithCategories(t *testing.T) {
	tests := []struct {
		name      string
		postCount int
	}{
		{name: "no posts", postCount: 0},
		{name: "two posts", postCount: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, _, users, _ := newMock(t)
			id, catID := uuid.New(), uuid.New()
			now := time.Now()

			mock.ExpectQuery(q("FROM users u WHERE u.id = $1")).
				WithArgs(id.String()).
				WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "hashed_password", "created_at", "updated_at"}).
					AddRow(id.String(), "alice", "alice@example.com", "h", now, now))

			postRows := sqlmock.NewRows([]string{"id", "name", "content", "user_id", "created_at", "updated_at", "uname", "uemail"})
			postIDs := make([]uuid.UUID, tt.postCount)
			for i := range postIDs {
				postIDs[i] = uuid.New()
				postRows.AddRow(postIDs[i].String(), "post", "", id.String(), now, now, "alice", "alice@example.com")
			}
			mock.ExpectQuery(q("LEFT JOIN users u ON u.id = p.user_id WHERE p.user_id = $1 ORDER BY p.created_at, p.id")).
				WithArgs(id.String()).
				WillReturnRows(postRows)
			if tt.postCount > 0 {
				mock.ExpectQuery(q("WHERE pc.post_id IN (SELECT p.id FROM posts p WHERE p.user_id = $1)")).
					WithArgs(id.String()).
					WillReturnRows(sqlmock.NewRows([]string{"post_id", "id", "title", "form_id", "created_at", "updated_at"}).
						AddRow(postIDs[0].String(), catID.String(), "go", nil, now, now))
			}

			user, err := users.GetByID(context.Background(), id)
			require.NoError(t, err)
			require.Len(t, user.Posts, tt.postCount)
			for i, p := range user.Posts {
				assert.Equal(t, postIDs[i], p.ID)
				require.NotNil(t, p.User)
				assert.Equal(t, "alice", p.User.Name)
			}
			if tt.postCount > 0 {
				require.Len(t, user.Posts[0].Categories, 1)
				assert.Equal(t, catID, user.Posts[0].Categories[0].ID)
				assert.Empty(t, user.Posts[1].Categories)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFormStore_UpdateMissing(t *testing.T) {
	mock, _, _, forms := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(q("UPDATE forms SET name = $1")).
		WithArgs("Renamed", id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	err := forms.Update(context.Background(), &domain.Form{ID: id, Name: "Renamed"})
	assert.ErrorIs(t, err, store.ErrFormNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxUsesTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	forms := postgres.NewPostgresFormStore(db, nil)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(q("DELETE FROM forms WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return forms.WithTx(tx).Delete(ctx, id)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

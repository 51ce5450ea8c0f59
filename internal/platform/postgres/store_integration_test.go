//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/platform/postgres"
	"github.com/phrazzld/quire/internal/store"
	"github.com/phrazzld/quire/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_PostLifecycle(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		users := postgres.NewPostgresUserStore(tx, nil)
		categories := postgres.NewPostgresCategoryStore(tx, nil)
		authors := postgres.NewPostgresAuthorStore(tx, nil)
		posts := postgres.NewPostgresPostStore(tx, nil)

		owner := &domain.User{Name: "it-" + uuid.NewString()[:8], Email: uuid.NewString() + "@example.com", HashedPassword: "$2a$04$x"}
		require.NoError(t, users.Create(ctx, owner))
		assert.NotEqual(t, uuid.Nil, owner.ID)

		cat := &domain.Category{Title: "integration"}
		require.NoError(t, categories.Create(ctx, cat))
		author := &domain.Author{Name: "Ada"}
		require.NoError(t, authors.Create(ctx, author))

		post := &domain.Post{Name: "Integration <post>", Content: "body"}
		post.SetOwner(owner)
		post.AddCategory(cat)
		post.AddAuthor(author)
		require.NoError(t, posts.Create(ctx, post))

		got, err := posts.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.Name, got.Name)
		require.NotNil(t, got.User)
		assert.Len(t, got.Categories, 1)
		assert.Len(t, got.Authors, 1)

		found, err := posts.FindByName(ctx, "INTEGRATION <")
		require.NoError(t, err)
		assert.Len(t, found, 1)

		require.NoError(t, categories.Delete(ctx, cat.ID))
		got, err = posts.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Categories)

		require.NoError(t, users.Delete(ctx, owner.ID))
		got, err = posts.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.False(t, got.UserID.Valid)

		require.NoError(t, posts.Delete(ctx, post.ID))
		_, err = posts.GetByID(ctx, post.ID)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}

func TestIntegration_FormCascade(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		forms := postgres.NewPostgresFormStore(tx, nil)
		categories := postgres.NewPostgresCategoryStore(tx, nil)
		questions := postgres.NewPostgresQuestionStore(tx, nil)
		answers := postgres.NewPostgresAnswerStore(tx, nil)

		form := &domain.Form{Name: "Survey"}
		require.NoError(t, forms.Create(ctx, form))
		cat := &domain.Category{Title: "grouped"}
		form.AddCategory(cat)
		require.NoError(t, categories.Create(ctx, cat))

		q := &domain.Question{FormID: form.ID, Sentence: "Ready?"}
		require.NoError(t, questions.Create(ctx, q))
		a := &domain.Answer{QuestionID: q.ID, Name: "Yes"}
		require.NoError(t, answers.Create(ctx, a))

		loaded, err := forms.GetByID(ctx, form.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.Questions, 1)
		assert.Len(t, loaded.Categories, 1)

		require.NoError(t, forms.Delete(ctx, form.ID))

		_, err = questions.GetByID(ctx, q.ID)
		assert.ErrorIs(t, err, store.ErrQuestionNotFound)
		_, err = answers.GetByID(ctx, a.ID)
		assert.ErrorIs(t, err, store.ErrAnswerNotFound)

		kept, err := categories.GetByID(ctx, cat.ID)
		require.NoError(t, err)
		assert.False(t, kept.FormID.Valid)
	})
}

func TestIntegration_UserUniqueness(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		users := postgres.NewPostgresUserStore(tx, nil)

		name := "dup-" + uuid.NewString()[:8]
		require.NoError(t, users.Create(ctx, &domain.User{Name: name, Email: name + "@example.com", HashedPassword: "h"}))

		dups, err := users.FindDuplicates(ctx, "someone-else", name+"@EXAMPLE.com")
		require.NoError(t, err)
		assert.Len(t, dups, 1)

		err = users.Create(ctx, &domain.User{Name: "other-" + name, Email: name + "@Example.com", HashedPassword: "h"})
		assert.ErrorIs(t, err, store.ErrUserExists)
	})
}

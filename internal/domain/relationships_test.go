package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostAddCategoryMirrorsInverseSide(t *testing.T) {
	post, err := NewPost("Hello", "world")
	require.NoError(t, err)
	cat, err := NewCategory("Go")
	require.NoError(t, err)

	post.AddCategory(cat)

	assert.True(t, post.HasCategory(cat))
	assert.True(t, cat.HasPost(post))
	require.Len(t, cat.Posts, 1)
	assert.Same(t, post, cat.Posts[0])

	post.AddCategory(cat)
	cat.AddPost(post)
	assert.Len(t, post.Categories, 1, "adding twice is a no-op")
	assert.Len(t, cat.Posts, 1, "adding twice is a no-op on the inverse side")

	post.RemoveCategory(cat)
	assert.False(t, post.HasCategory(cat))
	assert.False(t, cat.HasPost(post))
}

func TestCategoryAddPostMirrorsOwningSide(t *testing.T) {
	post := &Post{Name: "p"}
	cat := &Category{Title: "c"}

	cat.AddPost(post)

	assert.True(t, post.HasCategory(cat))
	assert.True(t, cat.HasPost(post))
}

func TestPostHasCategory(t *testing.T) {
	id := uuid.New()
	post := &Post{Categories: []*Category{{ID: id, Title: "stored"}}}

	tests := []struct {
		name string
		cat  *Category
		want bool
	}{
		{"same id different pointer", &Category{ID: id}, true},
		{"other id", &Category{ID: uuid.New()}, false},
		{"unsaved category", &Category{Title: "stored"}, false},
		{"nil", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, post.HasCategory(tc.cat))
		})
	}

	assert.False(t, (&Post{}).HasCategory(&Category{ID: id}), "empty post has no categories")
}

func TestPostAuthorsMirror(t *testing.T) {
	post := &Post{Name: "p"}
	a1 := &Author{ID: uuid.New(), Name: "one"}
	a2 := &Author{ID: uuid.New(), Name: "two"}

	post.AddAuthor(a1)
	a2.AddPost(post)

	assert.ElementsMatch(t, []uuid.UUID{a1.ID, a2.ID}, post.AuthorIDs())
	assert.True(t, a1.HasPost(post))
	assert.True(t, a2.HasPost(post))

	post.RemoveAuthor(a1)
	assert.Equal(t, []uuid.UUID{a2.ID}, post.AuthorIDs())
	assert.Empty(t, a1.Posts)
}

func TestPostSetOwner(t *testing.T) {
	post := &Post{}
	user := &User{ID: uuid.New()}

	post.SetOwner(user)
	assert.True(t, post.UserID.Valid)
	assert.Equal(t, user.ID, post.UserID.UUID)

	post.SetOwner(nil)
	assert.False(t, post.UserID.Valid)
	assert.Nil(t, post.User)
}

func TestFormChildrenPointBack(t *testing.T) {
	form := &Form{ID: uuid.New(), Name: "survey"}
	q := &Question{Sentence: "Why?"}
	c := &Category{Title: "misc"}

	form.AddQuestion(q)
	form.AddQuestion(q)
	form.AddCategory(c)

	assert.Len(t, form.Questions, 1)
	assert.Equal(t, form.ID, q.FormID)
	assert.Same(t, form, q.Form)
	assert.Equal(t, uuid.NullUUID{UUID: form.ID, Valid: true}, c.FormID)

	ans := &Answer{Name: "because"}
	q.ID = uuid.New()
	q.AddAnswer(ans)
	assert.Equal(t, q.ID, ans.QuestionID)
	assert.Same(t, q, ans.Question)
}

func TestQuestionAndAnswerValidate(t *testing.T) {
	_, err := NewQuestion(uuid.Nil, "Why?")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewQuestion(uuid.New(), "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAnswer(uuid.Nil, "yes")
	assert.ErrorIs(t, err, ErrInvalidID)

	a, err := NewAnswer(uuid.New(), " yes ")
	require.NoError(t, err)
	assert.Equal(t, "yes", a.Name)
}

func TestLabelLengthCountsCharacters(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{"ascii at limit", strings.Repeat("a", MaxLabelLength), false},
		{"ascii over limit", strings.Repeat("a", MaxLabelLength+1), true},
		{"two-byte runes at limit", strings.Repeat("é", MaxLabelLength), false},
		{"two-byte runes over limit", strings.Repeat("é", MaxLabelLength+1), true},
		{"four-byte runes at limit", strings.Repeat("🦫", MaxLabelLength), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := []error{
				(&Author{Name: tc.label}).Validate(),
				(&Category{Title: tc.label}).Validate(),
				(&Post{Name: tc.label}).Validate(),
				(&Form{Name: tc.label}).Validate(),
			}
			for _, err := range errs {
				if tc.wantErr {
					assert.ErrorIs(t, err, ErrValidation)
				} else {
					assert.NoError(t, err)
				}
			}
		})
	}
}

func TestRemoveLeavesCallerSlicesIntact(t *testing.T) {
	post := &Post{ID: uuid.New(), Name: "p"}
	c1 := &Category{ID: uuid.New(), Title: "one"}
	c2 := &Category{ID: uuid.New(), Title: "two"}
	a1 := &Author{ID: uuid.New(), Name: "one"}
	a2 := &Author{ID: uuid.New(), Name: "two"}
	post.AddCategory(c1)
	post.AddCategory(c2)
	post.AddAuthor(a1)
	post.AddAuthor(a2)

	categories := post.Categories
	authors := post.Authors

	post.RemoveCategory(c1)
	post.RemoveAuthor(a1)

	assert.Equal(t, []*Category{c1, c2}, categories, "snapshot taken before removal must not shift")
	assert.Equal(t, []*Author{a1, a2}, authors, "snapshot taken before removal must not shift")
	assert.Equal(t, []*Category{c2}, post.Categories)
	assert.Equal(t, []*Author{a2}, post.Authors)
}

package views

import "github.com/google/uuid"

// Collection paths, shaped /{package}/{resource}.
const (
	PostsPath      = "/blog/posts"
	CategoriesPath = "/blog/categories"
	AuthorsPath    = "/blog/authors"
	FormsPath      = "/survey/forms"
	QuestionsPath  = "/survey/questions"
	AnswersPath    = "/survey/answers"
	UsersPath      = "/users"
	LoginPath      = "/login"
	LogoutPath     = "/logout"
)

// MemberPath returns the path of one entity in a collection.
func MemberPath(collection string, id uuid.UUID) string {
	return collection + "/" + id.String()
}

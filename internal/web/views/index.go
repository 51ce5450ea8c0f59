package views

import (
	"github.com/a-h/templ"
	"github.com/phrazzld/quire/internal/domain"
)

// Item is one row of an index page.
type Item struct {
	Href   string
	Label  string
	Detail string
}

// Index describes a collection page.
type Index struct {
	Heading string
	Path    string
	Query   string
	Items   []Item
}

// IndexPage renders a searchable list with a link to the new form.
func IndexPage(ix Index) templ.Component {
	return component(func(h *htmlWriter) {
		h.heading(1, ix.Heading)
		h.raw(`<form method="get" class="search"`)
		h.attr("action", ix.Path)
		h.raw(`><input type="search" name="q" placeholder="Search"`)
		h.attr("value", ix.Query)
		h.raw(`><button type="submit">Search</button></form>`)
		h.raw(`<p>`)
		h.link(ix.Path+"/new", "New")
		h.raw(`</p>`)
		empty := "Nothing here yet."
		if ix.Query != "" {
			empty = "No matches."
		}
		h.linkList(ix.Items, empty)
	})
}

func postItems(posts []*domain.Post) []Item {
	items := make([]Item, 0, len(posts))
	for _, p := range posts {
		item := Item{Href: MemberPath(PostsPath, p.ID), Label: p.Name}
		if p.User != nil {
			item.Detail = "by " + p.User.Name
		}
		items = append(items, item)
	}
	return items
}

func categoryItems(categories []*domain.Category) []Item {
	items := make([]Item, 0, len(categories))
	for _, c := range categories {
		items = append(items, Item{Href: MemberPath(CategoriesPath, c.ID), Label: c.Title})
	}
	return items
}

func authorItems(authors []*domain.Author) []Item {
	items := make([]Item, 0, len(authors))
	for _, a := range authors {
		items = append(items, Item{Href: MemberPath(AuthorsPath, a.ID), Label: a.Name})
	}
	return items
}

func formItems(forms []*domain.Form) []Item {
	items := make([]Item, 0, len(forms))
	for _, f := range forms {
		items = append(items, Item{Href: MemberPath(FormsPath, f.ID), Label: f.Name})
	}
	return items
}

func questionItems(questions []*domain.Question) []Item {
	items := make([]Item, 0, len(questions))
	for _, q := range questions {
		item := Item{Href: MemberPath(QuestionsPath, q.ID), Label: q.Sentence}
		if q.Form != nil {
			item.Detail = q.Form.Name
		}
		items = append(items, item)
	}
	return items
}

func answerItems(answers []*domain.Answer) []Item {
	items := make([]Item, 0, len(answers))
	for _, a := range answers {
		item := Item{Href: MemberPath(AnswersPath, a.ID), Label: a.Name}
		if a.User != nil {
			item.Detail = "by " + a.User.Name
		}
		items = append(items, item)
	}
	return items
}

func userItems(users []*domain.User) []Item {
	items := make([]Item, 0, len(users))
	for _, u := range users {
		items = append(items, Item{Href: MemberPath(UsersPath, u.ID), Label: u.Name})
	}
	return items
}

// PostIndex lists posts.
func PostIndex(posts []*domain.Post, query string) templ.Component {
	return IndexPage(Index{Heading: "Posts", Path: PostsPath, Query: query, Items: postItems(posts)})
}

// CategoryIndex lists categories.
func CategoryIndex(categories []*domain.Category, query string) templ.Component {
	return IndexPage(Index{Heading: "Categories", Path: CategoriesPath, Query: query, Items: categoryItems(categories)})
}

// AuthorIndex lists authors.
func AuthorIndex(authors []*domain.Author, query string) templ.Component {
	return IndexPage(Index{Heading: "Authors", Path: AuthorsPath, Query: query, Items: authorItems(authors)})
}

// FormIndex lists survey forms.
func FormIndex(forms []*domain.Form, query string) templ.Component {
	return IndexPage(Index{Heading: "Forms", Path: FormsPath, Query: query, Items: formItems(forms)})
}

// QuestionIndex lists questions.
func QuestionIndex(questions []*domain.Question, query string) templ.Component {
	return IndexPage(Index{Heading: "Questions", Path: QuestionsPath, Query: query, Items: questionItems(questions)})
}

// AnswerIndex lists answers.
func AnswerIndex(answers []*domain.Answer, query string) templ.Component {
	return IndexPage(Index{Heading: "Answers", Path: AnswersPath, Query: query, Items: answerItems(answers)})
}

// UserIndex lists users.
func UserIndex(users []*domain.User, query string) templ.Component {
	return IndexPage(Index{Heading: "Users", Path: UsersPath, Query: query, Items: userItems(users)})
}

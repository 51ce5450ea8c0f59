package views

import (
	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
)

// ContainsCategory reports whether c is one of p's categories. The post
// editor checks a category's box exactly when this holds.
func ContainsCategory(p *domain.Post, c *domain.Category) bool {
	if p == nil {
		return false
	}
	return p.HasCategory(c)
}

// editorTarget returns the form action and submit label for a new or
// existing entity.
func editorTarget(collection string, id uuid.UUID) (action, submit string) {
	if id == uuid.Nil {
		return collection, "Create"
	}
	return MemberPath(collection, id), "Update"
}

// PostShow renders one post with its owner, categories and authors.
func PostShow(p *domain.Post) templ.Component {
	return component(func(h *htmlWriter) {
		h.heading(1, p.Name)
		if p.User != nil {
			h.raw(`<p class="muted">by `)
			h.link(MemberPath(UsersPath, p.User.ID), p.User.Name)
			h.raw("</p>")
		}
		h.paragraph("content", p.Content)
		h.heading(2, "Categories")
		h.linkList(categoryItems(p.Categories), "Uncategorized.")
		h.heading(2, "Authors")
		h.linkList(authorItems(p.Authors), "No authors credited.")
		h.actions(MemberPath(PostsPath, p.ID))
	})
}

// PostEditor renders the post form. Every category and author is offered,
// checked when the post already holds it.
func PostEditor(p *domain.Post, categories []*domain.Category, authors []*domain.Author, errMsg string) templ.Component {
	return component(func(h *htmlWriter) {
		action, submit := editorTarget(PostsPath, p.ID)
		if p.ID == uuid.Nil {
			h.heading(1, "New post")
		} else {
			h.heading(1, "Edit post")
		}
		h.errorBox(errMsg)
		h.formStart(action)
		h.input("text", "name", "Name", p.Name)
		h.textarea("content", "Content", p.Content)

		catOpts := make([]Option, 0, len(categories))
		for _, c := range categories {
			catOpts = append(catOpts, Option{Value: c.ID.String(), Label: c.Title, Selected: ContainsCategory(p, c)})
		}
		h.checkboxes("categories", "Categories", catOpts)

		authorOpts := make([]Option, 0, len(authors))
		for _, a := range authors {
			authorOpts = append(authorOpts, Option{Value: a.ID.String(), Label: a.Name, Selected: p.HasAuthor(a)})
		}
		h.checkboxes("authors", "Authors", authorOpts)
		h.formEnd(submit)
	})
}

// CategoryShow renders a category with its form and posts.
func CategoryShow(c *domain.Category) templ.Component {
	return component(func(h *htmlWriter) {
		h.heading(1, c.Title)
		if c.Form != nil {
			h.raw(`<p class="muted">in form `)
			h.link(MemberPath(FormsPath, c.Form.ID), c.Form.Name)
			h.raw("</p>")
		}
		h.heading(2, "Posts")
		h.linkList(postItems(c.Posts), "No posts in this category.")
		h.actions(MemberPath(CategoriesPath, c.ID))
	})
}

// CategoryEditor renders the category form with an optional form choice.
func CategoryEditor(c *domain.Category, forms []*domain.Form, errMsg string) templ.Component {
	return component(func(h *htmlWriter) {
		action, submit := editorTarget(CategoriesPath, c.ID)
		if c.ID == uuid.Nil {
			h.heading(1, "New category")
		} else {
			h.heading(1, "Edit category")
		}
		h.errorBox(errMsg)
		h.formStart(action)
		h.input("text", "title", "Title", c.Title)
		h.selectBox("form_id", "Form", "(none)", formOptions(forms, c.FormID.UUID))
		h.formEnd(submit)
	})
}

// AuthorShow renders an author with the posts that credit them.
func AuthorShow(a *domain.Author) templ.Component {
	return component(func(h *htmlWriter) {
		h.heading(1, a.Name)
		h.heading(2, "Posts")
		h.linkList(postItems(a.Posts), "No posts credit this author.")
		h.actions(MemberPath(AuthorsPath, a.ID))
	})
}

// AuthorEditor renders the author form.
func AuthorEditor(a *domain.Author, errMsg string) templ.Component {
	return component(func(h *htmlWriter) {
		action, submit := editorTarget(AuthorsPath, a.ID)
		if a.ID == uuid.Nil {
			h.heading(1, "New author")
		} else {
			h.heading(1, "Edit author")
		}
		h.errorBox(errMsg)
		h.formStart(action)
		h.input("text", "name", "Name", a.Name)
		h.formEnd(submit)
	})
}

func formOptions(forms []*domain.Form, selected uuid.UUID) []Option {
	opts := make([]Option, 0, len(forms))
	for _, f := range forms {
		opts = append(opts, Option{Value: f.ID.String(), Label: f.Name, Selected: f.ID == selected && selected != uuid.Nil})
	}
	return opts
}

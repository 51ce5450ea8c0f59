package web

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/service"
	"github.com/phrazzld/quire/internal/web/views"
)

type postController struct {
	*Handlers
}

func (c *postController) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	posts, err := c.posts.ListPosts(r.Context(), q)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, "Posts", views.PostIndex(posts, q))
}

func (c *postController) show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	post, err := c.posts.GetPost(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, post.Name, views.PostShow(post))
}

// editor renders the post form with every category and author to choose from.
func (c *postController) editor(w http.ResponseWriter, r *http.Request, status int, post *domain.Post, errMsg string) {
	categories, err := c.categories.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	authors, err := c.authors.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, status, "Post", views.PostEditor(post, categories, authors, errMsg))
}

// rejected re-renders the submitted values with the selections kept.
func (c *postController) rejected(w http.ResponseWriter, r *http.Request, id uuid.UUID, req postRequest, err error) {
	draft := &domain.Post{ID: id, Name: req.Name, Content: req.Content}
	selectedCats := idSet(parseIDs(req.CategoryIDs))
	selectedAuthors := idSet(parseIDs(req.AuthorIDs))

	categories, lerr := c.categories.List(r.Context())
	if lerr != nil {
		c.fail(w, r, lerr)
		return
	}
	authors, lerr := c.authors.List(r.Context())
	if lerr != nil {
		c.fail(w, r, lerr)
		return
	}
	for _, cat := range categories {
		if selectedCats[cat.ID] {
			draft.AddCategory(cat)
		}
	}
	for _, a := range authors {
		if selectedAuthors[a.ID] {
			draft.AddAuthor(a)
		}
	}
	c.page(w, r, http.StatusUnprocessableEntity, "Post",
		views.PostEditor(draft, categories, authors, validationMessage(err)))
}

func (c *postController) newForm(w http.ResponseWriter, r *http.Request) {
	c.editor(w, r, http.StatusOK, &domain.Post{}, "")
}

func toPostInput(req postRequest) service.PostInput {
	return service.PostInput{
		Name:        req.Name,
		Content:     req.Content,
		CategoryIDs: parseIDs(req.CategoryIDs),
		AuthorIDs:   parseIDs(req.AuthorIDs),
	}
}

func (c *postController) create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := bindForm(r, &req); err != nil {
		c.rejected(w, r, uuid.Nil, req, err)
		return
	}
	_, err := c.posts.CreatePost(r.Context(), toPostInput(req), ownerID(r))
	if err != nil {
		if isInvalid(err) {
			c.rejected(w, r, uuid.Nil, req, err)
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.PostsPath, flashCreated)
}

func (c *postController) edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	post, err := c.posts.GetPost(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.editor(w, r, http.StatusOK, post, "")
}

func (c *postController) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	var req postRequest
	if err := bindForm(r, &req); err != nil {
		c.rejected(w, r, id, req, err)
		return
	}
	if _, err := c.posts.UpdatePost(r.Context(), id, toPostInput(req)); err != nil {
		if isInvalid(err) {
			c.rejected(w, r, id, req, err)
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.MemberPath(views.PostsPath, id), flashUpdated)
}

func (c *postController) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	if err := c.posts.DeletePost(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.PostsPath, flashDeleted)
}

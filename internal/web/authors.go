package web

import (
	"net/http"

	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/web/views"
)

type authorController struct {
	*Handlers
}

func (c *authorController) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	var (
		authors []*domain.Author
		err     error
	)
	if q != "" {
		authors, err = c.authors.FindByName(r.Context(), q)
	} else {
		authors, err = c.authors.List(r.Context())
	}
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, "Authors", views.AuthorIndex(authors, q))
}

func (c *authorController) show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	author, err := c.authors.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, author.Name, views.AuthorShow(author))
}

func (c *authorController) newForm(w http.ResponseWriter, r *http.Request) {
	c.page(w, r, http.StatusOK, "Author", views.AuthorEditor(&domain.Author{}, ""))
}

func (c *authorController) create(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	err := bindForm(r, &req)
	author := &domain.Author{Name: req.Name}
	if err == nil {
		err = c.authors.Create(r.Context(), author)
	}
	if err != nil {
		if isInvalid(err) {
			c.page(w, r, http.StatusUnprocessableEntity, "Author", views.AuthorEditor(author, validationMessage(err)))
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.AuthorsPath, flashCreated)
}

func (c *authorController) edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	author, err := c.authors.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, "Author", views.AuthorEditor(author, ""))
}

func (c *authorController) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	author, err := c.authors.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	var req authorRequest
	err = bindForm(r, &req)
	author.Name = req.Name
	if err == nil {
		err = c.authors.Update(r.Context(), author)
	}
	if err != nil {
		if isInvalid(err) {
			c.page(w, r, http.StatusUnprocessableEntity, "Author", views.AuthorEditor(author, validationMessage(err)))
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.MemberPath(views.AuthorsPath, id), flashUpdated)
}

func (c *authorController) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	if err := c.authors.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.AuthorsPath, flashDeleted)
}

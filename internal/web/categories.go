package web

import (
	"net/http"

	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/web/views"
)

type categoryController struct {
	*Handlers
}

func (c *categoryController) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	var (
		categories []*domain.Category
		err        error
	)
	if q != "" {
		categories, err = c.categories.FindByName(r.Context(), q)
	} else {
		categories, err = c.categories.List(r.Context())
	}
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, "Categories", views.CategoryIndex(categories, q))
}

func (c *categoryController) show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	category, err := c.categories.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, category.Title, views.CategoryShow(category))
}

func (c *categoryController) editor(w http.ResponseWriter, r *http.Request, status int, category *domain.Category, errMsg string) {
	forms, err := c.forms.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, status, "Category", views.CategoryEditor(category, forms, errMsg))
}

func (c *categoryController) newForm(w http.ResponseWriter, r *http.Request) {
	c.editor(w, r, http.StatusOK, &domain.Category{}, "")
}

func (c *categoryController) create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	err := bindForm(r, &req)
	category := &domain.Category{Title: req.Title, FormID: nullID(parseOptionalID(req.FormID))}
	if err == nil {
		err = c.categories.Create(r.Context(), category)
	}
	if err != nil {
		if isInvalid(err) {
			c.editor(w, r, http.StatusUnprocessableEntity, category, validationMessage(err))
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.CategoriesPath, flashCreated)
}

func (c *categoryController) edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	category, err := c.categories.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.editor(w, r, http.StatusOK, category, "")
}

func (c *categoryController) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	category, err := c.categories.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	var req categoryRequest
	err = bindForm(r, &req)
	category.Title = req.Title
	category.FormID = nullID(parseOptionalID(req.FormID))
	if err == nil {
		err = c.categories.Update(r.Context(), category)
	}
	if err != nil {
		if isInvalid(err) {
			c.editor(w, r, http.StatusUnprocessableEntity, category, validationMessage(err))
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.MemberPath(views.CategoriesPath, id), flashUpdated)
}

func (c *categoryController) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	if err := c.categories.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.CategoriesPath, flashDeleted)
}

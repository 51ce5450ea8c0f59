package web

import (
	"net/http"

	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/web/views"
)

// formController serves survey forms.
type formController struct {
	*Handlers
}

func (c *formController) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	var (
		forms []*domain.Form
		err   error
	)
	if q != "" {
		forms, err = c.forms.FindByName(r.Context(), q)
	} else {
		forms, err = c.forms.List(r.Context())
	}
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, "Forms", views.FormIndex(forms, q))
}

func (c *formController) show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	form, err := c.forms.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, form.Name, views.FormShow(form))
}

func (c *formController) newForm(w http.ResponseWriter, r *http.Request) {
	c.page(w, r, http.StatusOK, "Form", views.FormEditor(&domain.Form{}, ""))
}

func (c *formController) create(w http.ResponseWriter, r *http.Request) {
	var req formRequest
	err := bindForm(r, &req)
	form := &domain.Form{Name: req.Name}
	if err == nil {
		err = c.forms.Create(r.Context(), form)
	}
	if err != nil {
		if isInvalid(err) {
			c.page(w, r, http.StatusUnprocessableEntity, "Form", views.FormEditor(form, validationMessage(err)))
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.FormsPath, flashCreated)
}

func (c *formController) edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	form, err := c.forms.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, "Form", views.FormEditor(form, ""))
}

func (c *formController) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	form, err := c.forms.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	var req formRequest
	err = bindForm(r, &req)
	form.Name = req.Name
	if err == nil {
		err = c.forms.Update(r.Context(), form)
	}
	if err != nil {
		if isInvalid(err) {
			c.page(w, r, http.StatusUnprocessableEntity, "Form", views.FormEditor(form, validationMessage(err)))
			return
		}
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.MemberPath(views.FormsPath, id), flashUpdated)
}

// delete removes the form with its questions and answers.
func (c *formController) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	if err := c.forms.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.FormsPath, flashDeleted)
}

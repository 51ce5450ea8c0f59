package web

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/service"
	"github.com/phrazzld/quire/internal/store"
	"github.com/phrazzld/quire/internal/web/views"
)

type userController struct {
	*Handlers
}

func (c *userController) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	users, err := c.users.ListUsers(r.Context(), q)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, "Users", views.UserIndex(users, q))
}

func (c *userController) show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return
	}
	user, err := c.users.GetUser(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, user.Name, views.UserShow(user))
}

// newForm is the registration page.
func (c *userController) newForm(w http.ResponseWriter, r *http.Request) {
	c.page(w, r, http.StatusOK, "Register", views.UserEditor(&domain.User{}, ""))
}

// create registers an account. A name or email that is already taken sends
// the visitor back to the registration page.
func (c *userController) create(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	err := bindForm(r, &req)
	if err == nil {
		_, err = c.users.Register(r.Context(), req.Name, req.Email, req.Password)
	}
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserExists):
			c.redirect(w, r, views.UsersPath+"/new", flashUserExists)
		case isInvalid(err):
			draft := &domain.User{Name: req.Name, Email: req.Email}
			c.page(w, r, http.StatusUnprocessableEntity, "Register", views.UserEditor(draft, validationMessage(err)))
		default:
			c.fail(w, r, err)
		}
		return
	}
	c.redirect(w, r, views.UsersPath, flashCreated)
}

// self returns the {id} of the route when it is the signed-in user's.
func (c *userController) self(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := pathID(r)
	if !ok {
		c.notFound(w, r)
		return uuid.Nil, false
	}
	if id != ownerID(r) {
		c.fail(w, r, domain.ErrUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}

func (c *userController) edit(w http.ResponseWriter, r *http.Request) {
	id, ok := c.self(w, r)
	if !ok {
		return
	}
	user, err := c.users.GetUser(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.page(w, r, http.StatusOK, "Account", views.UserEditor(user, ""))
}

// update applies the registration duplicate rule, ignoring the user itself.
func (c *userController) update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.self(w, r)
	if !ok {
		return
	}
	var req accountRequest
	err := bindForm(r, &req)
	if err == nil {
		_, err = c.users.UpdateUser(r.Context(), id, service.UserUpdate{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
	}
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserExists):
			c.redirect(w, r, views.MemberPath(views.UsersPath, id)+"/edit", flashUserExists)
		case isInvalid(err):
			draft := &domain.User{ID: id, Name: req.Name, Email: req.Email}
			c.page(w, r, http.StatusUnprocessableEntity, "Account", views.UserEditor(draft, validationMessage(err)))
		default:
			c.fail(w, r, err)
		}
		return
	}
	c.redirect(w, r, views.MemberPath(views.UsersPath, id), flashUpdated)
}

// delete removes the account and signs it out.
func (c *userController) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.self(w, r)
	if !ok {
		return
	}
	if err := c.users.DeleteUser(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	if err := c.session.LogOut(r.Context()); err != nil {
		c.fail(w, r, err)
		return
	}
	c.redirect(w, r, views.UsersPath, flashDeleted)
}

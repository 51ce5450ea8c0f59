package web

import (
	"errors"
	"net/http"

	"github.com/phrazzld/quire/internal/platform/logger"
	"github.com/phrazzld/quire/internal/service"
	"github.com/phrazzld/quire/internal/web/views"
)

func (h *Handlers) loginForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "Log in", views.Login("", ""))
}

// login checks the credentials and binds the user to a renewed session.
// Every kind of failure reads the same to the visitor.
func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := bindForm(r, &req); err != nil {
		h.redirect(w, r, views.LoginPath, flashBadLogin)
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.redirect(w, r, views.LoginPath, flashBadLogin)
			return
		}
		h.fail(w, r, err)
		return
	}

	if err := h.session.LogIn(r.Context(), user.ID); err != nil {
		h.fail(w, r, err)
		return
	}
	logger.FromContextOrDefault(r.Context(), h.logger).Info("user logged in", "user_id", user.ID)
	h.redirect(w, r, "/", flashLoggedIn)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.LogOut(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	h.redirect(w, r, "/", flashLoggedOut)
}

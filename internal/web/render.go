package web

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/platform/logger"
	"github.com/phrazzld/quire/internal/redact"
	"github.com/phrazzld/quire/internal/store"
	"github.com/phrazzld/quire/internal/web/views"
)

// Flash messages.
const (
	flashCreated     = "created"
	flashUpdated     = "updated"
	flashDeleted     = "deleted"
	flashUserExists  = "username or email already taken"
	flashBadLogin    = "invalid credentials"
	flashPleaseLogIn = "please log in"
	flashLoggedIn    = "logged in"
	flashLoggedOut   = "logged out"
)

// page renders body inside the layout with the queued flashes.
func (h *Handlers) page(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	p := views.Page{Title: title, Flashes: h.session.PopFlashes(r.Context())}
	if u := CurrentUser(r.Context()); u != nil {
		p.CurrentUser = u.Name
	}
	templ.Handler(views.Layout(p, body), templ.WithStatus(status)).ServeHTTP(w, r)
}

// redirect queues flash, when set, and answers 303 See Other.
func (h *Handlers) redirect(w http.ResponseWriter, r *http.Request, to, flash string) {
	if flash != "" {
		h.session.Flash(r.Context(), flash)
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// statusFor maps an error to the HTTP status of its page.
func statusFor(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	case isInvalid(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// fail renders the error page for err. Only server errors are logged.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	var msg string
	switch status {
	case http.StatusNotFound:
		msg = "The page you asked for does not exist."
	case http.StatusUnprocessableEntity:
		msg = validationMessage(err)
	case http.StatusForbidden:
		msg = "You are not allowed to do that."
	default:
		logger.FromContextOrDefault(r.Context(), h.logger).Error("request failed",
			"error", redact.Error(err),
			"method", r.Method,
			"path", r.URL.Path,
		)
		msg = "Something went wrong. Please try again."
	}
	h.page(w, r, status, http.StatusText(status), views.ErrorPage(status, msg))
}

// notFound renders the 404 page.
func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, store.ErrNotFound)
}

// pathID parses the {id} route parameter. A malformed id reads as not found.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// ownerID returns the signed-in user's id, or uuid.Nil.
func ownerID(r *http.Request) uuid.UUID {
	if u := CurrentUser(r.Context()); u != nil {
		return u.ID
	}
	return uuid.Nil
}

func nullID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

package web

import (
	"context"
	"net/http"

	"github.com/phrazzld/quire/internal/domain"
	"github.com/phrazzld/quire/internal/platform/logger"
	"github.com/phrazzld/quire/internal/redact"
	"github.com/phrazzld/quire/internal/store"
	"github.com/phrazzld/quire/internal/web/views"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// CurrentUser returns the signed-in user of the request, or nil.
func CurrentUser(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userContextKey).(*domain.User)
	return u
}

func withCurrentUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// loadUser resolves the session's user id into the request context. A
// session pointing at a deleted user is signed out.
func (h *Handlers) loadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, ok := h.session.UserID(ctx)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.users.GetUser(ctx, id)
		switch {
		case err == nil:
			ctx = withCurrentUser(ctx, user)
		case store.IsNotFoundError(err):
			h.session.forget(ctx)
		default:
			logger.FromContextOrDefault(ctx, h.logger).
				Error("failed to load session user", "error", redact.Error(err))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireLogin sends visitors to the login page.
func (h *Handlers) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentUser(r.Context()) == nil {
			h.redirect(w, r, views.LoginPath, flashPleaseLogIn)
			return
		}
		next.ServeHTTP(w, r)
	})
}

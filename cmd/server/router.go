package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/quire/internal/api"
	apiMiddleware "github.com/phrazzld/quire/internal/api/middleware"
	"github.com/phrazzld/quire/internal/api/shared"
	"github.com/phrazzld/quire/internal/web"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	authHandler := api.NewAuthHandler(app.users, app.jwtService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	postHandler := api.NewPostHandler(app.posts)
	formHandler := api.NewFormHandler(app.repos.forms)

	r.Route("/api", func(r chi.Router) {
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
		})

		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/posts", postHandler.ListPosts)
			r.Get("/posts/{id}", postHandler.GetPost)
			r.Get("/forms/{id}", formHandler.GetForm)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	web.New(web.Deps{
		Posts:      app.posts,
		Users:      app.users,
		Categories: app.repos.categories,
		Authors:    app.repos.authors,
		Forms:      app.repos.forms,
		Questions:  app.repos.questions,
		Answers:    app.repos.answers,
		Sessions:   app.sessions,
		Logger:     app.logger,
	}).Routes(r)

	return r
}

package web

import (
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/quire/internal/service"
	"github.com/phrazzld/quire/internal/store"
	"github.com/phrazzld/quire/internal/web/views"
)

// Deps are the collaborators of the HTML handlers.
type Deps struct {
	Posts      service.PostService
	Users      service.UserService
	Categories store.CategoryStore
	Authors    store.AuthorStore
	Forms      store.FormStore
	Questions  store.QuestionStore
	Answers    store.AnswerStore
	Sessions   *scs.SessionManager
	Logger     *slog.Logger
}

// Handlers serves every page of the web interface.
type Handlers struct {
	posts      service.PostService
	users      service.UserService
	categories store.CategoryStore
	authors    store.AuthorStore
	forms      store.FormStore
	questions  store.QuestionStore
	answers    store.AnswerStore
	session    *Session
	logger     *slog.Logger
}

// New creates the handlers. It panics when a dependency is missing.
func New(d Deps) *Handlers {
	if d.Posts == nil || d.Users == nil || d.Categories == nil || d.Authors == nil ||
		d.Forms == nil || d.Questions == nil || d.Answers == nil {
		panic("web: all services and stores are required")
	}
	if d.Logger == nil {
		panic("logger cannot be nil")
	}
	return &Handlers{
		posts:      d.Posts,
		users:      d.Users,
		categories: d.Categories,
		authors:    d.Authors,
		forms:      d.Forms,
		questions:  d.Questions,
		answers:    d.Answers,
		session:    NewSession(d.Sessions),
		logger:     d.Logger.With("component", "web"),
	}
}

// controller is the action set of one resource.
type controller interface {
	index(w http.ResponseWriter, r *http.Request)
	show(w http.ResponseWriter, r *http.Request)
	newForm(w http.ResponseWriter, r *http.Request)
	create(w http.ResponseWriter, r *http.Request)
	edit(w http.ResponseWriter, r *http.Request)
	update(w http.ResponseWriter, r *http.Request)
	delete(w http.ResponseWriter, r *http.Request)
}

// Routes mounts the web interface on r.
func (h *Handlers) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.session.LoadAndSave, h.loadUser)

		r.Get("/", h.home)
		r.Get(views.LoginPath, h.loginForm)
		r.Post(views.LoginPath, h.login)
		r.Post(views.LogoutPath, h.logout)

		r.Route("/blog", func(r chi.Router) {
			h.mount(r, "/posts", &postController{h})
			h.mount(r, "/categories", &categoryController{h})
			h.mount(r, "/authors", &authorController{h})
		})
		r.Route("/survey", func(r chi.Router) {
			h.mount(r, "/forms", &formController{h})
			h.mount(r, "/questions", &questionController{h})
			h.mount(r, "/answers", &answerController{h})
		})

		users := &userController{h}
		r.Route(views.UsersPath, func(r chi.Router) {
			r.Get("/", users.index)
			r.Get("/new", users.newForm)
			r.Post("/", users.create)
			r.Get("/{id}", users.show)
			r.Group(func(r chi.Router) {
				r.Use(h.requireLogin)
				r.Get("/{id}/edit", users.edit)
				r.Post("/{id}", users.update)
				r.Post("/{id}/delete", users.delete)
			})
		})

		r.NotFound(h.notFound)
	})
}

// mount registers the seven actions of c under path. Reads are public.
func (h *Handlers) mount(r chi.Router, path string, c controller) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", c.index)
		r.Get("/{id}", c.show)
		r.Group(func(r chi.Router) {
			r.Use(h.requireLogin)
			r.Get("/new", c.newForm)
			r.Post("/", c.create)
			r.Get("/{id}/edit", c.edit)
			r.Post("/{id}", c.update)
			r.Post("/{id}/delete", c.delete)
		})
	})
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "", views.Home())
}

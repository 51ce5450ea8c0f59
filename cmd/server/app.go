package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/alexedwards/scs/v2"
	"github.com/phrazzld/quire/internal/config"
	"github.com/phrazzld/quire/internal/platform/postgres"
	"github.com/phrazzld/quire/internal/service"
	"github.com/phrazzld/quire/internal/service/auth"
	"github.com/phrazzld/quire/internal/store"
	"github.com/phrazzld/quire/internal/store/memstore"
	"github.com/phrazzld/quire/internal/web"
)

// repositories is the set of stores the application runs on.
type repositories struct {
	posts      store.PostStore
	categories store.CategoryStore
	authors    store.AuthorStore
	forms      store.FormStore
	questions  store.QuestionStore
	answers    store.AnswerStore
	users      store.UserStore
	tx         store.TxRunner
}

// application holds the application's dependencies.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	db         *sql.DB // nil when running in memory
	repos      repositories
	users      service.UserService
	posts      service.PostService
	jwtService auth.JWTService
	sessions   *scs.SessionManager
}

// newApplication wires stores, services and sessions. inMemory selects the
// in-memory stores; otherwise PostgreSQL at cfg.Database.URL is used.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, inMemory bool) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		sessions: web.NewSessionManager(cfg.Session),
	}

	if inMemory {
		logger.Warn("running with the in-memory store, data is lost on shutdown")
		app.repos = memoryRepositories()
	} else {
		db, err := setupAppDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		app.db = db
		app.repos = postgresRepositories(db, logger)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService

	passwords := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)
	app.users = service.NewUserService(app.repos.users, app.repos.tx, passwords, passwords, logger)
	app.posts = service.NewPostService(app.repos.posts, app.repos.categories, app.repos.authors, app.repos.tx, logger)

	return app, nil
}

func memoryRepositories() repositories {
	s := memstore.NewStores()
	return repositories{
		posts:      s.Posts,
		categories: s.Categories,
		authors:    s.Authors,
		forms:      s.Forms,
		questions:  s.Questions,
		answers:    s.Answers,
		users:      s.Users,
		tx:         s.Tx,
	}
}

func postgresRepositories(db *sql.DB, logger *slog.Logger) repositories {
	return repositories{
		posts:      postgres.NewPostgresPostStore(db, logger),
		categories: postgres.NewPostgresCategoryStore(db, logger),
		authors:    postgres.NewPostgresAuthorStore(db, logger),
		forms:      postgres.NewPostgresFormStore(db, logger),
		questions:  postgres.NewPostgresQuestionStore(db, logger),
		answers:    postgres.NewPostgresAnswerStore(db, logger),
		users:      postgres.NewPostgresUserStore(db, logger),
		tx:         store.NewDBTxRunner(db),
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}

// Package entrypoint builds the storage backend selected by configuration
// and wires repositories, queries and state stores on top of it.
package entrypoint

import (
	"fmt"

	"github.com/mrlokans/learnhub/internal/auth"
	"github.com/mrlokans/learnhub/internal/config"
	"github.com/mrlokans/learnhub/internal/database"
	"github.com/mrlokans/learnhub/internal/database/courses"
	"github.com/mrlokans/learnhub/internal/database/credentials"
	"github.com/mrlokans/learnhub/internal/database/enrollments"
	"github.com/mrlokans/learnhub/internal/database/lessons"
	"github.com/mrlokans/learnhub/internal/database/modules"
	"github.com/mrlokans/learnhub/internal/database/progress"
	"github.com/mrlokans/learnhub/internal/database/quizzes"
	"github.com/mrlokans/learnhub/internal/database/users"
	"github.com/mrlokans/learnhub/internal/logger"
	"github.com/mrlokans/learnhub/internal/services"
	"github.com/mrlokans/learnhub/internal/session"
	"github.com/mrlokans/learnhub/internal/state"
	"github.com/mrlokans/learnhub/internal/storage"
)

// App holds every component built over one store.
type App struct {
	Config *config.Config
	Log    *logger.Logger
	Store  *storage.Store

	Users       *users.Repository
	Courses     *courses.Repository
	Modules     *modules.Repository
	Lessons     *lessons.Repository
	Enrollments *enrollments.Repository
	Progress    *progress.Repository
	Quizzes     *quizzes.Repository
	Credentials *credentials.Repository
	Sessions    *session.Holder

	Catalog   *services.Catalog
	Dashboard *services.Dashboard

	AuthStore   *state.AuthStore
	CourseStore *state.CourseStore

	closeBackend func() error
}

// OpenBackend returns the backend named by cfg.Storage.Backend and a
// function that releases it.
func OpenBackend(cfg *config.Config) (storage.Backend, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return storage.NewMemoryBackend(), func() error { return nil }, nil
	case config.StorageRedis:
		rb, err := storage.NewRedisBackend(storage.RedisOptions{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
			Timeout:   cfg.Redis.Timeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return rb, rb.Close, nil
	default:
		db, err := database.NewDatabase(cfg.Database.Path, database.WithSilentLogger())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return db, db.Close, nil
	}
}

// Open builds the backend from cfg and wires an App over it. The store is
// initialized before Open returns.
func Open(cfg *config.Config, log *logger.Logger) (*App, error) {
	backend, closeBackend, err := OpenBackend(cfg)
	if err != nil {
		return nil, err
	}
	app, err := New(cfg, backend, log)
	if err != nil {
		_ = closeBackend()
		return nil, err
	}
	app.closeBackend = closeBackend
	return app, nil
}

// New wires an App over an existing backend.
func New(cfg *config.Config, backend storage.Backend, log *logger.Logger, opts ...storage.Option) (*App, error) {
	if log == nil {
		log = logger.NewNop()
	}

	store := storage.New(backend, append([]storage.Option{storage.WithLogger(log)}, opts...)...)
	if err := store.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	app := &App{
		Config:      cfg,
		Log:         log,
		Store:       store,
		Users:       users.NewRepository(store),
		Courses:     courses.NewRepository(store),
		Modules:     modules.NewRepository(store),
		Lessons:     lessons.NewRepository(store),
		Enrollments: enrollments.NewRepository(store),
		Progress:    progress.NewRepository(store),
		Quizzes:     quizzes.NewRepository(store),
		Credentials: credentials.NewRepository(store),
		Sessions:    session.NewHolder(store),
	}

	repos := services.Repositories{
		Users:       app.Users,
		Courses:     app.Courses,
		Modules:     app.Modules,
		Lessons:     app.Lessons,
		Enrollments: app.Enrollments,
		Progress:    app.Progress,
		Quizzes:     app.Quizzes,
	}
	app.Catalog = services.NewCatalog(repos)
	app.Dashboard = services.NewDashboard(repos)

	authOpts := []state.AuthOption{state.WithAuthLogger(log)}
	if cfg.Auth.VerifyPasswords {
		authOpts = append(authOpts, state.WithPasswordVerifier(auth.NewVerifier(app.Credentials, cfg.Auth.BcryptCost)))
	}
	app.AuthStore = state.NewAuthStore(app.Users, app.Sessions, authOpts...)
	app.CourseStore = state.NewCourseStore(app.Courses, app.Enrollments, app.Catalog, log)

	return app, nil
}

func (a *App) Close() error {
	a.Log.Sync()
	if a.closeBackend == nil {
		return nil
	}
	return a.closeBackend()
}

package state

import (
	"testing"

	"github.com/mrlokans/learnhub/internal/database/courses"
	"github.com/mrlokans/learnhub/internal/database/enrollments"
	"github.com/mrlokans/learnhub/internal/database/lessons"
	"github.com/mrlokans/learnhub/internal/database/modules"
	"github.com/mrlokans/learnhub/internal/database/progress"
	"github.com/mrlokans/learnhub/internal/database/quizzes"
	"github.com/mrlokans/learnhub/internal/database/users"
	"github.com/mrlokans/learnhub/internal/services"
	"github.com/mrlokans/learnhub/internal/session"
	"github.com/mrlokans/learnhub/internal/storage"
	"github.com/mrlokans/learnhub/internal/storage/storagetest"
)

type testEnv struct {
	store       *storage.Store
	backend     *storage.MemoryBackend
	users       *users.Repository
	courses     *courses.Repository
	enrollments *enrollments.Repository
	sessions    *session.Holder
	catalog     *services.Catalog
}

func setupEnv(t *testing.T) *testEnv {
	store, backend, _ := storagetest.NewStore(t)
	env := &testEnv{
		store:       store,
		backend:     backend,
		users:       users.NewRepository(store),
		courses:     courses.NewRepository(store),
		enrollments: enrollments.NewRepository(store),
		sessions:    session.NewHolder(store),
	}
	env.catalog = services.NewCatalog(services.Repositories{
		Users:       env.users,
		Courses:     env.courses,
		Modules:     modules.NewRepository(store),
		Lessons:     lessons.NewRepository(store),
		Enrollments: env.enrollments,
		Progress:    progress.NewRepository(store),
		Quizzes:     quizzes.NewRepository(store),
	})
	return env
}

func (e *testEnv) authStore(opts ...AuthOption) *AuthStore {
	return NewAuthStore(e.users, e.sessions, opts...)
}

func (e *testEnv) courseStore() *CourseStore {
	return NewCourseStore(e.courses, e.enrollments, e.catalog, nil)
}

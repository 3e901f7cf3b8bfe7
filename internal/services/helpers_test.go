package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlokans/learnhub/internal/database/courses"
	"github.com/mrlokans/learnhub/internal/database/enrollments"
	"github.com/mrlokans/learnhub/internal/database/lessons"
	"github.com/mrlokans/learnhub/internal/database/modules"
	"github.com/mrlokans/learnhub/internal/database/progress"
	"github.com/mrlokans/learnhub/internal/database/quizzes"
	"github.com/mrlokans/learnhub/internal/database/users"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage/storagetest"
)

// fixture exposes the concrete repositories behind a Repositories bundle so
// tests can write through them.
type fixture struct {
	users       *users.Repository
	courses     *courses.Repository
	modules     *modules.Repository
	lessons     *lessons.Repository
	enrollments *enrollments.Repository
	progress    *progress.Repository
	quizzes     *quizzes.Repository
}

func setupFixture(t *testing.T) *fixture {
	store, _, _ := storagetest.NewStore(t)
	return &fixture{
		users:       users.NewRepository(store),
		courses:     courses.NewRepository(store),
		modules:     modules.NewRepository(store),
		lessons:     lessons.NewRepository(store),
		enrollments: enrollments.NewRepository(store),
		progress:    progress.NewRepository(store),
		quizzes:     quizzes.NewRepository(store),
	}
}

func (f *fixture) repos() Repositories {
	return Repositories{
		Users:       f.users,
		Courses:     f.courses,
		Modules:     f.modules,
		Lessons:     f.lessons,
		Enrollments: f.enrollments,
		Progress:    f.progress,
		Quizzes:     f.quizzes,
	}
}

func (f *fixture) user(t *testing.T, email string, role entities.Role) *entities.User {
	t.Helper()
	u, err := f.users.CreateUser(entities.NewUser{Email: email, FullName: email, Role: role})
	require.NoError(t, err)
	return u
}

func (f *fixture) course(t *testing.T, title string, price float64, instructorID string) *entities.Course {
	t.Helper()
	c, err := f.courses.CreateCourse(entities.NewCourse{
		Title:        title,
		Description:  title + " description",
		Price:        price,
		Category:     "Programming",
		InstructorID: instructorID,
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) module(t *testing.T, courseID string, position int) *entities.Module {
	t.Helper()
	m, err := f.modules.CreateModule(entities.NewModule{Title: "module", CourseID: courseID, Position: position})
	require.NoError(t, err)
	return m
}

func (f *fixture) lesson(t *testing.T, moduleID, title string, position int) *entities.Lesson {
	t.Helper()
	l, err := f.lessons.CreateLesson(entities.NewLesson{Title: title, ModuleID: moduleID, Position: position})
	require.NoError(t, err)
	return l
}

func (f *fixture) enroll(t *testing.T, userID, courseID string) {
	t.Helper()
	_, err := f.enrollments.CreateEnrollment(userID, courseID)
	require.NoError(t, err)
}

func (f *fixture) complete(t *testing.T, userID, lessonID string, completed bool) {
	t.Helper()
	_, err := f.progress.SetLessonProgress(userID, lessonID, completed)
	require.NoError(t, err)
}

package services

import "github.com/mrlokans/learnhub/internal/entities"

// UserReader provides read-only access to users.
type UserReader interface {
	GetUsers() ([]entities.User, error)
}

// CourseReader provides read-only access to courses.
type CourseReader interface {
	GetCourses() ([]entities.Course, error)
	GetCourseByID(id string) (*entities.Course, error)
	GetCoursesByInstructor(instructorID string) ([]entities.Course, error)
}

type ModuleReader interface {
	GetModules() ([]entities.Module, error)
}

type LessonReader interface {
	GetLessons() ([]entities.Lesson, error)
}

// EnrollmentReader provides read-only access to enrollments.
type EnrollmentReader interface {
	GetEnrollments() ([]entities.Enrollment, error)
	GetEnrollmentsByUser(userID string) ([]entities.Enrollment, error)
	GetEnrollmentsByCourse(courseID string) ([]entities.Enrollment, error)
}

// ProgressReader reports which lessons a user has completed.
type ProgressReader interface {
	CompletedLessons(userID string) (map[string]bool, error)
}

type QuizReader interface {
	GetQuizAttemptsByUser(userID string) ([]entities.QuizAttempt, error)
}

// Repositories bundles the readers the aggregation queries join over.
type Repositories struct {
	Users       UserReader
	Courses     CourseReader
	Modules     ModuleReader
	Lessons     LessonReader
	Enrollments EnrollmentReader
	Progress    ProgressReader
	Quizzes     QuizReader
}

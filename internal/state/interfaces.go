package state

import "github.com/mrlokans/learnhub/internal/entities"

// UserRepository is the user storage the auth store needs.
type UserRepository interface {
	GetUserByID(id string) (*entities.User, error)
	GetUserByEmail(email string) (*entities.User, error)
	CreateUser(in entities.NewUser) (*entities.User, error)
}

// SessionHolder persists the signed-in identity.
type SessionHolder interface {
	Current() (*entities.Session, error)
	Start(user entities.User) (*entities.Session, error)
	Clear() error
}

// PasswordVerifier checks credentials. Without one, sign-in accepts any
// password for an existing email.
type PasswordVerifier interface {
	ValidatePassword(password string) error
	Register(userID, password string) error
	Verify(userID, password string) error
}

type CourseRepository interface {
	GetCourses() ([]entities.Course, error)
	GetCoursesByInstructor(instructorID string) ([]entities.Course, error)
	CreateCourse(in entities.NewCourse) (*entities.Course, error)
	UpdateCourse(id string, upd entities.CourseUpdate) (*entities.Course, error)
	DeleteCourse(id string) (bool, error)
}

type EnrollmentRepository interface {
	CreateEnrollment(userID, courseID string) (*entities.Enrollment, error)
	DeleteEnrollmentByUserAndCourse(userID, courseID string) (bool, error)
}

// EnrolledCourseLister resolves a user's enrollments to courses.
type EnrolledCourseLister interface {
	EnrolledCourses(userID string) ([]entities.Course, error)
}

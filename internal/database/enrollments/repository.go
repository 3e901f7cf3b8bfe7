// Package enrollments provides storage operations for course enrollments.
//
// A user is enrolled in a course at most once: creating an enrollment for an
// existing (user, course) pair returns the stored record unchanged.
package enrollments

import (
	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage"
)

// Repository handles all enrollment storage operations.
type Repository struct {
	store       *storage.Store
	enrollments *storage.Collection[entities.Enrollment]
}

// NewRepository creates a new enrollments repository.
func NewRepository(store *storage.Store) *Repository {
	return &Repository{
		store:       store,
		enrollments: storage.NewCollection[entities.Enrollment](store, storage.KeyEnrollments),
	}
}

func (r *Repository) GetEnrollments() ([]entities.Enrollment, error) {
	return r.enrollments.All()
}

func (r *Repository) GetEnrollmentByID(id string) (*entities.Enrollment, error) {
	enrollment, ok, err := r.enrollments.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Enrollment not found")
	}
	return &enrollment, nil
}

func (r *Repository) GetEnrollmentsByUser(userID string) ([]entities.Enrollment, error) {
	return r.enrollments.Filter(func(e entities.Enrollment) bool { return e.UserID == userID })
}

func (r *Repository) GetEnrollmentsByCourse(courseID string) ([]entities.Enrollment, error) {
	return r.enrollments.Filter(func(e entities.Enrollment) bool { return e.CourseID == courseID })
}

// IsEnrolled reports whether an enrollment exists for the pair.
func (r *Repository) IsEnrolled(userID, courseID string) (bool, error) {
	_, ok, err := r.enrollments.Find(matchPair(userID, courseID))
	return ok, err
}

// CreateEnrollment enrolls the user in the course, or returns the existing
// enrollment for the pair.
func (r *Repository) CreateEnrollment(userID, courseID string) (*entities.Enrollment, error) {
	if userID == "" || courseID == "" {
		return nil, apperr.Validation("enrollment needs both a user and a course")
	}

	records, err := r.enrollments.All()
	if err != nil {
		return nil, err
	}
	match := matchPair(userID, courseID)
	for _, e := range records {
		if match(e) {
			existing := e
			return &existing, nil
		}
	}

	now := r.store.Now()
	enrollment := entities.Enrollment{
		ID:        r.store.NewID(),
		UserID:    userID,
		CourseID:  courseID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := storage.WriteCollection(r.store, storage.KeyEnrollments, append(records, enrollment)); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// DeleteEnrollment removes the enrollment with the given id.
func (r *Repository) DeleteEnrollment(id string) (bool, error) {
	removed, err := r.enrollments.DeleteWhere(func(e entities.Enrollment) bool { return e.ID == id })
	return removed > 0, err
}

// DeleteEnrollmentByUserAndCourse removes the enrollment for the pair.
func (r *Repository) DeleteEnrollmentByUserAndCourse(userID, courseID string) (bool, error) {
	removed, err := r.enrollments.DeleteWhere(matchPair(userID, courseID))
	return removed > 0, err
}

func matchPair(userID, courseID string) func(entities.Enrollment) bool {
	return func(e entities.Enrollment) bool {
		return e.UserID == userID && e.CourseID == courseID
	}
}

// Package courses provides storage operations for the course catalog.
package courses

import (
	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage"
)

// Repository handles all course storage operations.
type Repository struct {
	store   *storage.Store
	courses *storage.Collection[entities.Course]
}

// NewRepository creates a new courses repository.
func NewRepository(store *storage.Store) *Repository {
	return &Repository{
		store:   store,
		courses: storage.NewCollection[entities.Course](store, storage.KeyCourses),
	}
}

func (r *Repository) GetCourses() ([]entities.Course, error) {
	return r.courses.All()
}

func (r *Repository) GetCourseByID(id string) (*entities.Course, error) {
	course, ok, err := r.courses.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Course not found")
	}
	return &course, nil
}

func (r *Repository) GetCoursesByInstructor(instructorID string) ([]entities.Course, error) {
	return r.courses.Filter(func(c entities.Course) bool { return c.InstructorID == instructorID })
}

// CreateCourse stores a new course. The instructor reference is not checked.
func (r *Repository) CreateCourse(in entities.NewCourse) (*entities.Course, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := r.store.Now()
	course := entities.Course{
		ID:           r.store.NewID(),
		Title:        in.Title,
		Description:  in.Description,
		ThumbnailURL: in.ThumbnailURL,
		Price:        in.Price,
		Category:     in.Category,
		InstructorID: in.InstructorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.courses.Insert(course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *Repository) UpdateCourse(id string, upd entities.CourseUpdate) (*entities.Course, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	course, ok, err := r.courses.Update(id, func(c *entities.Course) {
		upd.Apply(c)
		c.UpdatedAt = r.store.Now()
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Course not found")
	}
	return &course, nil
}

// DeleteCourse removes the course and reports whether it existed.
// Modules, lessons and enrollments referencing it are left in place.
func (r *Repository) DeleteCourse(id string) (bool, error) {
	removed, err := r.courses.DeleteWhere(func(c entities.Course) bool { return c.ID == id })
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

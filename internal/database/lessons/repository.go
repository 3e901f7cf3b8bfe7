// Package lessons provides storage operations for module lessons.
package lessons

import (
	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage"
)

// Repository handles all lesson storage operations.
type Repository struct {
	store   *storage.Store
	lessons *storage.Collection[entities.Lesson]
}

// NewRepository creates a new lessons repository.
func NewRepository(store *storage.Store) *Repository {
	return &Repository{
		store:   store,
		lessons: storage.NewCollection[entities.Lesson](store, storage.KeyLessons),
	}
}

func (r *Repository) GetLessons() ([]entities.Lesson, error) {
	return r.lessons.All()
}

func (r *Repository) GetLessonByID(id string) (*entities.Lesson, error) {
	lesson, ok, err := r.lessons.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("lesson %s not found", id)
	}
	return &lesson, nil
}

// GetLessonsByModule returns the module's lessons in creation order.
func (r *Repository) GetLessonsByModule(moduleID string) ([]entities.Lesson, error) {
	return r.lessons.Filter(func(l entities.Lesson) bool { return l.ModuleID == moduleID })
}

// GetLessonsByModules returns lessons belonging to any of the given modules,
// in creation order. One read of the collection regardless of len(moduleIDs).
func (r *Repository) GetLessonsByModules(moduleIDs []string) ([]entities.Lesson, error) {
	wanted := make(map[string]struct{}, len(moduleIDs))
	for _, id := range moduleIDs {
		wanted[id] = struct{}{}
	}
	return r.lessons.Filter(func(l entities.Lesson) bool {
		_, ok := wanted[l.ModuleID]
		return ok
	})
}

func (r *Repository) CreateLesson(in entities.NewLesson) (*entities.Lesson, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := r.store.Now()
	lesson := entities.Lesson{
		ID:          r.store.NewID(),
		Title:       in.Title,
		Description: in.Description,
		VideoURL:    in.VideoURL,
		PDFURL:      in.PDFURL,
		ModuleID:    in.ModuleID,
		Position:    in.Position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.lessons.Insert(lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *Repository) UpdateLesson(id string, upd entities.LessonUpdate) (*entities.Lesson, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	lesson, ok, err := r.lessons.Update(id, func(l *entities.Lesson) {
		upd.Apply(l)
		l.UpdatedAt = r.store.Now()
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("lesson %s not found", id)
	}
	return &lesson, nil
}

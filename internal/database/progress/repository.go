// Package progress provides storage operations for per-lesson completion.
package progress

import (
	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage"
)

// Repository handles all lesson progress storage operations.
type Repository struct {
	store    *storage.Store
	progress *storage.Collection[entities.LessonProgress]
}

// NewRepository creates a new lesson progress repository.
func NewRepository(store *storage.Store) *Repository {
	return &Repository{
		store:    store,
		progress: storage.NewCollection[entities.LessonProgress](store, storage.KeyLessonProgress),
	}
}

func (r *Repository) GetLessonProgress() ([]entities.LessonProgress, error) {
	return r.progress.All()
}

func (r *Repository) GetLessonProgressByUser(userID string) ([]entities.LessonProgress, error) {
	return r.progress.Filter(func(p entities.LessonProgress) bool { return p.UserID == userID })
}

func (r *Repository) GetLessonProgressByUserAndLesson(userID, lessonID string) (*entities.LessonProgress, error) {
	p, ok, err := r.progress.Find(matchPair(userID, lessonID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("no progress for lesson %s", lessonID)
	}
	return &p, nil
}

// CompletedLessons returns the set of lesson ids the user has completed.
func (r *Repository) CompletedLessons(userID string) (map[string]bool, error) {
	records, err := r.GetLessonProgressByUser(userID)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(records))
	for _, p := range records {
		if p.Completed {
			done[p.LessonID] = true
		}
	}
	return done, nil
}

// SetLessonProgress updates the (user, lesson) record in place, or creates it.
func (r *Repository) SetLessonProgress(userID, lessonID string, completed bool) (*entities.LessonProgress, error) {
	if userID == "" || lessonID == "" {
		return nil, apperr.Validation("lesson progress needs both a user and a lesson")
	}

	now := r.store.Now()
	updated, ok, err := r.progress.UpdateWhere(matchPair(userID, lessonID), func(p *entities.LessonProgress) {
		p.Completed = completed
		p.UpdatedAt = now
	})
	if err != nil {
		return nil, err
	}
	if ok {
		return &updated, nil
	}

	created := entities.LessonProgress{
		ID:        r.store.NewID(),
		UserID:    userID,
		LessonID:  lessonID,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.progress.Insert(created); err != nil {
		return nil, err
	}
	return &created, nil
}

func matchPair(userID, lessonID string) func(entities.LessonProgress) bool {
	return func(p entities.LessonProgress) bool {
		return p.UserID == userID && p.LessonID == lessonID
	}
}

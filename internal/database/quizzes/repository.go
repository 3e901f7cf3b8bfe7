// Package quizzes provides storage operations for quiz attempts.
package quizzes

import (
	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage"
)

// Repository handles all quiz attempt storage operations.
type Repository struct {
	store    *storage.Store
	attempts *storage.Collection[entities.QuizAttempt]
}

// NewRepository creates a new quiz attempts repository.
func NewRepository(store *storage.Store) *Repository {
	return &Repository{
		store:    store,
		attempts: storage.NewCollection[entities.QuizAttempt](store, storage.KeyQuizAttempts),
	}
}

func (r *Repository) GetQuizAttempts() ([]entities.QuizAttempt, error) {
	return r.attempts.All()
}

func (r *Repository) GetQuizAttemptsByUser(userID string) ([]entities.QuizAttempt, error) {
	return r.attempts.Filter(func(a entities.QuizAttempt) bool { return a.UserID == userID })
}

// CreateQuizAttempt records a new attempt. Every attempt is kept.
func (r *Repository) CreateQuizAttempt(userID, quizID string, score float64) (*entities.QuizAttempt, error) {
	if userID == "" || quizID == "" {
		return nil, apperr.Validation("quiz attempt needs both a user and a quiz")
	}

	now := r.store.Now()
	attempt := entities.QuizAttempt{
		ID:        r.store.NewID(),
		UserID:    userID,
		QuizID:    quizID,
		Score:     score,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.attempts.Insert(attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

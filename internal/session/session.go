// Package session holds the identity of the signed-in user in the
// persisted namespace. It records who is signed in; it does not check
// credentials.
package session

import (
	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage"
)

type Holder struct {
	store *storage.Store
}

func NewHolder(store *storage.Store) *Holder {
	return &Holder{store: store}
}

// Current returns the stored session, or nil when signed out.
func (h *Holder) Current() (*entities.Session, error) {
	return storage.ReadValue[entities.Session](h.store, storage.KeySession)
}

// Set replaces the stored session. A nil session signs out.
func (h *Holder) Set(s *entities.Session) error {
	if s != nil && s.UserID == "" {
		return apperr.Validation("session needs a user id")
	}
	return storage.WriteValue(h.store, storage.KeySession, s)
}

// Start stores a new session for the user stamped with the store clock.
func (h *Holder) Start(user entities.User) (*entities.Session, error) {
	s := &entities.Session{
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: h.store.Now(),
	}
	if err := h.Set(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (h *Holder) Clear() error {
	return storage.WriteValue[entities.Session](h.store, storage.KeySession, nil)
}

// Package credentials stores password hashes for users. Only used when
// password verification is enabled.
package credentials

import (
	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage"
)

type Repository struct {
	store       *storage.Store
	credentials *storage.Collection[entities.Credential]
}

func NewRepository(store *storage.Store) *Repository {
	return &Repository{
		store:       store,
		credentials: storage.NewCollection[entities.Credential](store, storage.KeyCredentials),
	}
}

func (r *Repository) GetByUser(userID string) (*entities.Credential, error) {
	c, ok, err := r.credentials.Find(func(c entities.Credential) bool { return c.UserID == userID })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("no credential for user %s", userID)
	}
	return &c, nil
}

// SetPasswordHash replaces the user's hash, or stores the first one.
func (r *Repository) SetPasswordHash(userID, hash string) (*entities.Credential, error) {
	if userID == "" || hash == "" {
		return nil, apperr.Validation("credential needs a user and a hash")
	}

	now := r.store.Now()
	updated, ok, err := r.credentials.UpdateWhere(
		func(c entities.Credential) bool { return c.UserID == userID },
		func(c *entities.Credential) {
			c.PasswordHash = hash
			c.UpdatedAt = now
		},
	)
	if err != nil {
		return nil, err
	}
	if ok {
		return &updated, nil
	}

	created := entities.Credential{
		ID:           r.store.NewID(),
		UserID:       userID,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.credentials.Insert(created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Package users provides storage operations for user accounts.
//
// # Usage
//
//	repo := users.NewRepository(store)
//	user, err := repo.GetUserByEmail("student@example.com")
package users

import (
	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/storage"
)

// Repository handles all user storage operations.
type Repository struct {
	store *storage.Store
	users *storage.Collection[entities.User]
}

// NewRepository creates a new users repository.
func NewRepository(store *storage.Store) *Repository {
	return &Repository{
		store: store,
		users: storage.NewCollection[entities.User](store, storage.KeyUsers),
	}
}

// GetUsers returns every user in creation order.
func (r *Repository) GetUsers() ([]entities.User, error) {
	return r.users.All()
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id string) (*entities.User, error) {
	user, ok, err := r.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user %s not found", id)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by exact email match.
func (r *Repository) GetUserByEmail(email string) (*entities.User, error) {
	user, ok, err := r.users.Find(func(u entities.User) bool { return u.Email == email })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user with email %s not found", email)
	}
	return &user, nil
}

// CreateUser stores a new user. Emails are unique.
func (r *Repository) CreateUser(in entities.NewUser) (*entities.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := r.ensureEmailFree(in.Email, ""); err != nil {
		return nil, err
	}

	now := r.store.Now()
	user := entities.User{
		ID:        r.store.NewID(),
		Email:     in.Email,
		FullName:  in.FullName,
		AvatarURL: in.AvatarURL,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.users.Insert(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the set fields of upd to the user with the given id.
func (r *Repository) UpdateUser(id string, upd entities.UserUpdate) (*entities.User, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	if upd.Email != nil {
		if err := r.ensureEmailFree(*upd.Email, id); err != nil {
			return nil, err
		}
	}

	user, ok, err := r.users.Update(id, func(u *entities.User) {
		upd.Apply(u)
		u.UpdatedAt = r.store.Now()
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user %s not found", id)
	}
	return &user, nil
}

func (r *Repository) ensureEmailFree(email, exceptID string) error {
	_, taken, err := r.users.Find(func(u entities.User) bool {
		return u.Email == email && u.ID != exceptID
	})
	if err != nil {
		return err
	}
	if taken {
		return apperr.Validation("User with this email already exists")
	}
	return nil
}

package entities

import (
	"strings"
	"time"

	"github.com/mrlokans/learnhub/internal/apperr"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) RecordID() string { return u.ID }

// NewUser is the create payload for a user.
type NewUser struct {
	Email     string
	FullName  string
	AvatarURL *string
	Role      Role
}

func (n NewUser) Validate() error {
	if strings.TrimSpace(n.Email) == "" {
		return apperr.Validation("email is required")
	}
	if !n.Role.Valid() {
		return apperr.Validation("invalid role %q", n.Role)
	}
	return nil
}

// UserUpdate applies only its non-nil fields.
type UserUpdate struct {
	Email     *string
	FullName  *string
	AvatarURL **string
	Role      *Role
}

func (u UserUpdate) Validate() error {
	if u.Email != nil && strings.TrimSpace(*u.Email) == "" {
		return apperr.Validation("email is required")
	}
	if u.Role != nil && !u.Role.Valid() {
		return apperr.Validation("invalid role %q", *u.Role)
	}
	return nil
}

func (u UserUpdate) Apply(user *User) {
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.FullName != nil {
		user.FullName = *u.FullName
	}
	if u.AvatarURL != nil {
		user.AvatarURL = *u.AvatarURL
	}
	if u.Role != nil {
		user.Role = *u.Role
	}
}

package entities

import "time"

// Session identifies the signed-in user. A nil *Session means signed out.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Credential holds a bcrypt hash for a user. Only written when password
// verification is enabled.
type Credential struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c Credential) RecordID() string { return c.ID }

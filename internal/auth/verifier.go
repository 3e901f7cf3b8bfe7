package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
)

// CredentialStore is the subset of the credentials repository the verifier needs.
type CredentialStore interface {
	GetByUser(userID string) (*entities.Credential, error)
	SetPasswordHash(userID, hash string) (*entities.Credential, error)
}

// Verifier stores and checks bcrypt password hashes.
type Verifier struct {
	creds CredentialStore
	cost  int
}

// NewVerifier returns a verifier hashing at the given bcrypt cost.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewVerifier(creds CredentialStore, cost int) *Verifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Verifier{creds: creds, cost: cost}
}

// ValidatePassword applies the length policy without hashing.
func (v *Verifier) ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperr.Validation("%s", ErrPasswordTooShort.Error())
	}
	if len(password) > maxPasswordBytes {
		return apperr.Validation("%s", ErrPasswordTooLong.Error())
	}
	return nil
}

// Register hashes the password and stores it for the user.
func (v *Verifier) Register(userID, password string) error {
	if err := v.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := HashPassword(password, v.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if _, err := v.creds.SetPasswordHash(userID, hash); err != nil {
		return err
	}
	return nil
}

// Verify returns ErrInvalidPassword when the user has no stored hash or the
// password does not match it.
func (v *Verifier) Verify(userID, password string) error {
	cred, err := v.creds.GetByUser(userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ErrInvalidPassword
		}
		return err
	}
	return CheckPassword(password, cred.PasswordHash)
}

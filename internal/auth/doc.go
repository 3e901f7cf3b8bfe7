// Package auth provides optional password checking for accounts.
//
// Sign-in accepts any password for a known email unless verification is
// enabled. With it, sign-up stores a bcrypt hash through a CredentialStore
// and sign-in compares against it.
//
// # Configuration
//
//	AUTH_VERIFY_PASSWORDS=true  # Hash at sign-up, check at sign-in
//	AUTH_BCRYPT_COST=12         # bcrypt cost factor
//
// # Usage
//
//	verifier := auth.NewVerifier(credentials.NewRepository(store), cfg.Auth.BcryptCost)
//	authStore := state.NewAuthStore(usersRepo, sessions, state.WithPasswordVerifier(verifier))
package auth

// internal/app/identity/identity.go

// Package identity is the authentication collaborator: account creation,
// credential sign-in, display-name updates, and email updates.
//
// Email updates have two paths. The privileged path is enabled by a
// service credential loaded at startup and may change any account's email;
// the self-service path only works when the acting session is the target
// account. Callers attempt the privileged path first and fall back to
// self-service, surfacing a distinct partial-failure state when neither
// succeeds after the directory record was already updated.
package identity

import (
	"errors"
	"regexp"
)

// Account identifies an authentication account.
type Account struct {
	UID   string
	Email string
}

var (
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when no account exists for the email or uid.
	ErrUserNotFound = errors.New("no account for that email")

	// ErrEmailInUse is returned when creating or updating to an email that
	// already belongs to another account.
	ErrEmailInUse = errors.New("email is already in use")

	// ErrWeakPassword rejects passwords shorter than six characters.
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	// ErrInvalidEmail rejects malformed email addresses before any I/O.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrNotConfigured means the privileged admin path has no service
	// credential. Non-fatal: callers fall back to self-service.
	ErrNotConfigured = errors.New("privileged identity path is not configured")

	// ErrNotAuthorized means the self-service path was attempted for an
	// account other than the acting session's own.
	ErrNotAuthorized = errors.New("not authorized to update this account")
)

const minPasswordLen = 6

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the address shape without touching the store.
func ValidateEmail(email string) error {
	if !emailRx.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return ErrWeakPassword
	}
	return nil
}

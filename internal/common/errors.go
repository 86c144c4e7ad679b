// Package common contains shared sentinel errors used across the backend.
// Callers should use errors.Is to match these values.
//
// The request-level sentinels carry the exact message rendered in the API
// error body, so transports can return err.Error() verbatim.
package common

import "errors"

var (
	// Validation errors (HTTP 400).
	ErrCredentialsRequired = errors.New("Email and password are required.")
	ErrPasswordTooShort    = errors.New("Password must be at least 6 characters.")

	// Conflict errors (HTTP 409).
	ErrEmailTaken = errors.New("An account with this email already exists.")

	// Auth errors (HTTP 401). The two login messages are intentionally
	// distinct: the original product treats "unknown email" as a UX hint,
	// not a secret.
	ErrNoAccount          = errors.New("No account with this email. Please register first.")
	ErrInvalidCredentials = errors.New("Invalid email or password.")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrUserNotFound       = errors.New("User not found")

	// Storage errors. A store file that exists but cannot be parsed is a
	// fatal condition for the request, never silently replaced.
	ErrStorageCorrupt = errors.New("user store is corrupt")

	// Generic internal failure (HTTP 500).
	ErrInternal = errors.New("internal error")
)

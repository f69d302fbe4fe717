// Package common defines shared sentinel errors used across the portal
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Account service errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Invoice service errors.
	ErrMissingRecipient     = errors.New("invoice has no recipient")
	ErrConflictingRecipient = errors.New("invoice bound to both an account and a document")
	ErrMissingFile          = errors.New("invoice has no attached file")

	// Client-side form validation.
	ErrValidation = errors.New("validation error")

	// Session marker errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)

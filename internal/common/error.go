// Package common defines shared constants and sentinel errors used across
// the addressbook client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (empty credentials, unknown filter key, empty value).
	ErrValidation = errors.New("validation error")

	// Session errors.
	ErrNoSession = errors.New("no active session")
)

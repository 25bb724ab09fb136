// Package common defines shared constants and sentinel errors used across
// learnkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Catalog-level errors.
	ErrNotFound = errors.New("not found")

	// Session-level errors.
	ErrBusy            = errors.New("another operation is in progress")
	ErrUnauthenticated = errors.New("not authenticated")

	// Input shape errors (caller-side credential checks).
	ErrValidation = errors.New("validation error")
)

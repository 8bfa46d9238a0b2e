// Package common defines sentinel errors and small helpers shared by the
// store, session and service layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorAlreadyExists  = errors.New("already exists")
	ErrorUnknownAccount = errors.New("unknown account")

	// ErrStorage marks failures of the underlying medium (driver, disk, network).
	ErrStorage = errors.New("storage error")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Input validation errors.
	ErrorValidation = errors.New("validation error")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

package services

import "errors"

var (
	// ErrUnauthorized is returned whenever the caller lacks visibility into
	// any requested user's data. The gate is all-or-nothing: no partial
	// results are ever produced alongside it.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation wraps input errors detected before any database write.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrWindowArithmetic marks a paging offset that fell outside the
	// requested window. Broken date arithmetic, not bad input; the request
	// fails instead of dropping rows.
	ErrWindowArithmetic = errors.New("window arithmetic out of bounds")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
)

package repository

import "errors"

var (
	// ErrNotFound is returned when no document matches, including
	// identifiers that cannot be parsed as object ids.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when an insert violates the unique
	// index on users.email.
	ErrDuplicateEmail = errors.New("email already registered")
)

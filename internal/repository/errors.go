package repository

import "errors"

var (
	// ErrNotFound is returned when a booking reference does not exist in the store.
	ErrNotFound = errors.New("booking not found")

	// ErrAlreadyExists is returned when inserting a booking whose reference is
	// already taken. References are generated tokens, so this indicates an
	// invariant violation rather than a normal client error.
	ErrAlreadyExists = errors.New("booking reference already exists")
)

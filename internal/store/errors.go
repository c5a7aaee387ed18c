package store

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate is returned when a create collides with an existing identifier.
	ErrDuplicate = errors.New("store: duplicate identifier")
)

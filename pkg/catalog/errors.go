package catalog

import "errors"

var (
	// ErrNotFound is returned when a referenced service, film, show or season does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when inserting a film or show whose key is already taken.
	ErrAlreadyExists = errors.New("already exists")
)

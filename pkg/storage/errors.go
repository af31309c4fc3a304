package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyExists is returned when inserting a record whose identifier is
	// already present in the store.
	ErrAlreadyExists = errors.New("record already exists")
)

package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested record is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a record that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrStoreUnavailable is returned when the persistence layer cannot serve a request.
	// Store adapters wrap the underlying driver error with it.
	ErrStoreUnavailable = errors.New("store unavailable")
)

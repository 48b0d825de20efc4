package engine

import "errors"

var (
	// ErrValidation indicates invalid user input (folder, theme or start index).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the folder does not exist or is not a directory.
	ErrNotFound = errors.New("not found")
)

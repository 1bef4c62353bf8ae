package trip

import "errors"

// Domain-specific errors for the trip package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrInputTooLong    = errors.New("input text is too long")
	ErrSessionNotFound = errors.New("chat session not found")
)

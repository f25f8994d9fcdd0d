package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoDocuments   = errors.New("no documents found")
	ErrInvalidConfig = errors.New("invalid configuration")
)

package core

import "errors"

// Common errors.
var (
	ErrMalformedBlob = errors.New("persisted notes are malformed")
	ErrNotFound      = errors.New("note not found")
	ErrSlotEmpty     = errors.New("storage slot is empty")
	ErrReadOnly      = errors.New("storage is in read-only mode")
	ErrInvalidKey    = errors.New("invalid storage key")
	ErrUnsupported   = errors.New("operation not supported by storage")
)

package storage

import "errors"

// Common server storage errors
var (
	// ErrDocumentNotFound indicates that document doesn't exist
	ErrDocumentNotFound = errors.New("document not found")
)

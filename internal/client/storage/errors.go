package storage

import "errors"

// Common client storage errors
var (
	// ErrDocumentNotFound indicates that no cached document exists
	ErrDocumentNotFound = errors.New("cached document not found")

	// ErrChangeNotFound indicates that queued change was not found
	ErrChangeNotFound = errors.New("queued change not found")

	// ErrConflictNotFound indicates that sync conflict was not found
	ErrConflictNotFound = errors.New("sync conflict not found")

	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

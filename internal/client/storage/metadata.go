package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the time of the last successful sync of a document
	SaveLastSyncTime(ctx context.Context, documentID string, t time.Time) error

	// GetLastSyncTime retrieves the time of the last successful sync
	// Returns zero time if the document was never synced
	GetLastSyncTime(ctx context.Context, documentID string) (time.Time, error)

	// SaveClientID persists the unique identifier of this client installation
	SaveClientID(ctx context.Context, id string) error

	// GetClientID retrieves the persisted client identifier
	// Returns empty string if none was saved yet
	GetClientID(ctx context.Context) (string, error)
}

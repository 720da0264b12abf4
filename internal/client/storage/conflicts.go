package storage

import (
	"context"

	"github.com/bidworks/docsync/internal/models"
)

//go:generate moq -out conflicts_mock.go . ConflictStore

// ConflictStore defines interface for storing detected sync conflicts.
// At most one open conflict per document is kept; saving a conflict for a
// document that already has one overwrites the record.
type ConflictStore interface {
	// SaveConflict stores a detected conflict, keyed by document
	SaveConflict(ctx context.Context, conflict *models.SyncConflict) error

	// GetOpenConflict returns the open conflict for a document
	// Returns ErrConflictNotFound if the document has none
	GetOpenConflict(ctx context.Context, documentID string) (*models.SyncConflict, error)

	// GetConflictByID returns a conflict by its unique ID
	// Returns ErrConflictNotFound if it doesn't exist
	GetConflictByID(ctx context.Context, id string) (*models.SyncConflict, error)

	// DeleteConflict removes a resolved conflict
	// Returns ErrConflictNotFound if it doesn't exist
	DeleteConflict(ctx context.Context, id string) error
}

package storage

import (
	"context"

	"github.com/bidworks/docsync/internal/models"
)

//go:generate moq -out queue_mock.go . ChangeQueue

// ChangeQueue defines interface for the durable queue of locally-made edits
// not yet confirmed by the server. Enqueue is append-only: a new edit is
// always a new queue entry, even when it supersedes an earlier one.
// The queue is strictly FIFO within a document.
type ChangeQueue interface {
	// QueueChange appends a change to the queue
	// The change's ID must already be assigned by the caller
	QueueChange(ctx context.Context, change *models.QueuedChange) error

	// GetPendingChanges returns all queued changes for a document
	// in exact enqueue order
	GetPendingChanges(ctx context.Context, documentID string) ([]*models.QueuedChange, error)

	// GetPendingCount returns the number of queued changes for a document
	GetPendingCount(ctx context.Context, documentID string) (int, error)

	// RemoveChange deletes a change once it was applied server-side
	// Returns ErrChangeNotFound if the change doesn't exist
	RemoveChange(ctx context.Context, id string) error

	// IncrementRetry increments the retry counter of a change after
	// a failed replay, keeping the change queued
	// Returns ErrChangeNotFound if the change doesn't exist
	IncrementRetry(ctx context.Context, id string) error
}

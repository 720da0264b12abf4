package storage

import (
	"context"

	"github.com/bidworks/docsync/internal/models"
)

//go:generate moq -out cache_mock.go . DocumentCache

// DocumentCache defines interface for the durable local document cache.
// Writes are last-writer-wins per document; merging divergent contents is
// the conflict resolution protocol's job, never the cache's.
type DocumentCache interface {
	// CacheDocument stores the last-known content of a document,
	// overwriting any previous entry
	CacheDocument(ctx context.Context, documentID string, content *models.Content) error

	// GetCachedDocument retrieves the cached state of a document
	// Returns ErrDocumentNotFound if no entry exists
	GetCachedDocument(ctx context.Context, documentID string) (*models.CachedDocument, error)

	// SetSyncedVersion records the server-confirmed version of a document
	// Returns ErrDocumentNotFound if no entry exists
	SetSyncedVersion(ctx context.Context, documentID string, version int64) error

	// ClearDocumentCache removes the cached entry for a document
	ClearDocumentCache(ctx context.Context, documentID string) error
}

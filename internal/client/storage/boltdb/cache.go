package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
)

// CacheDocument stores the last-known content of a document.
// The entry is overwritten as a whole on every save (last-writer-wins),
// preserving the SyncedVersion marker of the previous entry.
func (s *Storage) CacheDocument(ctx context.Context, documentID string, content *models.Content) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)

		doc := &models.CachedDocument{
			DocumentID: documentID,
			Content:    content,
			CachedAt:   time.Now().UTC(),
		}

		// Переносим SyncedVersion из существующей записи
		if prev := bucket.Get([]byte(documentID)); prev != nil {
			var existing models.CachedDocument
			if err := json.Unmarshal(prev, &existing); err == nil {
				doc.SyncedVersion = existing.SyncedVersion
			}
		}

		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal cached document: %w", err)
		}

		if err := bucket.Put([]byte(documentID), data); err != nil {
			return fmt.Errorf("failed to save cached document: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("cache transaction failed: %w", err)
	}

	return nil
}

// GetCachedDocument retrieves the cached state of a document
func (s *Storage) GetCachedDocument(ctx context.Context, documentID string) (*models.CachedDocument, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var doc *models.CachedDocument

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocuments).Get([]byte(documentID))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		doc = &models.CachedDocument{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to unmarshal cached document: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// SetSyncedVersion records the server-confirmed version of a document
func (s *Storage) SetSyncedVersion(ctx context.Context, documentID string, version int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)

		data := bucket.Get([]byte(documentID))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		var doc models.CachedDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal cached document: %w", err)
		}

		doc.SyncedVersion = version

		updated, err := json.Marshal(&doc)
		if err != nil {
			return fmt.Errorf("failed to marshal cached document: %w", err)
		}

		if err := bucket.Put([]byte(documentID), updated); err != nil {
			return fmt.Errorf("failed to save cached document: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrDocumentNotFound {
			return err
		}
		return fmt.Errorf("set synced version transaction failed: %w", err)
	}

	return nil
}

// ClearDocumentCache removes the cached entry for a document
func (s *Storage) ClearDocumentCache(ctx context.Context, documentID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocuments).Delete([]byte(documentID))
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}

package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/bidworks/docsync/internal/client/storage"
)

var (
	keyClientID       = []byte("client_id")
	lastSyncKeyPrefix = "last_sync:"
)

// SaveLastSyncTime saves the time of the last successful sync of a document
func (s *Storage) SaveLastSyncTime(ctx context.Context, documentID string, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		key := []byte(lastSyncKeyPrefix + documentID)
		return tx.Bucket(bucketMetadata).Put(key, []byte(t.UTC().Format(time.RFC3339Nano)))
	})

	if err != nil {
		return fmt.Errorf("metadata transaction failed: %w", err)
	}

	return nil
}

// GetLastSyncTime retrieves the time of the last successful sync.
// Returns zero time if the document was never synced.
func (s *Storage) GetLastSyncTime(ctx context.Context, documentID string) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var t time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMetadata).Get([]byte(lastSyncKeyPrefix + documentID))
		if data == nil {
			return nil
		}

		parsed, err := time.Parse(time.RFC3339Nano, string(data))
		if err != nil {
			return fmt.Errorf("failed to parse last sync time: %w", err)
		}

		t = parsed
		return nil
	})

	if err != nil {
		return time.Time{}, err
	}

	return t, nil
}

// SaveClientID persists the unique identifier of this client installation
func (s *Storage) SaveClientID(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMetadata).Put(keyClientID, []byte(id))
	})

	if err != nil {
		return fmt.Errorf("metadata transaction failed: %w", err)
	}

	return nil
}

// GetClientID retrieves the persisted client identifier
func (s *Storage) GetClientID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var id string

	err := s.db.View(func(tx *bbolt.Tx) error {
		if data := tx.Bucket(bucketMetadata).Get(keyClientID); data != nil {
			id = string(data)
		}
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get client id: %w", err)
	}

	return id, nil
}

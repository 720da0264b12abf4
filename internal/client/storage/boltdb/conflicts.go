package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
)

// Конфликты хранятся по ключу documentID: bucket сам обеспечивает
// инвариант "не более одного открытого конфликта на документ".

// SaveConflict stores a detected conflict, keyed by document
func (s *Storage) SaveConflict(ctx context.Context, conflict *models.SyncConflict) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(conflict)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConflicts).Put([]byte(conflict.DocumentID), data)
	})

	if err != nil {
		return fmt.Errorf("conflict transaction failed: %w", err)
	}

	return nil
}

// GetOpenConflict returns the open conflict for a document
func (s *Storage) GetOpenConflict(ctx context.Context, documentID string) (*models.SyncConflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflict *models.SyncConflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketConflicts).Get([]byte(documentID))
		if data == nil {
			return storage.ErrConflictNotFound
		}

		conflict = &models.SyncConflict{}
		if err := json.Unmarshal(data, conflict); err != nil {
			return fmt.Errorf("failed to unmarshal conflict: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return conflict, nil
}

// GetConflictByID returns a conflict by its unique ID.
// Open conflicts are few (at most one per document), so a scan is fine.
func (s *Storage) GetConflictByID(ctx context.Context, id string) (*models.SyncConflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflict *models.SyncConflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConflicts).ForEach(func(k, v []byte) error {
			var c models.SyncConflict
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("failed to unmarshal conflict: %w", err)
			}
			if c.ID == id {
				conflict = &c
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get conflict: %w", err)
	}

	if conflict == nil {
		return nil, storage.ErrConflictNotFound
	}

	return conflict, nil
}

// DeleteConflict removes a resolved conflict
func (s *Storage) DeleteConflict(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	conflict, err := s.GetConflictByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConflicts).Delete([]byte(conflict.DocumentID))
	})

	if err != nil {
		return fmt.Errorf("delete conflict transaction failed: %w", err)
	}

	return nil
}

package boltdb

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
)

// Ключи очереди: documentID + 0x00 + 8-байтовый big-endian номер, выданный
// NextSequence bucket'а. Bolt хранит ключи отсортированными, поэтому обход
// по префиксу documentID дает изменения строго в порядке постановки.
// Индексный bucket отображает ID изменения в полный ключ для удаления.

func queueKey(documentID string, seq uint64) []byte {
	key := make([]byte, 0, len(documentID)+9)
	key = append(key, documentID...)
	key = append(key, 0x00)

	var seqBytes [8]byte
	binary.BigEndian.PutUint64(seqBytes[:], seq)
	return append(key, seqBytes[:]...)
}

func queuePrefix(documentID string) []byte {
	return append([]byte(documentID), 0x00)
}

// QueueChange appends a change to the durable queue
func (s *Storage) QueueChange(ctx context.Context, change *models.QueuedChange) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal queued change: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChanges)

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}

		key := queueKey(change.DocumentID, seq)
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save change: %w", err)
		}

		// Индекс ID -> ключ очереди
		if err := tx.Bucket(bucketChangeIndex).Put([]byte(change.ID), key); err != nil {
			return fmt.Errorf("failed to index change: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("queue transaction failed: %w", err)
	}

	return nil
}

// GetPendingChanges returns all queued changes for a document in enqueue order
func (s *Storage) GetPendingChanges(ctx context.Context, documentID string) ([]*models.QueuedChange, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var changes []*models.QueuedChange

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(bucketChanges).Cursor()
		prefix := queuePrefix(documentID)

		for k, v := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cursor.Next() {
			var change models.QueuedChange
			if err := json.Unmarshal(v, &change); err != nil {
				return fmt.Errorf("failed to unmarshal change: %w", err)
			}
			changes = append(changes, &change)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get pending changes: %w", err)
	}

	return changes, nil
}

// GetPendingCount returns the number of queued changes for a document
func (s *Storage) GetPendingCount(ctx context.Context, documentID string) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	count := 0

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(bucketChanges).Cursor()
		prefix := queuePrefix(documentID)

		for k, _ := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = cursor.Next() {
			count++
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count pending changes: %w", err)
	}

	return count, nil
}

// RemoveChange deletes a change once it was applied server-side
func (s *Storage) RemoveChange(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		index := tx.Bucket(bucketChangeIndex)

		key := index.Get([]byte(id))
		if key == nil {
			return storage.ErrChangeNotFound
		}

		if err := tx.Bucket(bucketChanges).Delete(key); err != nil {
			return fmt.Errorf("failed to delete change: %w", err)
		}

		if err := index.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete change index: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrChangeNotFound {
			return err
		}
		return fmt.Errorf("remove transaction failed: %w", err)
	}

	return nil
}

// IncrementRetry increments the retry counter of a queued change.
// The change itself stays queued and keeps its position in the queue.
func (s *Storage) IncrementRetry(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		key := tx.Bucket(bucketChangeIndex).Get([]byte(id))
		if key == nil {
			return storage.ErrChangeNotFound
		}

		bucket := tx.Bucket(bucketChanges)

		data := bucket.Get(key)
		if data == nil {
			return storage.ErrChangeNotFound
		}

		var change models.QueuedChange
		if err := json.Unmarshal(data, &change); err != nil {
			return fmt.Errorf("failed to unmarshal change: %w", err)
		}

		change.RetryCount++

		updated, err := json.Marshal(&change)
		if err != nil {
			return fmt.Errorf("failed to marshal change: %w", err)
		}

		if err := bucket.Put(key, updated); err != nil {
			return fmt.Errorf("failed to save change: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrChangeNotFound {
			return err
		}
		return fmt.Errorf("retry transaction failed: %w", err)
	}

	return nil
}

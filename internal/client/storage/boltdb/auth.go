package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bidworks/docsync/internal/client/storage"
)

var keyAuthData = []byte("auth_data")

// SaveAuth stores authentication data
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("failed to marshal auth data: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAuth).Put(keyAuthData, data)
	})

	if err != nil {
		return fmt.Errorf("auth transaction failed: %w", err)
	}

	return nil
}

// GetAuth retrieves stored authentication data
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var auth *storage.AuthData

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketAuth).Get(keyAuthData)
		if data == nil {
			return storage.ErrAuthNotFound
		}

		auth = &storage.AuthData{}
		if err := json.Unmarshal(data, auth); err != nil {
			return fmt.Errorf("failed to unmarshal auth data: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return auth, nil
}

// DeleteAuth removes stored authentication data (logout)
func (s *Storage) DeleteAuth(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAuth).Delete(keyAuthData)
	})

	if err != nil {
		return fmt.Errorf("auth transaction failed: %w", err)
	}

	return nil
}

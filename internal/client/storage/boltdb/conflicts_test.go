package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
)

func makeConflict(id, documentID string) *models.SyncConflict {
	return &models.SyncConflict{
		ID:            id,
		DocumentID:    documentID,
		LocalContent:  &models.Content{Type: "doc", Text: "local"},
		ServerContent: &models.Content{Type: "doc", Text: "server"},
		DetectedAt:    time.Now().UTC(),
	}
}

func TestStorage_SaveGetConflict(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetOpenConflict(ctx, "doc-1")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)

	conflict := makeConflict("conflict-1", "doc-1")
	require.NoError(t, store.SaveConflict(ctx, conflict))

	got, err := store.GetOpenConflict(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "conflict-1", got.ID)
	assert.True(t, conflict.LocalContent.Equal(got.LocalContent))
	assert.True(t, conflict.ServerContent.Equal(got.ServerContent))

	byID, err := store.GetConflictByID(ctx, "conflict-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", byID.DocumentID)

	_, err = store.GetConflictByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestStorage_SaveConflict_OnePerDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveConflict(ctx, makeConflict("conflict-1", "doc-1")))

	// Повторное сохранение для того же документа замещает запись
	require.NoError(t, store.SaveConflict(ctx, makeConflict("conflict-2", "doc-1")))

	got, err := store.GetOpenConflict(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "conflict-2", got.ID)

	_, err = store.GetConflictByID(ctx, "conflict-1")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestStorage_DeleteConflict(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveConflict(ctx, makeConflict("conflict-1", "doc-1")))
	require.NoError(t, store.DeleteConflict(ctx, "conflict-1"))

	_, err := store.GetOpenConflict(ctx, "doc-1")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)

	err = store.DeleteConflict(ctx, "conflict-1")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

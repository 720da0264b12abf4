package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
)

func TestStorage_CacheDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// До сохранения документа нет
	_, err := store.GetCachedDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	content := &models.Content{Type: "doc", Children: []*models.Content{
		{Type: "paragraph", Children: []*models.Content{{Type: "text", Text: "draft"}}},
	}}

	require.NoError(t, store.CacheDocument(ctx, "doc-1", content))

	got, err := store.GetCachedDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.DocumentID)
	assert.True(t, content.Equal(got.Content))
	assert.False(t, got.CachedAt.IsZero())
	assert.Equal(t, int64(0), got.SyncedVersion)
}

func TestStorage_CacheDocument_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first := &models.Content{Type: "doc", Text: "v1"}
	second := &models.Content{Type: "doc", Text: "v2"}

	require.NoError(t, store.CacheDocument(ctx, "doc-1", first))
	require.NoError(t, store.SetSyncedVersion(ctx, "doc-1", 7))

	// Перезапись содержимого сохраняет SyncedVersion
	require.NoError(t, store.CacheDocument(ctx, "doc-1", second))

	got, err := store.GetCachedDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.True(t, second.Equal(got.Content))
	assert.Equal(t, int64(7), got.SyncedVersion)
}

func TestStorage_SetSyncedVersion_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.SetSyncedVersion(ctx, "missing", 1)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestStorage_ClearDocumentCache(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.CacheDocument(ctx, "doc-1", &models.Content{Type: "doc"}))
	require.NoError(t, store.ClearDocumentCache(ctx, "doc-1"))

	_, err := store.GetCachedDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	// Повторная очистка отсутствующего документа - no-op
	require.NoError(t, store.ClearDocumentCache(ctx, "doc-1"))
}

func TestStorage_Cache_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	content := &models.Content{Type: "doc", Text: "offline draft"}
	require.NoError(t, store.CacheDocument(ctx, "doc-1", content))
	require.NoError(t, store.SetSyncedVersion(ctx, "doc-1", 3))
	require.NoError(t, store.Close())

	// Кэш переживает перезапуск процесса
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.GetCachedDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.True(t, content.Equal(got.Content))
	assert.Equal(t, int64(3), got.SyncedVersion)
}

package boltdb

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
)

func makeChange(id, documentID, text string) *models.QueuedChange {
	return &models.QueuedChange{
		ID:         id,
		DocumentID: documentID,
		Type:       models.ChangeTypeEdit,
		Content:    &models.Content{Type: "doc", Text: text},
		Timestamp:  time.Now().UTC(),
	}
}

func TestStorage_QueueChange_FIFOOrder(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	for i := 0; i < 5; i++ {
		change := makeChange(fmt.Sprintf("change-%d", i), "doc-1", fmt.Sprintf("edit %d", i))
		require.NoError(t, store.QueueChange(ctx, change))
	}

	changes, err := store.GetPendingChanges(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, changes, 5)

	// Строгий порядок постановки
	for i, change := range changes {
		assert.Equal(t, fmt.Sprintf("change-%d", i), change.ID)
	}

	count, err := store.GetPendingCount(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestStorage_QueueChange_PerDocumentIsolation(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.QueueChange(ctx, makeChange("a-1", "doc-a", "a")))
	require.NoError(t, store.QueueChange(ctx, makeChange("b-1", "doc-b", "b")))
	require.NoError(t, store.QueueChange(ctx, makeChange("a-2", "doc-a", "aa")))

	changesA, err := store.GetPendingChanges(ctx, "doc-a")
	require.NoError(t, err)
	require.Len(t, changesA, 2)
	assert.Equal(t, "a-1", changesA[0].ID)
	assert.Equal(t, "a-2", changesA[1].ID)

	changesB, err := store.GetPendingChanges(ctx, "doc-b")
	require.NoError(t, err)
	require.Len(t, changesB, 1)
	assert.Equal(t, "b-1", changesB[0].ID)

	// Пустая очередь незнакомого документа
	changesC, err := store.GetPendingChanges(ctx, "doc-c")
	require.NoError(t, err)
	assert.Empty(t, changesC)
}

func TestStorage_RemoveChange(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.QueueChange(ctx, makeChange("change-1", "doc-1", "x")))
	require.NoError(t, store.QueueChange(ctx, makeChange("change-2", "doc-1", "y")))

	require.NoError(t, store.RemoveChange(ctx, "change-1"))

	changes, err := store.GetPendingChanges(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "change-2", changes[0].ID)

	// Повторное удаление
	err = store.RemoveChange(ctx, "change-1")
	assert.ErrorIs(t, err, storage.ErrChangeNotFound)
}

func TestStorage_IncrementRetry(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.QueueChange(ctx, makeChange("change-1", "doc-1", "x")))

	require.NoError(t, store.IncrementRetry(ctx, "change-1"))
	require.NoError(t, store.IncrementRetry(ctx, "change-1"))

	changes, err := store.GetPendingChanges(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, 2, changes[0].RetryCount)

	// Содержимое и позиция не меняются
	assert.Equal(t, "x", changes[0].Content.Text)

	err = store.IncrementRetry(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrChangeNotFound)
}

func TestStorage_Queue_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	require.NoError(t, store.QueueChange(ctx, makeChange("change-1", "doc-1", "offline")))
	require.NoError(t, store.QueueChange(ctx, makeChange("change-2", "doc-1", "edits")))
	require.NoError(t, store.Close())

	// Очередь переживает перезапуск, порядок сохраняется
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	changes, err := reopened.GetPendingChanges(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, "change-1", changes[0].ID)
	assert.Equal(t, "change-2", changes[1].ID)

	// Новые изменения встают после старых
	require.NoError(t, reopened.QueueChange(ctx, makeChange("change-3", "doc-1", "more")))

	changes, err = reopened.GetPendingChanges(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, changes, 3)
	assert.Equal(t, "change-3", changes[2].ID)
}

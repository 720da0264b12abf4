package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidworks/docsync/internal/server/storage"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "docsync_test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestGetDocument_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestApplyChanges_CreatesDocument(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	contents := [][]byte{
		[]byte(`{"text":"first draft"}`),
	}

	doc, applied, err := store.ApplyChanges(ctx, "doc-1", "user-1", 0, contents)
	require.NoError(t, err)

	assert.True(t, applied)
	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, "user-1", doc.OwnerID)
	assert.Equal(t, int64(1), doc.Version)
	assert.JSONEq(t, `{"text":"first draft"}`, string(doc.Content))

	// Документ читается обратно
	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)
	assert.JSONEq(t, `{"text":"first draft"}`, string(got.Content))
}

func TestApplyChanges_UnknownDocumentNonZeroBase(t *testing.T) {
	store := createTestStorage(t)

	// Несуществующий документ создается только от базовой версии 0
	_, _, err := store.ApplyChanges(context.Background(), "doc-1", "user-1", 3,
		[][]byte{[]byte(`{}`)})
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestApplyChanges_SequentialReplays(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Первый цикл: два изменения от нуля
	doc, applied, err := store.ApplyChanges(ctx, "doc-1", "user-1", 0, [][]byte{
		[]byte(`{"text":"a"}`),
		[]byte(`{"text":"b"}`),
	})
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, int64(2), doc.Version)
	assert.JSONEq(t, `{"text":"b"}`, string(doc.Content))

	// Второй цикл продолжает от подтвержденной версии
	doc, applied, err = store.ApplyChanges(ctx, "doc-1", "user-1", 2, [][]byte{
		[]byte(`{"text":"c"}`),
	})
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, int64(3), doc.Version)
	assert.JSONEq(t, `{"text":"c"}`, string(doc.Content))
}

func TestApplyChanges_VersionMismatch(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, applied, err := store.ApplyChanges(ctx, "doc-1", "user-1", 0, [][]byte{
		[]byte(`{"text":"teammate edit"}`),
	})
	require.NoError(t, err)
	require.True(t, applied)

	// Клиент со старой базовой версией получает отказ и текущее состояние
	doc, applied, err := store.ApplyChanges(ctx, "doc-1", "user-2", 0, [][]byte{
		[]byte(`{"text":"stale edit"}`),
	})
	require.NoError(t, err)

	assert.False(t, applied)
	assert.Equal(t, int64(1), doc.Version)
	assert.JSONEq(t, `{"text":"teammate edit"}`, string(doc.Content))

	// Отклоненное воспроизведение не меняет хранилище
	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)
	assert.JSONEq(t, `{"text":"teammate edit"}`, string(got.Content))
}

func TestSaveDocument_Upsert(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	doc := &storage.Document{
		ID:        "doc-1",
		OwnerID:   "user-1",
		Content:   []byte(`{"text":"seeded"}`),
		Version:   5,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Version)
	assert.JSONEq(t, `{"text":"seeded"}`, string(got.Content))

	// Повторное сохранение перезаписывает
	doc.Content = []byte(`{"text":"reseeded"}`)
	doc.Version = 6
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err = store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Version)
	assert.JSONEq(t, `{"text":"reseeded"}`, string(got.Content))
}

package sync

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/client/storage/boltdb"
	"github.com/bidworks/docsync/internal/models"
)

// statusRecorder фиксирует вызовы StatusReporter
type statusRecorder struct {
	syncing  int
	synced   int
	degraded int
}

func (r *statusRecorder) MarkSyncing()  { r.syncing++ }
func (r *statusRecorder) MarkSynced()   { r.synced++ }
func (r *statusRecorder) MarkDegraded() { r.degraded++ }

func noOpenConflicts() *storage.ConflictStoreMock {
	return &storage.ConflictStoreMock{
		GetOpenConflictFunc: func(ctx context.Context, documentID string) (*models.SyncConflict, error) {
			return nil, storage.ErrConflictNotFound
		},
	}
}

func TestService_RecordEdit(t *testing.T) {
	ctx := context.Background()

	cache := &storage.DocumentCacheMock{
		CacheDocumentFunc: func(ctx context.Context, documentID string, content *models.Content) error {
			return nil
		},
	}
	queue := &storage.ChangeQueueMock{
		QueueChangeFunc: func(ctx context.Context, change *models.QueuedChange) error {
			return nil
		},
	}

	svc := NewService(cache, queue, noOpenConflicts(), &storage.MetadataStorageMock{}, nil, testLogger())

	content := &models.Content{Type: "doc", Text: "proposal draft"}
	change, err := svc.RecordEdit(ctx, "doc-1", models.ChangeTypeEdit, content)
	require.NoError(t, err)
	require.NotNil(t, change)

	assert.NotEmpty(t, change.ID)
	assert.Equal(t, "doc-1", change.DocumentID)
	assert.Equal(t, models.ChangeTypeEdit, change.Type)
	assert.False(t, change.Timestamp.IsZero())
	assert.Equal(t, 0, change.RetryCount)

	// Кэш обновлен и изменение поставлено в очередь
	require.Len(t, cache.CacheDocumentCalls(), 1)
	require.Len(t, queue.QueueChangeCalls(), 1)

	// Очередь хранит копию содержимого
	content.Text = "mutated after record"
	assert.Equal(t, "proposal draft", change.Content.Text)
}

func TestService_Sync_NothingPending(t *testing.T) {
	ctx := context.Background()

	queue := &storage.ChangeQueueMock{
		GetPendingChangesFunc: func(ctx context.Context, documentID string) ([]*models.QueuedChange, error) {
			return nil, nil
		},
	}
	status := &statusRecorder{}

	svc := NewService(&storage.DocumentCacheMock{}, queue, noOpenConflicts(),
		&storage.MetadataStorageMock{}, status, testLogger())

	fnCalled := false
	result, err := svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		fnCalled = true
		return &Outcome{Success: true}, nil
	})
	require.NoError(t, err)

	// Идемпотентный no-op: сеть не трогаем, статус не дергаем
	assert.True(t, result.Success)
	assert.True(t, result.Skipped)
	assert.False(t, fnCalled)
	assert.Equal(t, 0, status.syncing)
}

func TestService_Sync_Success_DrainsQueue(t *testing.T) {
	ctx := context.Background()

	pending := []*models.QueuedChange{
		{ID: "change-1", DocumentID: "doc-1", Content: &models.Content{Text: "v1"}},
		{ID: "change-2", DocumentID: "doc-1", Content: &models.Content{Text: "v2"}},
	}

	var removed []string
	queue := &storage.ChangeQueueMock{
		GetPendingChangesFunc: func(ctx context.Context, documentID string) ([]*models.QueuedChange, error) {
			return pending, nil
		},
		RemoveChangeFunc: func(ctx context.Context, id string) error {
			removed = append(removed, id)
			return nil
		},
	}

	var syncedVersion int64
	cache := &storage.DocumentCacheMock{
		SetSyncedVersionFunc: func(ctx context.Context, documentID string, version int64) error {
			syncedVersion = version
			return nil
		},
	}

	metadata := &storage.MetadataStorageMock{
		SaveLastSyncTimeFunc: func(ctx context.Context, documentID string, tm time.Time) error {
			return nil
		},
	}

	status := &statusRecorder{}
	svc := NewService(cache, queue, noOpenConflicts(), metadata, status, testLogger())

	result, err := svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		// Очередь передается целиком и по порядку
		require.Len(t, changes, 2)
		assert.Equal(t, "change-1", changes[0].ID)
		assert.Equal(t, "change-2", changes[1].ID)
		return &Outcome{Success: true, Version: 5}, nil
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.Skipped)
	assert.Equal(t, 2, result.Replayed)
	assert.Empty(t, result.Conflicts)

	assert.Equal(t, []string{"change-1", "change-2"}, removed)
	assert.Equal(t, int64(5), syncedVersion)
	require.Len(t, metadata.SaveLastSyncTimeCalls(), 1)

	assert.Equal(t, 1, status.syncing)
	assert.Equal(t, 1, status.synced)
	assert.Equal(t, 0, status.degraded)
}

func TestService_Sync_NetworkFailure_KeepsQueue(t *testing.T) {
	ctx := context.Background()

	pending := []*models.QueuedChange{
		{ID: "change-1", DocumentID: "doc-1", Content: &models.Content{Text: "v1"}},
		{ID: "change-2", DocumentID: "doc-1", Content: &models.Content{Text: "v2"}},
	}

	var retried []string
	queue := &storage.ChangeQueueMock{
		GetPendingChangesFunc: func(ctx context.Context, documentID string) ([]*models.QueuedChange, error) {
			return pending, nil
		},
		IncrementRetryFunc: func(ctx context.Context, id string) error {
			retried = append(retried, id)
			return nil
		},
	}

	status := &statusRecorder{}
	svc := NewService(&storage.DocumentCacheMock{}, queue, noOpenConflicts(),
		&storage.MetadataStorageMock{}, status, testLogger())

	netErr := errors.New("connection refused")
	_, err := svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		return nil, netErr
	})
	require.ErrorIs(t, err, netErr)

	// Изменения остались в очереди, счетчики повторов выросли
	assert.Equal(t, []string{"change-1", "change-2"}, retried)
	assert.Empty(t, queue.RemoveChangeCalls())

	assert.Equal(t, 1, status.syncing)
	assert.Equal(t, 0, status.synced)
	assert.Equal(t, 1, status.degraded)
}

func TestService_Sync_Rejected_KeepsQueue(t *testing.T) {
	ctx := context.Background()

	pending := []*models.QueuedChange{
		{ID: "change-1", DocumentID: "doc-1", Content: &models.Content{Text: "v1"}},
	}

	var retried []string
	queue := &storage.ChangeQueueMock{
		GetPendingChangesFunc: func(ctx context.Context, documentID string) ([]*models.QueuedChange, error) {
			return pending, nil
		},
		IncrementRetryFunc: func(ctx context.Context, id string) error {
			retried = append(retried, id)
			return nil
		},
	}

	status := &statusRecorder{}
	svc := NewService(&storage.DocumentCacheMock{}, queue, noOpenConflicts(),
		&storage.MetadataStorageMock{}, status, testLogger())

	// Сервер ответил без ошибки транспорта, но не принял воспроизведение
	_, err := svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		return &Outcome{Success: false}, nil
	})
	require.ErrorIs(t, err, ErrReplayRejected)

	assert.Equal(t, []string{"change-1"}, retried)
	assert.Empty(t, queue.RemoveChangeCalls())
	assert.Equal(t, 1, status.degraded)
	assert.Equal(t, 0, status.synced)
}

func TestService_Sync_Divergence_CreatesConflict(t *testing.T) {
	ctx := context.Background()

	pending := []*models.QueuedChange{
		{ID: "change-1", DocumentID: "doc-1", Content: &models.Content{Text: "local"}},
	}
	queue := &storage.ChangeQueueMock{
		GetPendingChangesFunc: func(ctx context.Context, documentID string) ([]*models.QueuedChange, error) {
			return pending, nil
		},
	}

	localContent := &models.Content{Type: "doc", Text: "local edit"}
	cache := &storage.DocumentCacheMock{
		GetCachedDocumentFunc: func(ctx context.Context, documentID string) (*models.CachedDocument, error) {
			return &models.CachedDocument{DocumentID: documentID, Content: localContent}, nil
		},
	}

	var saved *models.SyncConflict
	conflicts := &storage.ConflictStoreMock{
		GetOpenConflictFunc: func(ctx context.Context, documentID string) (*models.SyncConflict, error) {
			return nil, storage.ErrConflictNotFound
		},
		SaveConflictFunc: func(ctx context.Context, conflict *models.SyncConflict) error {
			saved = conflict
			return nil
		},
	}

	status := &statusRecorder{}
	svc := NewService(cache, queue, conflicts, &storage.MetadataStorageMock{}, status, testLogger())

	serverContent := &models.Content{Type: "doc", Text: "server edit"}
	result, err := svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		return &Outcome{Success: true, Conflict: true, Version: 9, ServerContent: serverContent}, nil
	})
	require.NoError(t, err)

	require.Len(t, result.Conflicts, 1)
	assert.False(t, result.Success)
	conflict := result.Conflicts[0]
	assert.True(t, localContent.Equal(conflict.LocalContent))
	assert.True(t, serverContent.Equal(conflict.ServerContent))
	assert.Equal(t, int64(9), conflict.ServerVersion)
	require.NotNil(t, saved)

	// Очередь сохранена, версия не продвинута
	assert.Empty(t, queue.RemoveChangeCalls())
	assert.Empty(t, cache.SetSyncedVersionCalls())

	// Статус остается syncing до разрешения
	assert.Equal(t, 1, status.syncing)
	assert.Equal(t, 0, status.synced)
	assert.Equal(t, 0, status.degraded)
}

func TestService_Sync_ConflictFlagButEqualContent(t *testing.T) {
	ctx := context.Background()

	pending := []*models.QueuedChange{
		{ID: "change-1", DocumentID: "doc-1", Content: &models.Content{Text: "same"}},
	}
	queue := &storage.ChangeQueueMock{
		GetPendingChangesFunc: func(ctx context.Context, documentID string) ([]*models.QueuedChange, error) {
			return pending, nil
		},
		RemoveChangeFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}

	sameContent := &models.Content{Type: "doc", Text: "same"}
	cache := &storage.DocumentCacheMock{
		GetCachedDocumentFunc: func(ctx context.Context, documentID string) (*models.CachedDocument, error) {
			return &models.CachedDocument{DocumentID: documentID, Content: sameContent}, nil
		},
		SetSyncedVersionFunc: func(ctx context.Context, documentID string, version int64) error {
			return nil
		},
	}

	metadata := &storage.MetadataStorageMock{
		SaveLastSyncTimeFunc: func(ctx context.Context, documentID string, tm time.Time) error {
			return nil
		},
	}

	conflicts := noOpenConflicts()
	svc := NewService(cache, queue, conflicts, metadata, nil, testLogger())

	// Сервер сообщил о расхождении, но содержимое сошлось: локальная
	// правка и есть источник серверного состояния
	result, err := svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		return &Outcome{Success: true, Conflict: true, Version: 4, ServerContent: sameContent.Clone()}, nil
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, conflicts.SaveConflictCalls())
	assert.Len(t, queue.RemoveChangeCalls(), 1)
}

func TestService_Sync_OpenConflict_Skips(t *testing.T) {
	ctx := context.Background()

	existing := &models.SyncConflict{ID: "conflict-1", DocumentID: "doc-1"}
	conflicts := &storage.ConflictStoreMock{
		GetOpenConflictFunc: func(ctx context.Context, documentID string) (*models.SyncConflict, error) {
			return existing, nil
		},
	}

	svc := NewService(&storage.DocumentCacheMock{}, &storage.ChangeQueueMock{}, conflicts,
		&storage.MetadataStorageMock{}, nil, testLogger())

	fnCalled := false
	result, err := svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		fnCalled = true
		return nil, nil
	})
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "conflict-1", result.Conflicts[0].ID)
	assert.False(t, fnCalled)
}

func TestService_Sync_SingleFlight(t *testing.T) {
	ctx := context.Background()

	queue := &storage.ChangeQueueMock{
		GetPendingChangesFunc: func(ctx context.Context, documentID string) ([]*models.QueuedChange, error) {
			return []*models.QueuedChange{
				{ID: "change-1", DocumentID: "doc-1", Content: &models.Content{Text: "v1"}},
			}, nil
		},
		RemoveChangeFunc: func(ctx context.Context, id string) error { return nil },
	}
	cache := &storage.DocumentCacheMock{
		SetSyncedVersionFunc: func(ctx context.Context, documentID string, version int64) error { return nil },
	}
	metadata := &storage.MetadataStorageMock{
		SaveLastSyncTimeFunc: func(ctx context.Context, documentID string, tm time.Time) error { return nil },
	}

	svc := NewService(cache, queue, noOpenConflicts(), metadata, nil, testLogger())

	entered := make(chan struct{})
	release := make(chan struct{})

	done := make(chan *Result, 1)
	go func() {
		result, err := svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
			close(entered)
			<-release
			return &Outcome{Success: true, Version: 1}, nil
		})
		require.NoError(t, err)
		done <- result
	}()

	<-entered

	// Пока первый цикл в полете, второй для того же документа схлопывается
	second, err := svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		t.Error("concurrent replay must not happen")
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, second.Skipped)

	close(release)
	first := <-done
	assert.True(t, first.Success)
	assert.Equal(t, 1, first.Replayed)
}

func TestService_ResolveConflict(t *testing.T) {
	ctx := context.Background()

	conflict := &models.SyncConflict{
		ID:            "conflict-1",
		DocumentID:    "doc-1",
		LocalContent:  &models.Content{Type: "doc", Text: "local"},
		ServerContent: &models.Content{Type: "doc", Text: "server"},
		ServerVersion: 9,
	}

	var deleted string
	conflicts := &storage.ConflictStoreMock{
		GetConflictByIDFunc: func(ctx context.Context, id string) (*models.SyncConflict, error) {
			require.Equal(t, "conflict-1", id)
			return conflict, nil
		},
		DeleteConflictFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	var cachedContent *models.Content
	var rebasedVersion int64
	cache := &storage.DocumentCacheMock{
		CacheDocumentFunc: func(ctx context.Context, documentID string, content *models.Content) error {
			require.Equal(t, "doc-1", documentID)
			cachedContent = content
			return nil
		},
		SetSyncedVersionFunc: func(ctx context.Context, documentID string, version int64) error {
			require.Equal(t, "doc-1", documentID)
			rebasedVersion = version
			return nil
		},
	}

	var queued *models.QueuedChange
	queue := &storage.ChangeQueueMock{
		QueueChangeFunc: func(ctx context.Context, change *models.QueuedChange) error {
			queued = change
			return nil
		},
	}
	svc := NewService(cache, queue, conflicts, &storage.MetadataStorageMock{}, nil, testLogger())

	merged := &models.Content{Type: "doc", Text: "merged by user"}
	require.NoError(t, svc.ResolveConflict(ctx, "conflict-1", merged))

	assert.Equal(t, "conflict-1", deleted)
	assert.True(t, merged.Equal(cachedContent))

	// База следующего Sync - серверная версия на момент обнаружения
	assert.Equal(t, int64(9), rebasedVersion)

	// Итоговое содержимое встает последним изменением в очередь,
	// доконфликтные записи не удаляются
	require.NotNil(t, queued)
	assert.Equal(t, "doc-1", queued.DocumentID)
	assert.True(t, merged.Equal(queued.Content))
	assert.Empty(t, queue.RemoveChangeCalls())
}

// serverSim воспроизводит серверную семантику optimistic concurrency:
// расхождение базовой версии отклоняет воспроизведение и возвращает
// текущее серверное состояние, совпадение применяет изменения по порядку.
type serverSim struct {
	version int64
	content *models.Content
}

// fn строит SyncFunc, читающий базовую версию из кэша так же, как это
// делает сетевой адаптер перед каждым циклом.
func (s *serverSim) fn(svc Service, documentID string) SyncFunc {
	return func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		var base int64
		if cached, err := svc.GetCachedDocument(ctx, documentID); err == nil {
			base = cached.SyncedVersion
		}

		if base != s.version {
			return &Outcome{
				Success:       true,
				Conflict:      true,
				Version:       s.version,
				ServerContent: s.content.Clone(),
			}, nil
		}

		for _, change := range changes {
			s.version++
			s.content = change.Content.Clone()
		}
		return &Outcome{Success: true, Version: s.version}, nil
	}
}

// Интеграционный сценарий на реальном BoltDB хранилище против сервера
// с проверкой версий: правки в офлайне, восстановление соединения,
// расхождение с правкой коллеги, слияние и схождение.
func TestService_OfflineEditLifecycle(t *testing.T) {
	ctx := context.Background()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "sync_test.db"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	svc := NewService(store, store, store, store, nil, testLogger())
	server := &serverSim{content: &models.Content{Type: "doc"}}

	// Пользователь правит документ дважды в офлайне
	_, err = svc.RecordEdit(ctx, "doc-1", models.ChangeTypeEdit, &models.Content{Type: "doc", Text: "draft 1"})
	require.NoError(t, err)
	_, err = svc.RecordEdit(ctx, "doc-1", models.ChangeTypeEdit, &models.Content{Type: "doc", Text: "draft 2"})
	require.NoError(t, err)

	synced, err := svc.IsDocumentSynced(ctx, "doc-1")
	require.NoError(t, err)
	assert.False(t, synced)

	// Соединение восстановлено, сервер принимает очередь
	result, err := svc.Sync(ctx, "doc-1", server.fn(svc, "doc-1"))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Replayed)
	assert.Equal(t, "draft 2", server.content.Text)

	synced, err = svc.IsDocumentSynced(ctx, "doc-1")
	require.NoError(t, err)
	assert.True(t, synced)

	cached, err := svc.GetCachedDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), cached.SyncedVersion)

	// Повторный цикл без новых правок - no-op
	result, err = svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		t.Error("no replay expected")
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	// Коллега правит документ на сервере, затем пользователь правит у себя
	server.version = 3
	server.content = &models.Content{Type: "doc", Text: "teammate rework"}

	_, err = svc.RecordEdit(ctx, "doc-1", models.ChangeTypeEdit, &models.Content{Type: "doc", Text: "local rework"})
	require.NoError(t, err)

	result, err = svc.Sync(ctx, "doc-1", server.fn(svc, "doc-1"))
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)
	conflictID := result.Conflicts[0].ID
	assert.Equal(t, int64(3), result.Conflicts[0].ServerVersion)

	// Пока конфликт открыт, очередь не воспроизводится
	result, err = svc.Sync(ctx, "doc-1", func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error) {
		t.Error("replay must wait for resolution")
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, conflictID, result.Conflicts[0].ID)

	// Пользователь сливает версии
	merged := &models.Content{Type: "doc", Text: "merged rework"}
	require.NoError(t, svc.ResolveConflict(ctx, conflictID, merged))

	// После разрешения очередь воспроизводится от серверной базы:
	// доконфликтный снимок, затем итоговое содержимое последним
	result, err = svc.Sync(ctx, "doc-1", server.fn(svc, "doc-1"))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Conflicts)
	assert.Equal(t, 2, result.Replayed)
	assert.True(t, merged.Equal(server.content))

	synced, err = svc.IsDocumentSynced(ctx, "doc-1")
	require.NoError(t, err)
	assert.True(t, synced)
}

// Разрешение в пользу локальной версии должно сходиться: следующий цикл
// против сервера с проверкой версий не рождает новый конфликт.
func TestService_ResolveKeepLocal_Converges(t *testing.T) {
	ctx := context.Background()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "sync_test.db"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	svc := NewService(store, store, store, store, nil, testLogger())

	// Сервер уже ушел вперед, пока клиент был в офлайне
	server := &serverSim{
		version: 1,
		content: &models.Content{Type: "doc", Text: "teammate proposal"},
	}

	local := &models.Content{Type: "doc", Text: "my proposal"}
	_, err = svc.RecordEdit(ctx, "doc-1", models.ChangeTypeEdit, local)
	require.NoError(t, err)

	result, err := svc.Sync(ctx, "doc-1", server.fn(svc, "doc-1"))
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)
	conflict := result.Conflicts[0]

	// Пользователь оставляет свою версию
	require.NoError(t, svc.ResolveConflict(ctx, conflict.ID, conflict.LocalContent))

	result, err = svc.Sync(ctx, "doc-1", server.fn(svc, "doc-1"))
	require.NoError(t, err)
	assert.Empty(t, result.Conflicts)
	assert.True(t, result.Success)
	assert.True(t, local.Equal(server.content))

	// Документ сошелся и остается синхронизированным
	synced, err := svc.IsDocumentSynced(ctx, "doc-1")
	require.NoError(t, err)
	assert.True(t, synced)

	result, err = svc.Sync(ctx, "doc-1", server.fn(svc, "doc-1"))
	require.NoError(t, err)
	assert.True(t, result.Skipped)
}

// ResolveConflict по несуществующему идентификатору
func TestService_ResolveConflict_NotFound(t *testing.T) {
	ctx := context.Background()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "sync_test.db"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	svc := NewService(store, store, store, store, nil, testLogger())

	err = svc.ResolveConflict(ctx, "missing", &models.Content{Type: "doc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

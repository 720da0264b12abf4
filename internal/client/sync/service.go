package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// ErrReplayRejected сервер отклонил воспроизведение очереди, не сообщив
// о расхождении содержимого.
var ErrReplayRejected = errors.New("replay rejected by server")

// Service определяет интерфейс оркестратора офлайн-синхронизации.
// Один экземпляр создается при старте процесса и внедряется во всех
// потребителей (UI, CLI); состояние живет в durable-хранилище.
type Service interface {
	// RecordEdit записывает локальную правку: обновляет кэш документа
	// и ставит изменение в очередь воспроизведения
	RecordEdit(ctx context.Context, documentID string, changeType models.ChangeType, content *models.Content) (*models.QueuedChange, error)

	// CacheDocument обновляет локальный кэш документа без постановки в очередь
	CacheDocument(ctx context.Context, documentID string, content *models.Content) error

	// AdoptServerDocument записывает серверное состояние как подтвержденную
	// базу: кэш обновляется, SyncedVersion переводится на версию сервера
	AdoptServerDocument(ctx context.Context, documentID string, content *models.Content, version int64) error

	// GetCachedDocument возвращает закэшированное состояние документа
	GetCachedDocument(ctx context.Context, documentID string) (*models.CachedDocument, error)

	// ClearDocumentCache удаляет закэшированное состояние документа
	ClearDocumentCache(ctx context.Context, documentID string) error

	// GetPendingChanges возвращает очередь изменений документа в FIFO порядке
	GetPendingChanges(ctx context.Context, documentID string) ([]*models.QueuedChange, error)

	// GetPendingCount возвращает размер очереди изменений документа
	GetPendingCount(ctx context.Context, documentID string) (int, error)

	// HasPendingChanges сообщает, есть ли неподтвержденные изменения
	HasPendingChanges(ctx context.Context, documentID string) (bool, error)

	// IsDocumentSynced истинно, когда нет ни неподтвержденных изменений,
	// ни открытого конфликта
	IsDocumentSynced(ctx context.Context, documentID string) (bool, error)

	// GetConflicts возвращает открытые конфликты документа
	GetConflicts(ctx context.Context, documentID string) ([]*models.SyncConflict, error)

	// GetConflict возвращает конфликт по его идентификатору
	GetConflict(ctx context.Context, conflictID string) (*models.SyncConflict, error)

	// Sync воспроизводит очередь изменений документа через syncFn
	Sync(ctx context.Context, documentID string, fn SyncFunc) (*Result, error)

	// ResolveConflict принимает итоговое содержимое конфликтующего
	// документа и снимает конфликт
	ResolveConflict(ctx context.Context, conflictID string, resolved *models.Content) error
}

// SyncFunc выполняет сетевое воспроизведение упорядоченного списка
// изменений на сервере. Ядро не знает, как именно выполняется вызов
// (HTTP, GraphQL, RPC) - точка внедрения для сетевого слоя.
type SyncFunc func(ctx context.Context, changes []*models.QueuedChange) (*Outcome, error)

// Outcome результат серверного воспроизведения.
type Outcome struct {
	// ServerContent актуальное серверное содержимое при расхождении версий
	ServerContent *models.Content
	// Version текущая версия документа на сервере
	Version int64
	// Success воспроизведение принято сервером; false без Conflict
	// означает отказ - очередь сохраняется и повторяется позже
	Success bool
	// Conflict версии разошлись, изменения не применены
	Conflict bool
}

// Result итог одного цикла синхронизации документа.
type Result struct {
	// Conflicts конфликты, требующие разрешения пользователем
	Conflicts []*models.SyncConflict
	// Replayed количество подтвержденных сервером изменений
	Replayed int
	// Success воспроизведение завершилось без конфликтов
	Success bool
	// Skipped цикл не выполнялся: нечего воспроизводить, документ ждет
	// разрешения конфликта, либо синхронизация уже идет
	Skipped bool
}

// StatusReporter отражает фазы синхронизации в статусе соединения.
// Реализуется Connection Monitor; nil-реализация допустима.
type StatusReporter interface {
	MarkSyncing()
	MarkSynced()
	MarkDegraded()
}

type service struct {
	cache     storage.DocumentCache
	queue     storage.ChangeQueue
	conflicts storage.ConflictStore
	metadata  storage.MetadataStorage
	detector  *Detector
	status    StatusReporter
	logger    *slog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService creates the sync orchestrator. status may be nil when no
// connection monitor is attached (e.g. one-shot CLI invocations).
func NewService(
	cache storage.DocumentCache,
	queue storage.ChangeQueue,
	conflicts storage.ConflictStore,
	metadata storage.MetadataStorage,
	status StatusReporter,
	logger *slog.Logger,
) Service {
	return &service{
		cache:     cache,
		queue:     queue,
		conflicts: conflicts,
		metadata:  metadata,
		detector:  NewDetector(conflicts, logger),
		status:    status,
		logger:    logger,
		inFlight:  make(map[string]struct{}),
	}
}

// RecordEdit записывает локальную правку: кэш обновляется всегда,
// изменение встает в очередь новым элементом (очередь append-only,
// существующие элементы не переписываются).
func (s *service) RecordEdit(ctx context.Context, documentID string, changeType models.ChangeType, content *models.Content) (*models.QueuedChange, error) {
	if err := s.cache.CacheDocument(ctx, documentID, content); err != nil {
		return nil, fmt.Errorf("failed to cache document: %w", err)
	}

	change := &models.QueuedChange{
		ID:         uuid.New().String(),
		DocumentID: documentID,
		Type:       changeType,
		Content:    content.Clone(),
		Timestamp:  time.Now().UTC(),
	}

	if err := s.queue.QueueChange(ctx, change); err != nil {
		return nil, fmt.Errorf("failed to queue change: %w", err)
	}

	s.logger.Debug("Edit recorded",
		"document_id", documentID, "change_id", change.ID, "type", string(changeType))

	return change, nil
}

func (s *service) CacheDocument(ctx context.Context, documentID string, content *models.Content) error {
	return s.cache.CacheDocument(ctx, documentID, content)
}

func (s *service) AdoptServerDocument(ctx context.Context, documentID string, content *models.Content, version int64) error {
	if err := s.cache.CacheDocument(ctx, documentID, content); err != nil {
		return fmt.Errorf("failed to cache document: %w", err)
	}
	if err := s.cache.SetSyncedVersion(ctx, documentID, version); err != nil {
		return fmt.Errorf("failed to set synced version: %w", err)
	}
	return nil
}

func (s *service) GetCachedDocument(ctx context.Context, documentID string) (*models.CachedDocument, error) {
	return s.cache.GetCachedDocument(ctx, documentID)
}

func (s *service) ClearDocumentCache(ctx context.Context, documentID string) error {
	return s.cache.ClearDocumentCache(ctx, documentID)
}

func (s *service) GetPendingChanges(ctx context.Context, documentID string) ([]*models.QueuedChange, error) {
	return s.queue.GetPendingChanges(ctx, documentID)
}

func (s *service) GetPendingCount(ctx context.Context, documentID string) (int, error) {
	return s.queue.GetPendingCount(ctx, documentID)
}

func (s *service) HasPendingChanges(ctx context.Context, documentID string) (bool, error) {
	count, err := s.queue.GetPendingCount(ctx, documentID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsDocumentSynced истинно когда очередь документа пуста и нет
// открытого конфликта.
func (s *service) IsDocumentSynced(ctx context.Context, documentID string) (bool, error) {
	count, err := s.queue.GetPendingCount(ctx, documentID)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	_, err = s.conflicts.GetOpenConflict(ctx, documentID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrConflictNotFound) {
		return false, err
	}

	return true, nil
}

func (s *service) GetConflicts(ctx context.Context, documentID string) ([]*models.SyncConflict, error) {
	conflict, err := s.conflicts.GetOpenConflict(ctx, documentID)
	if err != nil {
		if errors.Is(err, storage.ErrConflictNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []*models.SyncConflict{conflict}, nil
}

func (s *service) GetConflict(ctx context.Context, conflictID string) (*models.SyncConflict, error) {
	return s.conflicts.GetConflictByID(ctx, conflictID)
}

// Sync выполняет один цикл reconnect-and-flush для документа:
// 1. Очередь извлекается в FIFO порядке и передается в syncFn целиком.
// 2. Успех без расхождения: очередь очищается, SyncedVersion обновляется.
// 3. Расхождение: детектор вызывается ровно один раз, очередь сохраняется,
//    статус остается syncing до разрешения конфликта.
// 4. Сетевая ошибка: RetryCount растет, очередь сохраняется, повтор цикла
//    отдается backoff-механизму Connection Monitor.
// Повторный вызов без изменений состояния - no-op; одновременно для одного
// документа выполняется не более одного цикла.
func (s *service) Sync(ctx context.Context, documentID string, fn SyncFunc) (*Result, error) {
	if !s.beginSync(documentID) {
		s.logger.Debug("Sync already in flight, coalescing", "document_id", documentID)
		return &Result{Skipped: true}, nil
	}
	defer s.endSync(documentID)

	// Документ с открытым конфликтом не воспроизводится до разрешения
	if open, err := s.conflicts.GetOpenConflict(ctx, documentID); err == nil {
		return &Result{Conflicts: []*models.SyncConflict{open}, Skipped: true}, nil
	} else if !errors.Is(err, storage.ErrConflictNotFound) {
		return nil, fmt.Errorf("failed to check open conflict: %w", err)
	}

	changes, err := s.queue.GetPendingChanges(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending changes: %w", err)
	}

	if len(changes) == 0 {
		return &Result{Success: true, Skipped: true}, nil
	}

	s.markSyncing()
	s.logger.Info("Replaying change queue",
		"document_id", documentID, "changes", len(changes))

	outcome, err := fn(ctx, changes)
	if err != nil {
		for _, change := range changes {
			if rerr := s.queue.IncrementRetry(ctx, change.ID); rerr != nil {
				s.logger.Warn("Failed to increment retry count",
					"change_id", change.ID, "error", rerr)
			}
		}

		s.markDegraded()
		return nil, fmt.Errorf("replay failed: %w", err)
	}

	if outcome.Conflict {
		conflict, derr := s.detectDivergence(ctx, documentID, outcome.ServerContent, outcome.Version)
		if derr != nil {
			s.markDegraded()
			return nil, derr
		}

		if conflict != nil {
			// Неподтвержденные локальные изменения остаются в очереди,
			// статус syncing держится до разрешения конфликта
			return &Result{Conflicts: []*models.SyncConflict{conflict}}, nil
		}

		// Содержимое совпало: локальная правка и есть источник
		// серверного состояния, расхождения нет
	}

	if !outcome.Success {
		// Сервер отклонил воспроизведение без расхождения содержимого:
		// очередь сохраняется и повторяется как при сетевой ошибке
		for _, change := range changes {
			if rerr := s.queue.IncrementRetry(ctx, change.ID); rerr != nil {
				s.logger.Warn("Failed to increment retry count",
					"change_id", change.ID, "error", rerr)
			}
		}

		s.markDegraded()
		return nil, fmt.Errorf("replay failed: %w", ErrReplayRejected)
	}

	for _, change := range changes {
		if rerr := s.queue.RemoveChange(ctx, change.ID); rerr != nil {
			s.logger.Warn("Failed to remove replayed change",
				"change_id", change.ID, "error", rerr)
		}
	}

	if err := s.cache.SetSyncedVersion(ctx, documentID, outcome.Version); err != nil {
		if !errors.Is(err, storage.ErrDocumentNotFound) {
			s.logger.Warn("Failed to update synced version",
				"document_id", documentID, "error", err)
		}
	}

	if err := s.metadata.SaveLastSyncTime(ctx, documentID, time.Now().UTC()); err != nil {
		s.logger.Warn("Failed to save last sync time",
			"document_id", documentID, "error", err)
	}

	s.markSynced()
	s.logger.Info("Synchronization completed",
		"document_id", documentID, "replayed", len(changes), "version", outcome.Version)

	return &Result{Success: true, Replayed: len(changes)}, nil
}

// detectDivergence сравнивает кэш с серверным содержимым ровно один раз
// за цикл синхронизации.
func (s *service) detectDivergence(ctx context.Context, documentID string, serverContent *models.Content, serverVersion int64) (*models.SyncConflict, error) {
	var local *models.Content

	cached, err := s.cache.GetCachedDocument(ctx, documentID)
	if err == nil {
		local = cached.Content
	} else if !errors.Is(err, storage.ErrDocumentNotFound) {
		return nil, fmt.Errorf("failed to read cached document: %w", err)
	}

	return s.detector.DetectConflict(ctx, documentID, local, serverContent, serverVersion)
}

// ResolveConflict принимает итоговое содержимое, выбранное или слитое
// пользователем. Кэш обновляется, SyncedVersion перебазируется на версию
// сервера, зафиксированную при обнаружении, а итоговое содержимое встает
// в очередь последним изменением - при воспроизведении оно перекрывает
// доконфликтные снимки. Оставшиеся в очереди изменения НЕ очищаются;
// для схождения по-прежнему требуется явный успешный Sync.
func (s *service) ResolveConflict(ctx context.Context, conflictID string, resolved *models.Content) error {
	conflict, err := s.conflicts.GetConflictByID(ctx, conflictID)
	if err != nil {
		return fmt.Errorf("failed to get conflict: %w", err)
	}

	if err := s.cache.CacheDocument(ctx, conflict.DocumentID, resolved); err != nil {
		return fmt.Errorf("failed to cache resolved content: %w", err)
	}

	// Без перебазирования следующий Sync ушел бы со старой базовой
	// версией и сервер отклонил бы его как новое расхождение
	if err := s.cache.SetSyncedVersion(ctx, conflict.DocumentID, conflict.ServerVersion); err != nil {
		return fmt.Errorf("failed to rebase synced version: %w", err)
	}

	change := &models.QueuedChange{
		ID:         uuid.New().String(),
		DocumentID: conflict.DocumentID,
		Type:       models.ChangeTypeEdit,
		Content:    resolved.Clone(),
		Timestamp:  time.Now().UTC(),
	}
	if err := s.queue.QueueChange(ctx, change); err != nil {
		return fmt.Errorf("failed to queue resolved content: %w", err)
	}

	if err := s.conflicts.DeleteConflict(ctx, conflictID); err != nil {
		return fmt.Errorf("failed to delete conflict: %w", err)
	}

	s.logger.Info("Conflict resolved",
		"conflict_id", conflictID,
		"document_id", conflict.DocumentID,
		"server_version", conflict.ServerVersion)

	return nil
}

// beginSync захватывает single-flight слот документа.
func (s *service) beginSync(documentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[documentID]; busy {
		return false
	}
	s.inFlight[documentID] = struct{}{}
	return true
}

func (s *service) endSync(documentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, documentID)
}

func (s *service) markSyncing() {
	if s.status != nil {
		s.status.MarkSyncing()
	}
}

func (s *service) markSynced() {
	if s.status != nil {
		s.status.MarkSynced()
	}
}

func (s *service) markDegraded() {
	if s.status != nil {
		s.status.MarkDegraded()
	}
}

package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
)

// Detector сравнивает локальное и серверное содержимое документа и
// фиксирует расхождение как конфликт. Обнаружение идемпотентно в пределах
// документа: пока конфликт не разрешен, повторный вызов возвращает
// существующую запись, а не создает вторую.
type Detector struct {
	conflicts storage.ConflictStore
	logger    *slog.Logger
}

// NewDetector creates a conflict detector backed by the given store
func NewDetector(conflicts storage.ConflictStore, logger *slog.Logger) *Detector {
	return &Detector{
		conflicts: conflicts,
		logger:    logger,
	}
}

// DetectConflict compares local against server content by deep value
// comparison. Returns nil when the contents agree (the local edit may itself
// be the source of the server state). Neither input is mutated; the conflict
// record captures deep copies of both snapshots and the server version they
// were compared against, so resolution can rebase onto it.
func (d *Detector) DetectConflict(ctx context.Context, documentID string, local, server *models.Content, serverVersion int64) (*models.SyncConflict, error) {
	// Открытый конфликт по документу возвращаем копией, чтобы вызывающий
	// не мог изменить сохраненную запись через разделяемый указатель
	existing, err := d.conflicts.GetOpenConflict(ctx, documentID)
	if err == nil {
		d.logger.Debug("Conflict already open for document",
			"document_id", documentID, "conflict_id", existing.ID)
		return existing.Clone(), nil
	}
	if !errors.Is(err, storage.ErrConflictNotFound) {
		return nil, fmt.Errorf("failed to check open conflict: %w", err)
	}

	if local.Equal(server) {
		return nil, nil
	}

	conflict := &models.SyncConflict{
		ID:            uuid.New().String(),
		DocumentID:    documentID,
		LocalContent:  local.Clone(),
		ServerContent: server.Clone(),
		DetectedAt:    time.Now().UTC(),
		ServerVersion: serverVersion,
	}

	if err := d.conflicts.SaveConflict(ctx, conflict); err != nil {
		return nil, fmt.Errorf("failed to save conflict: %w", err)
	}

	d.logger.Info("Sync conflict detected",
		"document_id", documentID, "conflict_id", conflict.ID)

	return conflict, nil
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bidworks/docsync/internal/server/storage"
	"github.com/bidworks/docsync/internal/validation"
	"github.com/bidworks/docsync/pkg/api"
)

// DocumentStorage определяет интерфейс для работы с документами
type DocumentStorage interface {
	GetDocument(ctx context.Context, id string) (*storage.Document, error)
	ApplyChanges(ctx context.Context, id, ownerID string, baseVersion int64, contents [][]byte) (*storage.Document, bool, error)
}

// UpdateNotifier получает уведомления о примененных изменениях документов.
// Реализуется realtime-хабом; nil допустим.
type UpdateNotifier interface {
	NotifyDocumentUpdated(documentID string, version int64)
}

// SyncHandler handles document synchronization requests
type SyncHandler struct {
	logger   *slog.Logger
	storage  DocumentStorage
	notifier UpdateNotifier
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, storage DocumentStorage, notifier UpdateNotifier) *SyncHandler {
	return &SyncHandler{
		logger:   logger,
		storage:  storage,
		notifier: notifier,
	}
}

// HandleGetDocument обрабатывает GET /api/v1/documents/{id}
// Возвращает текущее серверное состояние документа
func (h *SyncHandler) HandleGetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documentID := r.PathValue("id")
	if err := validation.ValidateDocumentID(documentID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	doc, err := h.storage.GetDocument(ctx, documentID)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}

		h.logger.Error("Failed to get document", "document_id", documentID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, documentToResponse(doc))
}

// HandleSync обрабатывает POST /api/v1/documents/{id}/sync
// Воспроизводит упорядоченный список изменений клиента. При совпадении
// базовой версии изменения применяются по порядку; при расхождении ответ
// несет текущее серверное содержимое, и клиент разрешает конфликт у себя.
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// user_id установлен AuthMiddleware
	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	documentID := r.PathValue("id")
	if err := validation.ValidateDocumentID(documentID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	var req api.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Changes) == 0 {
		writeError(w, http.StatusBadRequest, "changes list is empty")
		return
	}

	// Порядок contents повторяет порядок изменений в запросе
	contents := make([][]byte, 0, len(req.Changes))
	for _, change := range req.Changes {
		if change.DocumentID != documentID {
			writeError(w, http.StatusBadRequest, "change document id mismatch")
			return
		}
		contents = append(contents, change.Content)
	}

	h.logger.Info("Sync request",
		"document_id", documentID,
		"user_id", userID,
		"client_id", req.ClientID,
		"base_version", req.BaseVersion,
		"changes", len(req.Changes))

	doc, applied, err := h.storage.ApplyChanges(ctx, documentID, userID, req.BaseVersion, contents)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}

		h.logger.Error("Failed to apply changes", "document_id", documentID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := api.SyncResponse{
		Success: true,
		Version: doc.Version,
	}

	if applied && h.notifier != nil {
		h.notifier.NotifyDocumentUpdated(documentID, doc.Version)
	}

	if !applied {
		// Расхождение версий: изменения не применены, отдаем серверное
		// содержимое для разрешения конфликта на клиенте
		resp.Conflict = true
		resp.ServerContent = json.RawMessage(doc.Content)

		h.logger.Info("Sync diverged",
			"document_id", documentID,
			"base_version", req.BaseVersion,
			"server_version", doc.Version)
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// documentToResponse конвертирует документ в API формат
func documentToResponse(doc *storage.Document) api.DocumentResponse {
	return api.DocumentResponse{
		ID:        doc.ID,
		Content:   json.RawMessage(doc.Content),
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
	}
}

// writeJSON отправляет успешный JSON ответ
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeError отправляет JSON ответ с ошибкой
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: message})
}

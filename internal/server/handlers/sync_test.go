package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidworks/docsync/internal/server/storage"
	"github.com/bidworks/docsync/pkg/api"
)

// documentStorageStub минимальная реализация DocumentStorage для тестов
type documentStorageStub struct {
	getFunc   func(ctx context.Context, id string) (*storage.Document, error)
	applyFunc func(ctx context.Context, id, ownerID string, baseVersion int64, contents [][]byte) (*storage.Document, bool, error)
}

func (s *documentStorageStub) GetDocument(ctx context.Context, id string) (*storage.Document, error) {
	return s.getFunc(ctx, id)
}

func (s *documentStorageStub) ApplyChanges(ctx context.Context, id, ownerID string, baseVersion int64, contents [][]byte) (*storage.Document, bool, error) {
	return s.applyFunc(ctx, id, ownerID, baseVersion, contents)
}

// notifierStub фиксирует уведомления realtime-хаба
type notifierStub struct {
	documentIDs []string
	versions    []int64
}

func (n *notifierStub) NotifyDocumentUpdated(documentID string, version int64) {
	n.documentIDs = append(n.documentIDs, documentID)
	n.versions = append(n.versions, version)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func syncRequest(t *testing.T, documentID string, body api.SyncRequest) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+documentID+"/sync", bytes.NewReader(payload))
	req.SetPathValue("id", documentID)
	req = req.WithContext(context.WithValue(req.Context(), UserIDKey, "user-1"))
	return req
}

func TestHandleGetDocument(t *testing.T) {
	store := &documentStorageStub{
		getFunc: func(ctx context.Context, id string) (*storage.Document, error) {
			require.Equal(t, "doc-1", id)
			return &storage.Document{
				ID:        "doc-1",
				OwnerID:   "user-1",
				Content:   []byte(`{"type":"doc","text":"server state"}`),
				Version:   4,
				UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}

	handler := NewSyncHandler(testLogger(), store, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/doc-1", nil)
	req.SetPathValue("id", "doc-1")
	rec := httptest.NewRecorder()

	handler.HandleGetDocument(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.DocumentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "doc-1", resp.ID)
	assert.Equal(t, int64(4), resp.Version)
	assert.JSONEq(t, `{"type":"doc","text":"server state"}`, string(resp.Content))
}

func TestHandleGetDocument_NotFound(t *testing.T) {
	store := &documentStorageStub{
		getFunc: func(ctx context.Context, id string) (*storage.Document, error) {
			return nil, storage.ErrDocumentNotFound
		},
	}

	handler := NewSyncHandler(testLogger(), store, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	handler.HandleGetDocument(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetDocument_InvalidID(t *testing.T) {
	handler := NewSyncHandler(testLogger(), &documentStorageStub{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/bad..id", nil)
	req.SetPathValue("id", "bad..id")
	rec := httptest.NewRecorder()

	handler.HandleGetDocument(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSync_Applied(t *testing.T) {
	var gotOwner string
	var gotBase int64
	var gotContents [][]byte

	store := &documentStorageStub{
		applyFunc: func(ctx context.Context, id, ownerID string, baseVersion int64, contents [][]byte) (*storage.Document, bool, error) {
			gotOwner = ownerID
			gotBase = baseVersion
			gotContents = contents
			return &storage.Document{ID: id, Version: baseVersion + int64(len(contents))}, true, nil
		},
	}
	notifier := &notifierStub{}
	handler := NewSyncHandler(testLogger(), store, notifier)

	req := syncRequest(t, "doc-1", api.SyncRequest{
		ClientID:    "client-1",
		BaseVersion: 2,
		Changes: []api.Change{
			{ID: "change-1", DocumentID: "doc-1", ChangeType: "edit", Content: json.RawMessage(`{"text":"a"}`)},
			{ID: "change-2", DocumentID: "doc-1", ChangeType: "edit", Content: json.RawMessage(`{"text":"b"}`)},
		},
	})
	rec := httptest.NewRecorder()

	handler.HandleSync(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SyncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Conflict)
	assert.Equal(t, int64(4), resp.Version)
	assert.Empty(t, resp.ServerContent)

	// В хранилище уходит владелец из контекста и содержимое по порядку
	assert.Equal(t, "user-1", gotOwner)
	assert.Equal(t, int64(2), gotBase)
	require.Len(t, gotContents, 2)
	assert.JSONEq(t, `{"text":"a"}`, string(gotContents[0]))
	assert.JSONEq(t, `{"text":"b"}`, string(gotContents[1]))

	// Хаб уведомлен о новой версии
	assert.Equal(t, []string{"doc-1"}, notifier.documentIDs)
	assert.Equal(t, []int64{4}, notifier.versions)
}

func TestHandleSync_Diverged(t *testing.T) {
	store := &documentStorageStub{
		applyFunc: func(ctx context.Context, id, ownerID string, baseVersion int64, contents [][]byte) (*storage.Document, bool, error) {
			return &storage.Document{
				ID:      id,
				Version: 9,
				Content: []byte(`{"type":"doc","text":"newer server text"}`),
			}, false, nil
		},
	}
	notifier := &notifierStub{}
	handler := NewSyncHandler(testLogger(), store, notifier)

	req := syncRequest(t, "doc-1", api.SyncRequest{
		ClientID:    "client-1",
		BaseVersion: 5,
		Changes: []api.Change{
			{ID: "change-1", DocumentID: "doc-1", ChangeType: "edit", Content: json.RawMessage(`{"text":"local"}`)},
		},
	})
	rec := httptest.NewRecorder()

	handler.HandleSync(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SyncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Conflict)
	assert.Equal(t, int64(9), resp.Version)
	assert.JSONEq(t, `{"type":"doc","text":"newer server text"}`, string(resp.ServerContent))

	// При отклоненном воспроизведении уведомление не рассылается
	assert.Empty(t, notifier.documentIDs)
}

func TestHandleSync_EmptyChanges(t *testing.T) {
	handler := NewSyncHandler(testLogger(), &documentStorageStub{}, nil)

	req := syncRequest(t, "doc-1", api.SyncRequest{ClientID: "client-1", BaseVersion: 0})
	rec := httptest.NewRecorder()

	handler.HandleSync(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSync_DocumentIDMismatch(t *testing.T) {
	handler := NewSyncHandler(testLogger(), &documentStorageStub{}, nil)

	req := syncRequest(t, "doc-1", api.SyncRequest{
		ClientID: "client-1",
		Changes: []api.Change{
			{ID: "change-1", DocumentID: "doc-2", ChangeType: "edit", Content: json.RawMessage(`{}`)},
		},
	})
	rec := httptest.NewRecorder()

	handler.HandleSync(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSync_Unauthenticated(t *testing.T) {
	handler := NewSyncHandler(testLogger(), &documentStorageStub{}, nil)

	payload, err := json.Marshal(api.SyncRequest{ClientID: "client-1"})
	require.NoError(t, err)

	// Без user_id в контексте (AuthMiddleware не отработал)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/doc-1/sync", bytes.NewReader(payload))
	req.SetPathValue("id", "doc-1")
	rec := httptest.NewRecorder()

	handler.HandleSync(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleSync_InvalidBody(t *testing.T) {
	handler := NewSyncHandler(testLogger(), &documentStorageStub{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/doc-1/sync", bytes.NewReader([]byte("not json")))
	req.SetPathValue("id", "doc-1")
	req = req.WithContext(context.WithValue(req.Context(), UserIDKey, "user-1"))
	rec := httptest.NewRecorder()

	handler.HandleSync(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

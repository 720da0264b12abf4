package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	syncsvc "github.com/bidworks/docsync/internal/client/sync"
	"github.com/bidworks/docsync/internal/models"
	"github.com/bidworks/docsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс для взаимодействия с сервером синхронизации
type ClientAPI interface {
	// GetDocument возвращает документ, как его видит сервер
	GetDocument(ctx context.Context, accessToken, documentID string) (*api.DocumentResponse, error)

	// Sync воспроизводит упорядоченный список изменений на сервере
	Sync(ctx context.Context, accessToken, documentID string, req api.SyncRequest) (*api.SyncResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetDocument получает текущее серверное состояние документа
func (c *Client) GetDocument(ctx context.Context, accessToken, documentID string) (*api.DocumentResponse, error) {
	var resp api.DocumentResponse
	path := fmt.Sprintf("/api/v1/documents/%s", documentID)
	if err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get document request failed: %w", err)
	}
	return &resp, nil
}

// Sync отправляет очередь изменений на воспроизведение
func (c *Client) Sync(ctx context.Context, accessToken, documentID string, req api.SyncRequest) (*api.SyncResponse, error) {
	var resp api.SyncResponse
	path := fmt.Sprintf("/api/v1/documents/%s/sync", documentID)
	if err := c.doRequest(ctx, http.MethodPost, path, accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}
	return &resp, nil
}

// SyncFunc адаптирует серверный endpoint к точке внедрения оркестратора.
// baseVersion - версия документа, подтвержденная сервером ранее (из кэша);
// clientID - постоянный идентификатор этой инсталляции клиента.
func (c *Client) SyncFunc(accessToken, documentID, clientID string, baseVersion int64) syncsvc.SyncFunc {
	return func(ctx context.Context, changes []*models.QueuedChange) (*syncsvc.Outcome, error) {
		req := api.SyncRequest{
			ClientID:    clientID,
			BaseVersion: baseVersion,
			Changes:     make([]api.Change, 0, len(changes)),
		}

		for _, change := range changes {
			content, err := json.Marshal(change.Content)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal change content: %w", err)
			}

			req.Changes = append(req.Changes, api.Change{
				ID:         change.ID,
				DocumentID: change.DocumentID,
				ChangeType: string(change.Type),
				Content:    content,
				Timestamp:  change.Timestamp,
			})
		}

		resp, err := c.Sync(ctx, accessToken, documentID, req)
		if err != nil {
			return nil, err
		}

		outcome := &syncsvc.Outcome{
			Success:  resp.Success,
			Conflict: resp.Conflict,
			Version:  resp.Version,
		}

		if len(resp.ServerContent) > 0 {
			serverContent := &models.Content{}
			if err := json.Unmarshal(resp.ServerContent, serverContent); err != nil {
				return nil, fmt.Errorf("failed to decode server content: %w", err)
			}
			outcome.ServerContent = serverContent
		}

		return outcome, nil
	}
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

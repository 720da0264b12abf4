package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
)

// requireAuth возвращает сохраненные учетные данные или понятную ошибку,
// если пользователь еще не выполнил login.
func (c *Cli) requireAuth(ctx context.Context) (*storage.AuthData, error) {
	auth, err := c.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'docsync login' first")
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	return auth, nil
}

// ensureClientID возвращает постоянный идентификатор этой инсталляции,
// создавая его при первом обращении.
func (c *Cli) ensureClientID(ctx context.Context) (string, error) {
	id, err := c.metadata.GetClientID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get client id: %w", err)
	}
	if id != "" {
		return id, nil
	}

	id = uuid.New().String()
	if err := c.metadata.SaveClientID(ctx, id); err != nil {
		return "", fmt.Errorf("failed to save client id: %w", err)
	}
	return id, nil
}

// readContent читает содержимое документа из файла ("-" означает stdin).
func readContent(path string) (*models.Content, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read content file: %w", err)
		}
	}

	content := &models.Content{}
	if err := json.Unmarshal(data, content); err != nil {
		return nil, fmt.Errorf("invalid document content: %w", err)
	}
	return content, nil
}

// printContent выводит содержимое документа с отступами.
func (c *Cli) printContent(content *models.Content) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		c.io.Printf("  <unprintable content: %v>\n", err)
		return
	}
	c.io.Println(string(data))
}

// realtimeURL строит адрес realtime-сервиса из базового URL сервера.
func realtimeURL(serverURL string) string {
	url := serverURL
	switch {
	case strings.HasPrefix(url, "https://"):
		url = "wss://" + strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		url = "ws://" + strings.TrimPrefix(url, "http://")
	}
	return strings.TrimRight(url, "/") + "/api/v1/realtime"
}

package api

import (
	"encoding/json"
	"time"
)

// Change представляет одно изменение документа для воспроизведения на сервере.
// Порядок изменений в запросе значим: сервер применяет их строго по списку.
type Change struct {
	Content    json.RawMessage `json:"content"`     // содержимое документа после правки
	Timestamp  time.Time       `json:"timestamp"`   // время создания изменения на клиенте
	ID         string          `json:"id"`          // идентификатор изменения (UUID)
	DocumentID string          `json:"document_id"` // идентификатор документа
	ChangeType string          `json:"change_type"` // edit | metadata | other
}

// SyncRequest представляет запрос на воспроизведение очереди изменений.
// BaseVersion - версия документа, которую клиент считает текущей на сервере.
type SyncRequest struct {
	Changes     []Change `json:"changes"`
	ClientID    string   `json:"client_id"`
	BaseVersion int64    `json:"base_version"`
}

// SyncResponse представляет ответ сервера на воспроизведение.
// При расхождении версий Conflict = true, а ServerContent содержит
// актуальное серверное содержимое для разрешения конфликта на клиенте.
type SyncResponse struct {
	ServerContent json.RawMessage `json:"server_content,omitempty"` // серверное содержимое при расхождении
	Version       int64           `json:"version"`                  // текущая версия документа на сервере
	Success       bool            `json:"success"`                  // запрос обработан без ошибок
	Conflict      bool            `json:"conflict"`                 // версии разошлись, изменения не применены
}

// DocumentResponse представляет документ, как его видит сервер.
type DocumentResponse struct {
	Content   json.RawMessage `json:"content"`
	UpdatedAt time.Time       `json:"updated_at"`
	ID        string          `json:"id"`
	Version   int64           `json:"version"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

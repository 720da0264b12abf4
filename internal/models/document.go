package models

import "time"

// ConnectionStatus представляет состояние соединения с сервером.
// Единственное процесс-широкое значение, управляется Connection Monitor.
type ConnectionStatus string

const (
	// StatusConnected соединение установлено, канал подписан
	StatusConnected ConnectionStatus = "connected"
	// StatusDisconnected соединения нет (начальное состояние)
	StatusDisconnected ConnectionStatus = "disconnected"
	// StatusReconnecting запланирована или идет попытка переподключения
	StatusReconnecting ConnectionStatus = "reconnecting"
	// StatusSyncing идет воспроизведение очереди изменений на сервере
	StatusSyncing ConnectionStatus = "syncing"
)

// ChangeType тип локального изменения документа.
type ChangeType string

const (
	ChangeTypeEdit     ChangeType = "edit"     // правка содержимого
	ChangeTypeMetadata ChangeType = "metadata" // изменение метаданных
	ChangeTypeOther    ChangeType = "other"    // прочее
)

// CachedDocument представляет последнее известное состояние документа
// в локальном durable-кэше. На документ существует не более одной записи,
// запись перезаписывается при каждом локальном сохранении (last-writer-wins).
type CachedDocument struct {
	Content       *Content  `json:"content"`        // Content последнее известное содержимое
	CachedAt      time.Time `json:"cached_at"`      // CachedAt время локального сохранения
	DocumentID    string    `json:"document_id"`    // DocumentID идентификатор документа
	SyncedVersion int64     `json:"synced_version"` // SyncedVersion версия, подтвержденная сервером
}

// QueuedChange представляет локальное изменение, еще не подтвержденное
// сервером. Запись неизменяема после создания, кроме RetryCount, который
// растет при неудачных попытках воспроизведения. Очередь строго FIFO
// в пределах документа.
type QueuedChange struct {
	Content    *Content   `json:"content"`     // Content содержимое документа после правки
	Timestamp  time.Time  `json:"timestamp"`   // Timestamp время создания изменения
	ID         string     `json:"id"`          // ID уникальный идентификатор (UUID)
	DocumentID string     `json:"document_id"` // DocumentID документ, к которому относится правка
	Type       ChangeType `json:"type"`        // Type тип изменения
	RetryCount int        `json:"retry_count"` // RetryCount число неудачных воспроизведений
}

// SyncConflict представляет расхождение локального и серверного состояния,
// требующее явного решения пользователя. На документ существует не более
// одного открытого конфликта; запись живет до вызова ResolveConflict.
type SyncConflict struct {
	LocalContent  *Content  `json:"local_content"`  // LocalContent локальный снимок на момент обнаружения
	ServerContent *Content  `json:"server_content"` // ServerContent серверный снимок на момент обнаружения
	DetectedAt    time.Time `json:"detected_at"`    // DetectedAt время обнаружения
	ID            string    `json:"id"`             // ID уникальный идентификатор конфликта (UUID)
	DocumentID    string    `json:"document_id"`    // DocumentID документ с расхождением
	ServerVersion int64     `json:"server_version"` // ServerVersion версия сервера на момент обнаружения
}

// Clone создает глубокую копию конфликта.
func (c *SyncConflict) Clone() *SyncConflict {
	return &SyncConflict{
		ID:            c.ID,
		DocumentID:    c.DocumentID,
		LocalContent:  c.LocalContent.Clone(),
		ServerContent: c.ServerContent.Clone(),
		DetectedAt:    c.DetectedAt,
		ServerVersion: c.ServerVersion,
	}
}

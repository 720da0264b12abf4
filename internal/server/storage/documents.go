package storage

import (
	"context"
	"time"
)

// Document представляет авторитетное серверное состояние документа.
// Content хранится как непрозрачный JSON; Version растет на единицу
// с каждым примененным изменением.
type Document struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	OwnerID   string
	Content   []byte
	Version   int64
}

// DocumentStorage определяет интерфейс серверного хранилища документов
type DocumentStorage interface {
	// GetDocument возвращает документ по ID
	// Возвращает ErrDocumentNotFound если документа нет
	GetDocument(ctx context.Context, id string) (*Document, error)

	// ApplyChanges атомарно применяет упорядоченный список содержимых
	// к документу, если baseVersion совпадает с текущей версией.
	// Несуществующий документ создается при baseVersion == 0.
	// При расхождении версий возвращает текущий документ и false,
	// не применяя ничего.
	ApplyChanges(ctx context.Context, id, ownerID string, baseVersion int64, contents [][]byte) (*Document, bool, error)

	// SaveDocument создает или перезаписывает документ целиком
	// (административные операции и посев тестовых данных)
	SaveDocument(ctx context.Context, doc *Document) error
}

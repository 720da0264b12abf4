package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bidworks/docsync/internal/server/storage"
)

// GetDocument возвращает документ по ID
func (s *Storage) GetDocument(ctx context.Context, id string) (*storage.Document, error) {
	query := `
		SELECT id, owner_id, content, version, created_at, updated_at
		FROM documents
		WHERE id = ?
	`

	return scanDocument(s.db.QueryRowContext(ctx, query, id))
}

// ApplyChanges атомарно воспроизводит упорядоченный список содержимых.
// Optimistic concurrency: применение выполняется только при совпадении
// baseVersion с текущей версией, иначе возвращается актуальный документ
// и признак расхождения.
func (s *Storage) ApplyChanges(ctx context.Context, id, ownerID string, baseVersion int64, contents [][]byte) (*storage.Document, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		SELECT id, owner_id, content, version, created_at, updated_at
		FROM documents
		WHERE id = ?
	`

	doc, err := scanDocument(tx.QueryRowContext(ctx, query, id))
	now := time.Now().UTC()

	switch {
	case errors.Is(err, storage.ErrDocumentNotFound):
		// Новый документ создается только от нулевой базовой версии
		if baseVersion != 0 {
			return nil, false, storage.ErrDocumentNotFound
		}

		doc = &storage.Document{
			ID:        id,
			OwnerID:   ownerID,
			Content:   []byte("{}"),
			CreatedAt: now,
		}

		insert := `
			INSERT INTO documents (id, owner_id, content, version, created_at, updated_at)
			VALUES (?, ?, ?, 0, ?, ?)
		`
		if _, err := tx.ExecContext(ctx, insert, id, ownerID, string(doc.Content), now.Unix(), now.Unix()); err != nil {
			return nil, false, fmt.Errorf("failed to create document: %w", err)
		}

	case err != nil:
		return nil, false, err

	case doc.Version != baseVersion:
		// Версии разошлись - ничего не применяем
		return doc, false, nil
	}

	// Применяем изменения по порядку: каждое увеличивает версию
	version := doc.Version
	content := doc.Content
	for _, c := range contents {
		version++
		content = c
	}

	update := `
		UPDATE documents
		SET content = ?, version = ?, updated_at = ?
		WHERE id = ?
	`
	if _, err := tx.ExecContext(ctx, update, string(content), version, now.Unix(), id); err != nil {
		return nil, false, fmt.Errorf("failed to update document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	doc.Content = content
	doc.Version = version
	doc.UpdatedAt = now

	return doc, true, nil
}

// SaveDocument создает или перезаписывает документ целиком
func (s *Storage) SaveDocument(ctx context.Context, doc *storage.Document) error {
	query := `
		INSERT INTO documents (id, owner_id, content, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			content = excluded.content,
			version = excluded.version,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		doc.ID,
		doc.OwnerID,
		string(doc.Content),
		doc.Version,
		doc.CreatedAt.Unix(),
		doc.UpdatedAt.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

// scanDocument читает одну строку документа
func scanDocument(row *sql.Row) (*storage.Document, error) {
	var doc storage.Document
	var content string
	var createdAt, updatedAt int64

	err := row.Scan(&doc.ID, &doc.OwnerID, &content, &doc.Version, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	doc.Content = []byte(content)
	doc.CreatedAt = time.Unix(createdAt, 0).UTC()
	doc.UpdatedAt = time.Unix(updatedAt, 0).UTC()

	return &doc, nil
}

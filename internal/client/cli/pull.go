package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bidworks/docsync/internal/models"
	"github.com/bidworks/docsync/internal/validation"
)

func (c *Cli) runPull(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: docsync pull <document-id>")
	}

	documentID := args[0]
	if err := validation.ValidateDocumentID(documentID); err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}

	auth, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	// Незавершенная локальная работа важнее свежей серверной копии
	hasPending, err := c.syncService.HasPendingChanges(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to check pending changes: %w", err)
	}
	if hasPending {
		return fmt.Errorf("document has pending local changes; run 'docsync sync' first")
	}

	doc, err := c.apiClient.GetDocument(ctx, auth.AccessToken, documentID)
	if err != nil {
		return err
	}

	content := &models.Content{}
	if len(doc.Content) > 0 {
		if err := json.Unmarshal(doc.Content, content); err != nil {
			return fmt.Errorf("failed to decode server content: %w", err)
		}
	}

	if err := c.syncService.AdoptServerDocument(ctx, documentID, content, doc.Version); err != nil {
		return fmt.Errorf("failed to adopt server document: %w", err)
	}

	c.io.Printf("✓ Pulled %s at version %d\n", documentID, doc.Version)
	return nil
}

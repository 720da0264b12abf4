package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/validation"
)

func (c *Cli) runSync(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: docsync sync <document-id>")
	}

	documentID := args[0]
	if err := validation.ValidateDocumentID(documentID); err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}

	auth, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	clientID, err := c.ensureClientID(ctx)
	if err != nil {
		return err
	}

	// Базовая версия - последняя, подтвержденная сервером для этого документа
	var baseVersion int64
	cached, err := c.syncService.GetCachedDocument(ctx, documentID)
	switch {
	case errors.Is(err, storage.ErrDocumentNotFound):
		baseVersion = 0
	case err != nil:
		return fmt.Errorf("failed to get cached document: %w", err)
	default:
		baseVersion = cached.SyncedVersion
	}

	c.io.Println("Starting synchronization with server...")

	fn := c.apiClient.SyncFunc(auth.AccessToken, documentID, clientID, baseVersion)
	result, err := c.syncService.Sync(ctx, documentID, fn)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	switch {
	case len(result.Conflicts) > 0:
		c.io.Println("⚠️  Synchronization stopped: document diverged from server")
		for _, conflict := range result.Conflicts {
			c.io.Printf("Conflict: %s (detected %s)\n",
				conflict.ID, conflict.DetectedAt.Format("2006-01-02 15:04:05"))
		}
		c.io.Println()
		c.io.Println("Run 'docsync conflicts' to inspect both versions,")
		c.io.Println("then 'docsync resolve' to pick the final content.")
	case result.Skipped:
		c.io.Println("Nothing to do: no pending changes.")
	default:
		c.io.Println("✓ Synchronization completed successfully!")
		c.io.Printf("Replayed changes: %d\n", result.Replayed)
	}

	return nil
}

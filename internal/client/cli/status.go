package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/validation"
)

func (c *Cli) runStatus(ctx context.Context, args []string) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	auth, err := c.authStore.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'docsync login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to get auth data: %w", err)
	default:
		c.io.Println("Status: Authenticated")
		c.io.Printf("User ID: %s\n", auth.UserID)
		c.io.Printf("Server:  %s\n", auth.ServerURL)
	}

	if len(args) == 0 {
		return nil
	}

	documentID := args[0]
	if err := validation.ValidateDocumentID(documentID); err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}

	c.io.Println()
	c.io.Printf("Document: %s\n", documentID)

	cached, err := c.syncService.GetCachedDocument(ctx, documentID)
	switch {
	case errors.Is(err, storage.ErrDocumentNotFound):
		c.io.Println("Cache:    empty")
	case err != nil:
		return fmt.Errorf("failed to get cached document: %w", err)
	default:
		c.io.Printf("Cache:    version %d, cached at %s\n",
			cached.SyncedVersion, cached.CachedAt.Format(time.RFC3339))
	}

	lastSync, err := c.metadata.GetLastSyncTime(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to get last sync time: %w", err)
	}
	if lastSync.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s\n", lastSync.Format(time.RFC3339))
	}

	pendingCount, err := c.syncService.GetPendingCount(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to get pending count: %w", err)
	}

	conflicts, err := c.syncService.GetConflicts(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to get conflicts: %w", err)
	}

	c.io.Println()
	switch {
	case len(conflicts) > 0:
		c.io.Printf("⚠️  Open conflict: %s\n", conflicts[0].ID)
		c.io.Println("Run 'docsync resolve' before syncing again.")
	case pendingCount > 0:
		c.io.Printf("⚠️  Pending sync: %d change(s) waiting to be replayed\n", pendingCount)
		c.io.Println("Run 'docsync sync' to synchronize with server.")
	default:
		c.io.Println("✓ Document synchronized with server")
	}

	return nil
}

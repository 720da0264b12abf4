package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
)

func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: docsync resolve <conflict-id> local|server|<file.json>")
	}

	conflictID := args[0]
	conflict, err := c.syncService.GetConflict(ctx, conflictID)
	if err != nil {
		if errors.Is(err, storage.ErrConflictNotFound) {
			return fmt.Errorf("conflict %s not found", conflictID)
		}
		return fmt.Errorf("failed to get conflict: %w", err)
	}

	var resolved *models.Content
	switch args[1] {
	case "local":
		resolved = conflict.LocalContent
	case "server":
		resolved = conflict.ServerContent
	default:
		resolved, err = readContent(args[1])
		if err != nil {
			return err
		}
	}

	if err := c.syncService.ResolveConflict(ctx, conflictID, resolved); err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	c.io.Println("✓ Conflict resolved.")

	pendingCount, err := c.syncService.GetPendingCount(ctx, conflict.DocumentID)
	if err != nil {
		return fmt.Errorf("failed to get pending count: %w", err)
	}
	if pendingCount > 0 {
		c.io.Printf("Pending changes: %d\n", pendingCount)
		c.io.Println("Run 'docsync sync' to replay them to the server.")
	}

	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/bidworks/docsync/internal/models"
	"github.com/bidworks/docsync/internal/validation"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: docsync edit <document-id> <content-file>")
	}

	documentID := args[0]
	if err := validation.ValidateDocumentID(documentID); err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}

	content, err := readContent(args[1])
	if err != nil {
		return err
	}

	change, err := c.syncService.RecordEdit(ctx, documentID, models.ChangeTypeEdit, content)
	if err != nil {
		return fmt.Errorf("failed to record edit: %w", err)
	}

	pendingCount, err := c.syncService.GetPendingCount(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to get pending count: %w", err)
	}

	c.io.Printf("✓ Edit recorded: %s\n", change.ID)
	c.io.Printf("Pending changes: %d\n", pendingCount)
	c.io.Println("Run 'docsync sync' to replay them to the server.")

	return nil
}

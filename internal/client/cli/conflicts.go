package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bidworks/docsync/internal/validation"
)

func (c *Cli) runConflicts(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: docsync conflicts <document-id>")
	}

	documentID := args[0]
	if err := validation.ValidateDocumentID(documentID); err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}

	conflicts, err := c.syncService.GetConflicts(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to get conflicts: %w", err)
	}

	if len(conflicts) == 0 {
		c.io.Println("No open conflicts.")
		return nil
	}

	for _, conflict := range conflicts {
		c.io.Printf("Conflict: %s\n", conflict.ID)
		c.io.Printf("Document: %s\n", conflict.DocumentID)
		c.io.Printf("Detected: %s\n", conflict.DetectedAt.Format(time.RFC3339))
		c.io.Println()
		c.io.Println("--- Local version ---")
		c.printContent(conflict.LocalContent)
		c.io.Println()
		c.io.Println("--- Server version ---")
		c.printContent(conflict.ServerContent)
		c.io.Println()
	}

	c.io.Println("Resolve with 'docsync resolve <conflict-id> local|server|<file.json>'.")
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bidworks/docsync/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authStore.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Not authenticated, nothing to do.")
			return nil
		}
		return fmt.Errorf("failed to delete auth data: %w", err)
	}

	c.io.Println("✓ Logged out. Local cache and change queues are kept.")
	return nil
}

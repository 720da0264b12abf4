package cli

import (
	"context"
	"fmt"

	"github.com/bidworks/docsync/internal/client/storage"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	userID, err := c.io.ReadInput("User ID: ")
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	if userID == "" {
		return fmt.Errorf("user id cannot be empty")
	}

	// Токен выдает сервер (или портал рядом с ним); клиент его только хранит
	accessToken, err := c.io.ReadSecret("Access token: ")
	if err != nil {
		return fmt.Errorf("failed to read access token: %w", err)
	}
	if accessToken == "" {
		return fmt.Errorf("access token cannot be empty")
	}

	authData := &storage.AuthData{
		ServerURL:   c.serverURL,
		UserID:      userID,
		AccessToken: accessToken,
	}

	if err := c.authStore.SaveAuth(ctx, authData); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Credentials saved!")
	c.io.Printf("User ID: %s\n", userID)
	c.io.Printf("Server:  %s\n", c.serverURL)

	return nil
}

package storage

import "context"

// AuthStorage defines interface for storing authentication data on client.
// Tokens are stored as-is: minting and validating them is the server's
// concern, the client only presents them.
type AuthStorage interface {
	// SaveAuth stores authentication data
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error
}

// AuthData represents authentication information in storage
type AuthData struct {
	ServerURL   string `json:"server_url"`   // базовый URL сервера синхронизации
	UserID      string `json:"user_id"`      // идентификатор пользователя
	AccessToken string `json:"access_token"` // bearer токен для API
}

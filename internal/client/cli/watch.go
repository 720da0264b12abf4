package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bidworks/docsync/internal/client/conn"
	"github.com/bidworks/docsync/internal/client/realtime"
	"github.com/bidworks/docsync/internal/client/storage"
	"github.com/bidworks/docsync/internal/models"
	"github.com/bidworks/docsync/internal/validation"
)

const watchPollInterval = 30 * time.Second

func (c *Cli) runWatch(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: docsync watch <document-id>")
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

	transport := realtime.NewClient(realtimeURL(auth.ServerURL), c.logger)
	monitor := conn.NewMonitor(transport, "documents:"+documentID, watchPollInterval, c.logger)
	defer func() {
		_ = monitor.Close()
	}()

	// Смены статуса доставляются синхронно; реакция уходит в основной цикл,
	// чтобы не блокировать рассылку долгим сетевым вызовом. Непрочитанный
	// статус вытесняется свежим - терять connected нельзя, он запускает
	// синхронизацию
	statusCh := make(chan models.ConnectionStatus, 1)
	unsubscribe := monitor.Subscribe(func(status models.ConnectionStatus) {
		pushLatestStatus(statusCh, status)
	})
	defer unsubscribe()

	monitor.Start(ctx)

	c.io.Printf("Watching %s (Ctrl+C to stop)\n", documentID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case status := <-statusCh:
			c.io.Printf("[%s] connection: %s\n", time.Now().Format("15:04:05"), status)

			if errors.Is(monitor.Err(), conn.ErrMaxAttemptsReached) {
				c.io.Println("⚠️  Reconnect attempts exhausted. Press Enter to retry.")
				if _, err := c.io.ReadInput(""); err != nil {
					return err
				}
				monitor.Reconnect()
				continue
			}

			if status != models.StatusConnected {
				continue
			}

			if err := c.syncOnReconnect(ctx, auth, clientID, documentID); err != nil {
				c.io.Printf("Sync failed: %v\n", err)
			}
		}
	}
}

// pushLatestStatus кладет статус в канал, вытесняя непрочитанное значение.
// Рассылка монитора синхронна, писатель всегда один, потому цикл конечен.
func pushLatestStatus(ch chan models.ConnectionStatus, status models.ConnectionStatus) {
	for {
		select {
		case ch <- status:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

// syncOnReconnect воспроизводит накопленную очередь после восстановления
// соединения.
func (c *Cli) syncOnReconnect(ctx context.Context, auth *storage.AuthData, clientID, documentID string) error {
	hasPending, err := c.syncService.HasPendingChanges(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to check pending changes: %w", err)
	}
	if !hasPending {
		return nil
	}

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

	fn := c.apiClient.SyncFunc(auth.AccessToken, documentID, clientID, baseVersion)
	result, err := c.syncService.Sync(ctx, documentID, fn)
	if err != nil {
		return err
	}

	switch {
	case len(result.Conflicts) > 0:
		c.io.Printf("⚠️  Conflict detected: %s. Run 'docsync resolve'.\n", result.Conflicts[0].ID)
	case !result.Skipped:
		c.io.Printf("✓ Replayed %d change(s)\n", result.Replayed)
	}

	return nil
}

package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/coder/websocket"

	"github.com/bidworks/docsync/internal/client/conn"
)

// Client реализует conn.Transport поверх websocket-соединения с
// realtime-сервисом. Подписка отправляет join-сообщение и читает кадры
// канала в фоне; обрыв чтения транслируется в сигнал статуса.
type Client struct {
	logger *slog.Logger
	url    string

	mu sync.Mutex
	ws *websocket.Conn
}

// subscribeMessage кадр подписки на канал
type subscribeMessage struct {
	Action  string `json:"action"`
	Channel string `json:"channel"`
}

// NewClient creates a websocket transport for the given realtime URL
func NewClient(url string, logger *slog.Logger) *Client {
	return &Client{
		url:    url,
		logger: logger,
	}
}

// Subscribe dials the realtime service, joins the channel and starts a
// background read loop. Status transitions are reported through onStatus;
// ChannelSubscribed is delivered once the join frame is written.
func (c *Client) Subscribe(ctx context.Context, channel string, onStatus func(conn.ChannelStatus)) error {
	ws, _, err := websocket.Dial(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to dial realtime service: %w", err)
	}

	msg := subscribeMessage{Action: "subscribe", Channel: channel}
	data, err := json.Marshal(msg)
	if err != nil {
		_ = ws.Close(websocket.StatusInternalError, "")
		return fmt.Errorf("failed to marshal subscribe message: %w", err)
	}

	if err := ws.Write(ctx, websocket.MessageText, data); err != nil {
		_ = ws.Close(websocket.StatusInternalError, "")
		return fmt.Errorf("failed to join channel: %w", err)
	}

	c.mu.Lock()
	// Заменяем предыдущее соединение, если Subscribe вызван повторно
	if c.ws != nil {
		_ = c.ws.Close(websocket.StatusNormalClosure, "resubscribe")
	}
	c.ws = ws
	c.mu.Unlock()

	onStatus(conn.ChannelSubscribed)

	go c.readLoop(ctx, ws, channel, onStatus)

	return nil
}

// readLoop читает кадры канала до обрыва соединения и классифицирует
// причину обрыва в сигнал статуса.
func (c *Client) readLoop(ctx context.Context, ws *websocket.Conn, channel string, onStatus func(conn.ChannelStatus)) {
	for {
		_, _, err := ws.Read(ctx)
		if err == nil {
			// Содержимое кадров каналу статусов не нужно
			continue
		}

		c.logger.Debug("Realtime read loop ended", "channel", channel, "error", err)
		onStatus(classifyReadError(err))
		return
	}
}

// classifyReadError сопоставляет ошибку чтения с сигналом транспорта.
func classifyReadError(err error) conn.ChannelStatus {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return conn.ChannelTimedOut
	case websocket.CloseStatus(err) != -1 || errors.Is(err, context.Canceled):
		return conn.ChannelClosed
	default:
		return conn.ChannelError
	}
}

// Ping verifies liveness of the current websocket connection
func (c *Client) Ping(ctx context.Context) error {
	c.mu.Lock()
	ws := c.ws
	c.mu.Unlock()

	if ws == nil {
		return errors.New("not connected")
	}

	if err := ws.Ping(ctx); err != nil {
		return fmt.Errorf("realtime ping failed: %w", err)
	}

	return nil
}

// Close tears down the websocket connection
func (c *Client) Close() error {
	c.mu.Lock()
	ws := c.ws
	c.ws = nil
	c.mu.Unlock()

	if ws == nil {
		return nil
	}

	return ws.Close(websocket.StatusNormalClosure, "")
}

package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const (
	subscribeTimeout = 10 * time.Second
	writeTimeout     = 5 * time.Second
)

// subscribeMessage первый кадр, который клиент отправляет после подключения
type subscribeMessage struct {
	Action  string `json:"action"`
	Channel string `json:"channel"`
}

// Event уведомление, рассылаемое подписчикам канала
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Event     string    `json:"event"`
	Channel   string    `json:"channel"`
	Version   int64     `json:"version,omitempty"`
}

// Hub раздает события по websocket-каналам. Каждый документ - отдельный
// канал "documents:<id>"; клиенты держат соединение открытым и по обрыву
// переподключаются со своей стороны.
type Hub struct {
	logger *slog.Logger

	mu       sync.RWMutex
	channels map[string]map[*websocket.Conn]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:   logger,
		channels: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// HandleWebSocket обрабатывает GET /api/v1/realtime: принимает соединение,
// читает кадр подписки и держит соединение до обрыва.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), subscribeTimeout)
	_, data, err := ws.Read(ctx)
	cancel()
	if err != nil {
		_ = ws.Close(websocket.StatusPolicyViolation, "subscribe frame expected")
		return
	}

	var msg subscribeMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.Action != "subscribe" || msg.Channel == "" {
		_ = ws.Close(websocket.StatusPolicyViolation, "invalid subscribe frame")
		return
	}

	h.add(msg.Channel, ws)
	h.logger.Info("Realtime subscriber joined", "channel", msg.Channel)

	// Держим соединение до обрыва; входящие кадры после подписки не значимы
	for {
		if _, _, err := ws.Read(r.Context()); err != nil {
			break
		}
	}

	h.remove(msg.Channel, ws)
	h.logger.Info("Realtime subscriber left", "channel", msg.Channel)
	_ = ws.Close(websocket.StatusNormalClosure, "")
}

// NotifyDocumentUpdated рассылает подписчикам канала документа событие
// об изменении его версии на сервере.
func (h *Hub) NotifyDocumentUpdated(documentID string, version int64) {
	h.publish("documents:"+documentID, Event{
		Event:     "document_updated",
		Channel:   "documents:" + documentID,
		Version:   version,
		Timestamp: time.Now().UTC(),
	})
}

func (h *Hub) publish(channel string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal realtime event", "error", err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.channels[channel]))
	for ws := range h.channels[channel] {
		conns = append(conns, ws)
	}
	h.mu.RUnlock()

	// Пишем вне блокировки, чтобы медленный клиент не задерживал остальных
	for _, ws := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := ws.Write(ctx, websocket.MessageText, data)
		cancel()

		if err != nil {
			h.logger.Debug("Failed to deliver realtime event", "channel", channel, "error", err)
			h.remove(channel, ws)
		}
	}
}

// Close закрывает все подписанные соединения.
func (h *Hub) Close() {
	h.mu.Lock()
	channels := h.channels
	h.channels = make(map[string]map[*websocket.Conn]struct{})
	h.mu.Unlock()

	for _, conns := range channels {
		for ws := range conns {
			_ = ws.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

func (h *Hub) add(channel string, ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.channels[channel] == nil {
		h.channels[channel] = make(map[*websocket.Conn]struct{})
	}
	h.channels[channel][ws] = struct{}{}
}

func (h *Hub) remove(channel string, ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.channels[channel], ws)
	if len(h.channels[channel]) == 0 {
		delete(h.channels, channel)
	}
}

package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dialAndSubscribe(t *testing.T, serverURL, channel string) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(serverURL, "http")
	ws, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)

	frame, err := json.Marshal(subscribeMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, err)
	require.NoError(t, ws.Write(ctx, websocket.MessageText, frame))

	return ws
}

func readEvent(t *testing.T, ws *websocket.Conn) Event {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := ws.Read(ctx)
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestHub_NotifyDocumentUpdated(t *testing.T) {
	hub := NewHub(testLogger())
	defer hub.Close()

	server := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer server.Close()

	ws := dialAndSubscribe(t, server.URL, "documents:doc-1")
	defer ws.Close(websocket.StatusNormalClosure, "")

	// Подписка регистрируется асинхронно после кадра
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.channels["documents:doc-1"]) == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.NotifyDocumentUpdated("doc-1", 7)

	event := readEvent(t, ws)
	assert.Equal(t, "document_updated", event.Event)
	assert.Equal(t, "documents:doc-1", event.Channel)
	assert.Equal(t, int64(7), event.Version)
	assert.False(t, event.Timestamp.IsZero())
}

func TestHub_ChannelIsolation(t *testing.T) {
	hub := NewHub(testLogger())
	defer hub.Close()

	server := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer server.Close()

	wsA := dialAndSubscribe(t, server.URL, "documents:doc-a")
	defer wsA.Close(websocket.StatusNormalClosure, "")
	wsB := dialAndSubscribe(t, server.URL, "documents:doc-b")
	defer wsB.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.channels["documents:doc-a"]) == 1 && len(hub.channels["documents:doc-b"]) == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.NotifyDocumentUpdated("doc-b", 3)

	// Подписчик doc-b получает событие, подписчик doc-a - нет
	event := readEvent(t, wsB)
	assert.Equal(t, "documents:doc-b", event.Channel)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := wsA.Read(ctx)
	assert.Error(t, err)
}

func TestHub_InvalidSubscribeFrame(t *testing.T) {
	hub := NewHub(testLogger())
	defer hub.Close()

	server := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	ws, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer ws.Close(websocket.StatusNormalClosure, "")

	require.NoError(t, ws.Write(ctx, websocket.MessageText, []byte(`{"action":"noise"}`)))

	// Сервер закрывает соединение с policy violation
	_, _, err = ws.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusPolicyViolation, websocket.CloseStatus(err))
}

func TestHub_DisconnectRemovesSubscriber(t *testing.T) {
	hub := NewHub(testLogger())
	defer hub.Close()

	server := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer server.Close()

	ws := dialAndSubscribe(t, server.URL, "documents:doc-1")

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.channels["documents:doc-1"]) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, ws.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.channels) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

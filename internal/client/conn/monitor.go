package conn

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bidworks/docsync/internal/models"
)

const (
	// baseReconnectDelay задержка перед первой попыткой переподключения
	baseReconnectDelay = 1000 * time.Millisecond
	// maxReconnectDelay потолок экспоненциального backoff
	maxReconnectDelay = 16000 * time.Millisecond
	// MaxReconnectAttempts максимум автоматических попыток переподключения.
	// После исчерпания требуется явный вызов Reconnect.
	MaxReconnectAttempts = 5

	pingTimeout = 3 * time.Second
)

// ErrMaxAttemptsReached возвращается из Err после исчерпания автоматических
// попыток переподключения.
var ErrMaxAttemptsReached = errors.New("max reconnection attempts reached")

// ReconnectDelay возвращает задержку перед попыткой переподключения
// с указанным номером: min(1000 * 2^attempt, 16000) миллисекунд.
func ReconnectDelay(attempt int) time.Duration {
	delay := baseReconnectDelay
	for i := 0; i < attempt; i++ {
		delay *= 2
		if delay >= maxReconnectDelay {
			return maxReconnectDelay
		}
	}
	return delay
}

// Monitor отслеживает состояние соединения с realtime-транспортом.
// Статус - единственное значение на процесс, начальное состояние
// disconnected. Подписчики получают каждую смену статуса синхронно,
// новый подписчик сразу получает текущее значение (last-value-wins).
type Monitor struct {
	transport    Transport
	logger       *slog.Logger
	channel      string
	pollInterval time.Duration

	mu      sync.Mutex
	status  models.ConnectionStatus
	lastErr error
	attempt int
	subs    map[int]func(models.ConnectionStatus)
	nextSub int
	timer   *time.Timer
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	closed  bool
}

// NewMonitor creates a connection monitor for the given transport and channel.
// pollInterval enables a periodic liveness check as a safety net for missed
// push events; 0 disables polling.
func NewMonitor(transport Transport, channel string, pollInterval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		transport:    transport,
		channel:      channel,
		pollInterval: pollInterval,
		logger:       logger,
		status:       models.StatusDisconnected,
		subs:         make(map[int]func(models.ConnectionStatus)),
	}
}

// Start opens the realtime channel and begins supervising it.
// Safe to call once; subsequent calls are no-ops.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started || m.closed {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.ctx, m.cancel = context.WithCancel(ctx)
	m.mu.Unlock()

	if m.pollInterval > 0 {
		go m.pollLoop()
	}

	m.connect()
}

// Close tears down the monitor and the underlying transport.
func (m *Monitor) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.cancel != nil {
		m.cancel()
	}
	m.mu.Unlock()

	m.transition(models.StatusDisconnected)
	return m.transport.Close()
}

// Status returns the current connection status
func (m *Monitor) Status() models.ConnectionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Err returns the last non-recoverable connection error, if any
func (m *Monitor) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Subscribe registers a status listener and immediately delivers the
// current status to it. The returned function removes the listener.
func (m *Monitor) Subscribe(fn func(models.ConnectionStatus)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	current := m.status
	m.mu.Unlock()

	fn(current)

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Reconnect запускает немедленную попытку переподключения по явному
// запросу пользователя: счетчик попыток сбрасывается, запланированный
// backoff-таймер отменяется (активен не более одного таймера).
func (m *Monitor) Reconnect() {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.attempt = 0
	m.lastErr = nil
	ready := m.started && !m.closed
	m.mu.Unlock()

	if !ready {
		return
	}

	m.connect()
}

// MarkSyncing flips the status to syncing while a replay is in flight.
// Only meaningful when the connection is up.
func (m *Monitor) MarkSyncing() {
	m.mu.Lock()
	ok := m.status == models.StatusConnected || m.status == models.StatusSyncing
	m.mu.Unlock()
	if ok {
		m.transition(models.StatusSyncing)
	}
}

// MarkSynced returns the status to connected after a completed replay.
func (m *Monitor) MarkSynced() {
	m.mu.Lock()
	ok := m.status == models.StatusSyncing
	m.mu.Unlock()
	if ok {
		m.transition(models.StatusConnected)
	}
}

// MarkDegraded reverts the status after a failed replay and hands retrying
// over to the reconnect backoff.
func (m *Monitor) MarkDegraded() {
	m.transition(models.StatusDisconnected)
	m.scheduleReconnect()
}

// connect выполняет одну попытку подписки на канал.
func (m *Monitor) connect() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	ctx := m.ctx
	m.mu.Unlock()

	m.transition(models.StatusReconnecting)

	if err := m.transport.Subscribe(ctx, m.channel, m.handleChannelStatus); err != nil {
		m.logger.Warn("Realtime subscribe failed", "channel", m.channel, "error", err)

		m.mu.Lock()
		m.lastErr = err
		m.mu.Unlock()

		m.transition(models.StatusDisconnected)
		m.scheduleReconnect()
	}
}

// handleChannelStatus обрабатывает сигналы транспорта.
func (m *Monitor) handleChannelStatus(status ChannelStatus) {
	switch status {
	case ChannelSubscribed:
		m.mu.Lock()
		m.attempt = 0
		m.lastErr = nil
		m.mu.Unlock()

		m.logger.Info("Realtime channel subscribed", "channel", m.channel)
		m.transition(models.StatusConnected)

	case ChannelError, ChannelTimedOut, ChannelClosed:
		m.logger.Warn("Realtime channel lost", "channel", m.channel, "signal", string(status))
		m.transition(models.StatusDisconnected)
		m.scheduleReconnect()
	}
}

// scheduleReconnect планирует следующую попытку с экспоненциальным backoff.
func (m *Monitor) scheduleReconnect() {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return
	}

	if m.attempt >= MaxReconnectAttempts {
		m.lastErr = ErrMaxAttemptsReached
		m.mu.Unlock()

		m.logger.Error("Max reconnection attempts reached", "channel", m.channel,
			"attempts", MaxReconnectAttempts)
		m.transition(models.StatusDisconnected)
		return
	}

	delay := ReconnectDelay(m.attempt)
	m.attempt++

	// Не более одного активного таймера переподключения
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(delay, m.connect)

	attempt := m.attempt
	m.mu.Unlock()

	m.logger.Info("Reconnect scheduled", "channel", m.channel,
		"attempt", attempt, "delay", delay)
	m.transition(models.StatusReconnecting)
}

// transition меняет статус и синхронно оповещает подписчиков.
// Callbacks вызываются вне mu, чтобы подписчики могли читать Status.
func (m *Monitor) transition(status models.ConnectionStatus) {
	m.mu.Lock()
	if m.status == status {
		m.mu.Unlock()
		return
	}
	m.status = status

	listeners := make([]func(models.ConnectionStatus), 0, len(m.subs))
	for _, fn := range m.subs {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(status)
	}
}

// pollLoop периодически проверяет живость соединения как страховка
// от потерянных push-событий транспорта.
func (m *Monitor) pollLoop() {
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if m.Status() != models.StatusConnected {
				continue
			}

			ctx, cancel := context.WithTimeout(m.ctx, pingTimeout)
			err := m.transport.Ping(ctx)
			cancel()

			if err != nil {
				m.logger.Warn("Liveness check failed", "channel", m.channel, "error", err)
				m.handleChannelStatus(ChannelTimedOut)
			}
		case <-m.ctx.Done():
			return
		}
	}
}

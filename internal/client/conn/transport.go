package conn

import "context"

// ChannelStatus статус realtime-канала, как его сообщает транспорт.
// Значения совпадают с сигналами подписки realtime-сервиса.
type ChannelStatus string

const (
	// ChannelSubscribed подписка на канал установлена
	ChannelSubscribed ChannelStatus = "SUBSCRIBED"
	// ChannelError ошибка канала
	ChannelError ChannelStatus = "CHANNEL_ERROR"
	// ChannelTimedOut таймаут подписки или heartbeat
	ChannelTimedOut ChannelStatus = "TIMED_OUT"
	// ChannelClosed канал закрыт удаленной стороной
	ChannelClosed ChannelStatus = "CLOSED"
)

//go:generate moq -out transport_mock.go . Transport

// Transport is the realtime message-delivery primitive the monitor
// supervises. Implementations report channel lifecycle through onStatus
// and are expected to deliver ChannelSubscribed once the subscription is
// established. Subscribe must not block for the lifetime of the channel.
type Transport interface {
	// Subscribe opens the channel and streams status transitions to onStatus
	// until the subscription fails or the transport is closed
	Subscribe(ctx context.Context, channel string, onStatus func(ChannelStatus)) error

	// Ping verifies liveness of the current connection
	// An error is treated the same as a transport failure signal
	Ping(ctx context.Context) error

	// Close tears down the connection
	Close() error
}

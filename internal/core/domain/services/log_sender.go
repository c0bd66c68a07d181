package services

import (
	"context"
	"log/slog"

	"deliverytracking/internal/core/ports"
)

// LogSender is the stub transport: it writes every payload to the log.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "LogSender")}
}

func (s *LogSender) Send(ctx context.Context, channel ports.Channel, recipient string, message string) error {
	s.logger.InfoContext(ctx, channelPrefix(channel),
		"recipient", recipient,
		"message", message,
	)
	return nil
}

func channelPrefix(channel ports.Channel) string {
	switch channel {
	case ports.ChannelSMS:
		return "[Notificação SMS]"
	case ports.ChannelRestaurant:
		return "[Notificação Restaurante]"
	default:
		return "[Notificação " + string(channel) + "]"
	}
}

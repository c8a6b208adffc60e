package sms

import (
	"context"
	"log/slog"

	"farmgrid/internal/domain/service"
)

// logSender writes outbound SMS to the log instead of a provider. Used in
// development and as the fallback when no provider is configured.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender is the constructor for logSender.
func NewLogSender(logger *slog.Logger) service.SMSSender {
	return &logSender{
		logger: logger,
	}
}

// Send logs the message and reports success.
func (s *logSender) Send(_ context.Context, to, message string) error {
	s.logger.Info("Sending SMS",
		slog.String("to", to),
		slog.String("message", message),
	)

	return nil
}

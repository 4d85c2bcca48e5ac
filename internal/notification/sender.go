// Package notification defines the outbound message contract. Actual delivery
// (SMTP, transactional mail provider) lives outside this service; the shipped
// implementation only records the attempt in the application log.
package notification

import (
	"context"
	"log/slog"
)

// Sender delivers a message to a recipient address. Implementations are
// best-effort: callers log failures and never surface them to end users,
// so delivery errors cannot be used to probe which addresses exist.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SlogSender is a Sender that writes messages to the structured log instead
// of delivering them. Used in development and as the default wiring until a
// real delivery collaborator is configured.
type SlogSender struct {
	logger *slog.Logger
}

// NewSlogSender creates a SlogSender backed by the given logger.
func NewSlogSender(logger *slog.Logger) *SlogSender {
	return &SlogSender{logger: logger}
}

// Send logs the outbound message. The body is logged at debug level only,
// since it may carry tokens.
func (s *SlogSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.InfoContext(ctx, "outbound notification",
		slog.String("to", to),
		slog.String("subject", subject),
	)
	s.logger.DebugContext(ctx, "outbound notification body",
		slog.String("to", to),
		slog.String("body", body),
	)
	return nil
}

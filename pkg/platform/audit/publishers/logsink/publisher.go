// Package logsink is a Publisher that writes relayed audit events to a
// structured logger. It is used when no Kafka brokers are configured.
package logsink

import (
	"context"
	"log/slog"

	audit "onutec/pkg/platform/audit"
)

type Publisher struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, msgs []audit.Message) error {
	for _, m := range msgs {
		p.logger.InfoContext(ctx, "audit event",
			"topic", string(m.Topic),
			"key", m.Key,
			"payload", string(m.Payload),
		)
	}
	return nil
}

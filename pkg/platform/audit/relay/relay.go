// Package relay moves audit events from the outbox table to a publisher.
//
// Delivery is at-least-once: an entry is marked published only after the
// publisher accepted it, so a crash between the two steps re-sends the batch.
package relay

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	audit "onutec/pkg/platform/audit"
)

// OutboxReader is the outbox side of the relay.
type OutboxReader interface {
	FetchPending(ctx context.Context, limit int) ([]audit.OutboxEntry, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// Publisher ships messages to a sink such as Kafka.
type Publisher interface {
	Publish(ctx context.Context, msgs []audit.Message) error
}

// Metrics holds Prometheus metrics for the relay.
type Metrics struct {
	Relayed  prometheus.Counter
	Failures prometheus.Counter
	Lag      prometheus.Histogram
}

// NewMetrics registers relay metrics with the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		Relayed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "onutec_audit_outbox_relayed_total",
			Help: "Total number of outbox entries published",
		}),
		Failures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "onutec_audit_outbox_failures_total",
			Help: "Total number of failed relay batches",
		}),
		Lag: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "onutec_audit_outbox_lag_seconds",
			Help:    "Time between an outbox write and its publication",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}
}

// Relay polls the outbox and publishes pending entries.
type Relay struct {
	outbox    OutboxReader
	publisher Publisher
	logger    *slog.Logger
	metrics   *Metrics
	interval  time.Duration
	batchSize int
	now       func() time.Time
}

// Option configures a Relay.
type Option func(*Relay)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Relay) { r.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(r *Relay) { r.metrics = m }
}

// WithInterval sets the polling interval used when the outbox is drained.
func WithInterval(d time.Duration) Option {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithBatchSize(n int) Option {
	return func(r *Relay) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

// WithClock overrides time.Now for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Relay) { r.now = now }
}

func New(outbox OutboxReader, publisher Publisher, opts ...Option) *Relay {
	r := &Relay{
		outbox:    outbox,
		publisher: publisher,
		logger:    slog.Default(),
		interval:  time.Second,
		batchSize: 100,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run relays until ctx is cancelled. Batch failures are logged and retried on
// the next tick; they never stop the loop.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		for {
			n, err := r.RelayOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				r.logger.WarnContext(ctx, "audit relay batch failed", "error", err)
				break
			}
			if n < r.batchSize {
				break
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RelayOnce publishes one batch and returns how many entries it delivered.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	entries, err := r.outbox.FetchPending(ctx, r.batchSize)
	if err != nil {
		r.incFailures()
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	msgs := make([]audit.Message, 0, len(entries))
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		msgs = append(msgs, audit.Message{
			Key:     e.AggregateID,
			Topic:   audit.AuditEvent(e.EventType).Category(),
			Payload: e.Payload,
		})
		ids = append(ids, e.ID)
	}

	if err := r.publisher.Publish(ctx, msgs); err != nil {
		r.incFailures()
		return 0, err
	}

	now := r.now()
	if err := r.outbox.MarkPublished(ctx, ids, now); err != nil {
		r.incFailures()
		return 0, err
	}

	if r.metrics != nil {
		r.metrics.Relayed.Add(float64(len(entries)))
		for _, e := range entries {
			r.metrics.Lag.Observe(now.Sub(e.CreatedAt).Seconds())
		}
	}
	r.logger.DebugContext(ctx, "audit entries relayed", "count", len(entries))
	return len(entries), nil
}

func (r *Relay) incFailures() {
	if r.metrics != nil {
		r.metrics.Failures.Inc()
	}
}

// Package kafka publishes relayed audit events to Kafka with franz-go.
// Each event category maps to its own topic: <prefix>.<category>.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/twmb/franz-go/pkg/kgo"

	audit "onutec/pkg/platform/audit"
)

// Publisher produces audit messages synchronously so the relay marks entries
// only after the broker acknowledged them.
type Publisher struct {
	client      *kgo.Client
	topicPrefix string
}

// New connects a producer to the given brokers.
func New(brokers []string, topicPrefix string, opts ...kgo.Opt) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: at least one broker is required")
	}
	if topicPrefix == "" {
		topicPrefix = "onutec.audit"
	}
	base := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	}
	client, err := kgo.NewClient(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("kafka: create client: %w", err)
	}
	return &Publisher{client: client, topicPrefix: topicPrefix}, nil
}

// Topic returns the topic a category is written to.
func (p *Publisher) Topic(category audit.EventCategory) string {
	return p.topicPrefix + "." + strings.ToLower(string(category))
}

// Publish produces msgs and waits for every acknowledgement.
func (p *Publisher) Publish(ctx context.Context, msgs []audit.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	records := make([]*kgo.Record, 0, len(msgs))
	for _, m := range msgs {
		records = append(records, &kgo.Record{
			Topic: p.Topic(m.Topic),
			Key:   []byte(m.Key),
			Value: m.Payload,
		})
	}
	if err := p.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("kafka: produce audit batch: %w", err)
	}
	return nil
}

// Ping checks broker connectivity.
func (p *Publisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

func (p *Publisher) Close() {
	p.client.Close()
}

package events

import (
	"context"
	"encoding/json"
	"fmt"

	"mercato-core/config"
	"mercato-core/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaPublisher implements ports.EventPublisher on a Kafka topic. Events are
// keyed by lottery id so all events of one lottery stay ordered within a
// partition.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	log    zerolog.Logger
}

// NewKafkaPublisher creates a Kafka-backed event publisher and verifies the
// broker connection.
func NewKafkaPublisher(ctx context.Context, cfg config.KafkaConfig, log zerolog.Logger) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kafka client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging kafka brokers: %w", err)
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.Topic).
		Msg("Kafka producer established")

	return &KafkaPublisher{client: client, topic: cfg.Topic, log: log}, nil
}

// Publish produces the event synchronously. Callers treat failures as
// non-fatal; committed state is never rolled back over a publish error.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	record := &kgo.Record{
		Key:   []byte(event.LotteryID.String()),
		Value: payload,
		Topic: p.topic,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce event %s: %w", event.Type, err)
	}

	p.log.Debug().
		Str("event_type", string(event.Type)).
		Str("lottery_id", event.LotteryID.String()).
		Msg("event published")
	return nil
}

// Close flushes and closes the underlying producer.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}

package events

import (
	"context"

	"mercato-core/internal/core/domain"

	"github.com/rs/zerolog"
)

// LogPublisher implements ports.EventPublisher by writing events to the
// structured log. Used when no Kafka brokers are configured (local dev,
// tests).
type LogPublisher struct {
	log zerolog.Logger
}

// NewLogPublisher creates a log-backed event publisher.
func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

// Publish writes the event as a structured log line.
func (p *LogPublisher) Publish(_ context.Context, event domain.Event) error {
	p.log.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", string(event.Type)).
		Str("lottery_id", event.LotteryID.String()).
		Interface("payload", event.Payload).
		Msg("domain event")
	return nil
}

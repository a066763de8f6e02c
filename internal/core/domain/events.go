package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a domain event consumed by external collaborators
// (notifications, storefront, accounting). The engine only emits; it never
// depends on a consumer's success.
type EventType string

const (
	EventLotteryActivated EventType = "lottery.activated"
	EventLotteryClosed    EventType = "lottery.closed"
	EventLotteryCancelled EventType = "lottery.cancelled"
	EventLotteryDrawn     EventType = "lottery.drawn"
	EventTicketPurchased  EventType = "ticket.purchased"
	EventPaymentCompleted EventType = "payment.completed"
	EventPaymentFailed    EventType = "payment.failed"
	EventPaymentRefunded  EventType = "payment.refunded"
)

// Event is the envelope published for every state change collaborators care
// about. Key is the lottery id so per-lottery ordering survives partitioned
// transports.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       EventType      `json:"type"`
	LotteryID  uuid.UUID      `json:"lottery_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// NewEvent builds an event envelope for the given lottery.
func NewEvent(eventType EventType, lotteryID uuid.UUID, payload map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		LotteryID:  lotteryID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

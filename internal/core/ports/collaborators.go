package ports

import (
	"context"
	"time"

	"mercato-core/internal/core/domain"

	"github.com/google/uuid"
)

// SellerVerifier is the identity/KYC collaborator. The engine only consumes
// the verified flag; KYC document handling lives elsewhere.
type SellerVerifier interface {
	IsSellerVerified(ctx context.Context, sellerID uuid.UUID) (bool, error)
}

// EventPublisher dispatches domain events to the notification collaborator
// and any other consumer. Fire-and-forget: implementations log failures,
// callers never roll back committed state over a publish error.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// PaymentGateway is the external payment provider. CreateOrder opens a
// gateway order for a committed transaction; Capture settles it. The engine
// reacts to the gateway's webhook, never blocks on confirmation.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, reference string) (string, error)
	Capture(ctx context.Context, orderID string) (*CaptureResult, error)
}

// CaptureResult is the gateway's settlement outcome.
type CaptureResult struct {
	OrderID   string
	Captured  bool
	Reference string
}

// DrawQueue carries drawing jobs from the sweep (and manual triggers) to the
// draw workers. At-least-once delivery; the drawing service's idempotent
// guard makes duplicates harmless.
type DrawQueue interface {
	Enqueue(ctx context.Context, lotteryID uuid.UUID) error
	// Dequeue blocks up to timeout. ok is false when the queue stayed empty.
	Dequeue(ctx context.Context, timeout time.Duration) (lotteryID uuid.UUID, ok bool, err error)
}

// CompletionCache is the fast-path idempotency check for markCompleted.
// Best effort only; the transaction row is the source of truth.
type CompletionCache interface {
	Get(ctx context.Context, transactionID uuid.UUID) ([]byte, error) // nil when absent
	Set(ctx context.Context, transactionID uuid.UUID, value []byte, ttl time.Duration) error
}

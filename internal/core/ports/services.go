package ports

import (
	"context"

	"mercato-core/internal/core/domain"

	"github.com/google/uuid"
)

// --- Service Ports (Business Logic) ---

// LotteryService is the state machine surface: guarded transitions only,
// rejected (never silently corrected) when the precondition fails.
type LotteryService interface {
	Create(ctx context.Context, req CreateLotteryRequest) (*domain.Lottery, error)
	Activate(ctx context.Context, lotteryID uuid.UUID) (*domain.Lottery, error)
	Close(ctx context.Context, lotteryID uuid.UUID, reason domain.CloseReason) (*domain.Lottery, error)
	Cancel(ctx context.Context, lotteryID uuid.UUID) (*domain.Lottery, error)
	GetByID(ctx context.Context, lotteryID uuid.UUID) (*domain.Lottery, error)
	ListActive(ctx context.Context) ([]LotteryStats, error)
}

// LotteryStats pairs a lottery with its live stock counters. Sold counts
// every ticket occupying a slot (pending, processing, completed, refunded).
type LotteryStats struct {
	Lottery   domain.Lottery
	SoldCount int
	Remaining int
}

// CreateLotteryRequest holds validated input for lottery creation.
// ItemValue is in cents.
type CreateLotteryRequest struct {
	SellerID  uuid.UUID
	Title     string
	ItemValue int64
	ItemCount int
}

// IssuanceService sells tickets against live stock.
type IssuanceService interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]domain.Ticket, error)
}

// PurchaseRequest holds validated input for a ticket purchase.
type PurchaseRequest struct {
	LotteryID uuid.UUID
	BuyerID   uuid.UUID
	Count     int
}

// PurchaseResult is the atomic outcome of a purchase: all tickets plus the
// single covering transaction, or nothing.
type PurchaseResult struct {
	Tickets     []*domain.Ticket
	Transaction *domain.PaymentTransaction
}

// LedgerService advances payment transactions on gateway callbacks. All three
// operations are safe to re-deliver.
type LedgerService interface {
	MarkCompleted(ctx context.Context, transactionID uuid.UUID) (*domain.PaymentTransaction, error)
	MarkFailed(ctx context.Context, transactionID uuid.UUID, reason string) (*domain.PaymentTransaction, error)
	Refund(ctx context.Context, transactionID uuid.UUID) (*domain.PaymentTransaction, error)
	GetByGatewayOrderID(ctx context.Context, orderID string) (*domain.PaymentTransaction, error)
}

// DrawingService performs the exclusive, idempotent winner drawing.
type DrawingService interface {
	// DrawWinner returns the (new or pre-existing) drawing. Callable
	// concurrently and redundantly; at most one drawing ever exists.
	DrawWinner(ctx context.Context, lotteryID uuid.UUID) (*domain.WinnerDrawing, error)
	GetByLotteryID(ctx context.Context, lotteryID uuid.UUID) (*domain.WinnerDrawing, error)
}

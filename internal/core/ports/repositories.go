package ports

import (
	"context"
	"time"

	"mercato-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LotteryRepository defines persistence operations for lotteries.
// Methods accepting pgx.Tx run inside transaction blocks; the ForUpdate
// variant takes the row lock that serializes all mutations of one lottery.
type LotteryRepository interface {
	Create(ctx context.Context, lottery *domain.Lottery) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lottery, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Lottery, error)
	// UpdateStatus moves the lottery to status; kycCompleted and expiration
	// are written as given (expiration nil leaves the column untouched).
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.LotteryStatus, kycCompleted bool, expiration *time.Time) error
	ListActive(ctx context.Context) ([]domain.Lottery, error)
	// ListDrawCandidates returns ids of lotteries that are closed, expired at
	// now, and have no drawing yet.
	ListDrawCandidates(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

// TicketRepository defines persistence operations for tickets. Counting and
// sequence reads take pgx.Tx because they are only meaningful under the
// lottery row lock.
type TicketRepository interface {
	CreateBatch(ctx context.Context, tx pgx.Tx, tickets []*domain.Ticket) error
	// MaxSequence returns the highest allocated ticket sequence for the
	// lottery, 0 if none were ever issued.
	MaxSequence(ctx context.Context, tx pgx.Tx, lotteryID uuid.UUID) (int, error)
	// CountIssued counts tickets occupying stock (payment status != failed).
	CountIssued(ctx context.Context, tx pgx.Tx, lotteryID uuid.UUID) (int, error)
	// CountCompleted counts paid tickets.
	CountCompleted(ctx context.Context, tx pgx.Tx, lotteryID uuid.UUID) (int, error)
	// ListCompleted returns the drawing-eligible tickets.
	ListCompleted(ctx context.Context, tx pgx.Tx, lotteryID uuid.UUID) ([]domain.Ticket, error)
	UpdateStatusByTransaction(ctx context.Context, tx pgx.Tx, transactionID uuid.UUID, status domain.TicketStatus) error
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]domain.Ticket, error)
}

// TransactionRepository defines persistence operations for payment
// transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, txn *domain.PaymentTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentTransaction, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PaymentTransaction, error)
	GetByGatewayOrderID(ctx context.Context, orderID string) (*domain.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus, completedAt *time.Time) error
	// SetGatewayOrderID correlates the transaction with the external gateway
	// order created after commit; runs outside any transaction block.
	SetGatewayOrderID(ctx context.Context, id uuid.UUID, orderID string) error
}

// DrawingRepository defines persistence for winner drawings. Rows are
// append-only; the unique lottery constraint backs the at-most-one guarantee.
type DrawingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, drawing *domain.WinnerDrawing) error
	GetByLotteryID(ctx context.Context, lotteryID uuid.UUID) (*domain.WinnerDrawing, error)
	// GetByLotteryIDLocked is the in-lock double check of the drawing path.
	GetByLotteryIDLocked(ctx context.Context, tx pgx.Tx, lotteryID uuid.UUID) (*domain.WinnerDrawing, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

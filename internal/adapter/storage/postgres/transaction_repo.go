package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mercato-core/internal/core/domain"
	"mercato-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, lottery_id, buyer_id, ticket_count, amount, commission, net_amount, status, gateway_order_id, created_at, completed_at`

// Create inserts a new payment transaction within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.PaymentTransaction) error {
	query := `INSERT INTO payment_transactions (id, lottery_id, buyer_id, ticket_count, amount, commission, net_amount, status, gateway_order_id, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.LotteryID, t.BuyerID, t.TicketCount,
		t.Amount, t.Commission, t.NetAmount, t.Status,
		t.GatewayOrderID, t.CreatedAt, t.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by UUID (without locking).
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE id = $1`
	return scanTransaction(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a transaction by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *TransactionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE id = $1 FOR UPDATE`

	t, err := scanTransaction(tx.QueryRow(ctx, query, id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == lockNotAvailable {
			return nil, apperror.ErrLockTimeout(err)
		}
		return nil, err
	}
	return t, nil
}

// GetByGatewayOrderID fetches a transaction by the external gateway order id.
func (r *TransactionRepo) GetByGatewayOrderID(ctx context.Context, orderID string) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE gateway_order_id = $1`
	return scanTransaction(r.pool.QueryRow(ctx, query, orderID))
}

// UpdateStatus updates a transaction's status within a database transaction.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus, completedAt *time.Time) error {
	query := `UPDATE payment_transactions SET status = $1, completed_at = COALESCE($2, completed_at) WHERE id = $3`

	tag, err := tx.Exec(ctx, query, status, completedAt, id)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment transaction not found: %s", id)
	}
	return nil
}

// SetGatewayOrderID correlates the transaction with the gateway order created
// after commit. Runs outside any transaction block.
func (r *TransactionRepo) SetGatewayOrderID(ctx context.Context, id uuid.UUID, orderID string) error {
	query := `UPDATE payment_transactions SET gateway_order_id = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, orderID, id)
	if err != nil {
		return fmt.Errorf("set gateway order id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment transaction not found: %s", id)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.PaymentTransaction, error) {
	t := &domain.PaymentTransaction{}
	err := row.Scan(
		&t.ID, &t.LotteryID, &t.BuyerID, &t.TicketCount,
		&t.Amount, &t.Commission, &t.NetAmount, &t.Status,
		&t.GatewayOrderID, &t.CreatedAt, &t.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment transaction: %w", err)
	}
	return t, nil
}

package postgres

import (
	"context"
	"fmt"

	"mercato-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TicketRepo implements ports.TicketRepository.
type TicketRepo struct {
	pool Pool
}

// NewTicketRepo creates a new TicketRepo.
func NewTicketRepo(pool Pool) *TicketRepo {
	return &TicketRepo{pool: pool}
}

const ticketColumns = `id, lottery_id, buyer_id, transaction_id, ticket_number, payment_status, purchased_at`

// CreateBatch inserts all tickets of one purchase within a transaction.
func (r *TicketRepo) CreateBatch(ctx context.Context, tx pgx.Tx, tickets []*domain.Ticket) error {
	batch := &pgx.Batch{}
	query := `INSERT INTO tickets (id, lottery_id, buyer_id, transaction_id, ticket_number, payment_status, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, t := range tickets {
		batch.Queue(query,
			t.ID, t.LotteryID, t.BuyerID, t.TransactionID,
			t.TicketNumber, t.PaymentStatus, t.PurchasedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close() //nolint:errcheck

	for range tickets {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert ticket batch: %w", err)
		}
	}
	return nil
}

// MaxSequence returns the highest allocated ticket sequence for the lottery,
// 0 if none were ever issued. Sequences come from the number suffix so failed
// tickets keep their slot in the numbering forever.
func (r *TicketRepo) MaxSequence(ctx context.Context, tx pgx.Tx, lotteryID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(split_part(ticket_number, '-', 7)::int), 0)
		FROM tickets WHERE lottery_id = $1`

	var seq int
	if err := tx.QueryRow(ctx, query, lotteryID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("max ticket sequence: %w", err)
	}
	return seq, nil
}

// CountIssued counts tickets occupying stock (payment status != failed).
func (r *TicketRepo) CountIssued(ctx context.Context, tx pgx.Tx, lotteryID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE lottery_id = $1 AND payment_status != $2`

	var count int
	if err := tx.QueryRow(ctx, query, lotteryID, domain.TicketStatusFailed).Scan(&count); err != nil {
		return 0, fmt.Errorf("count issued tickets: %w", err)
	}
	return count, nil
}

// CountCompleted counts paid tickets.
func (r *TicketRepo) CountCompleted(ctx context.Context, tx pgx.Tx, lotteryID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE lottery_id = $1 AND payment_status = $2`

	var count int
	if err := tx.QueryRow(ctx, query, lotteryID, domain.TicketStatusCompleted).Scan(&count); err != nil {
		return 0, fmt.Errorf("count completed tickets: %w", err)
	}
	return count, nil
}

// ListCompleted returns the drawing-eligible tickets of a lottery in
// issuance order.
func (r *TicketRepo) ListCompleted(ctx context.Context, tx pgx.Tx, lotteryID uuid.UUID) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets
		WHERE lottery_id = $1 AND payment_status = $2 ORDER BY ticket_number ASC`

	rows, err := tx.Query(ctx, query, lotteryID, domain.TicketStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("list completed tickets: %w", err)
	}
	defer rows.Close()

	return scanTickets(rows)
}

// UpdateStatusByTransaction moves every ticket of a transaction to the given
// payment status within a database transaction.
func (r *TicketRepo) UpdateStatusByTransaction(ctx context.Context, tx pgx.Tx, transactionID uuid.UUID, status domain.TicketStatus) error {
	query := `UPDATE tickets SET payment_status = $1 WHERE transaction_id = $2`

	if _, err := tx.Exec(ctx, query, status, transactionID); err != nil {
		return fmt.Errorf("update tickets by transaction: %w", err)
	}
	return nil
}

// ListByBuyer fetches all tickets ever issued to a buyer, newest first.
func (r *TicketRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE buyer_id = $1 ORDER BY purchased_at DESC`

	rows, err := r.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by buyer: %w", err)
	}
	defer rows.Close()

	return scanTickets(rows)
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(
			&t.ID, &t.LotteryID, &t.BuyerID, &t.TransactionID,
			&t.TicketNumber, &t.PaymentStatus, &t.PurchasedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

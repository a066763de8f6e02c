package postgres

import (
	"context"
	"errors"
	"fmt"

	"mercato-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DrawingRepo implements ports.DrawingRepository. Rows are append-only; the
// unique constraint on lottery_id backs the at-most-one-drawing guarantee at
// the storage level.
type DrawingRepo struct {
	pool Pool
}

// NewDrawingRepo creates a new DrawingRepo.
func NewDrawingRepo(pool Pool) *DrawingRepo {
	return &DrawingRepo{pool: pool}
}

const drawingColumns = `id, lottery_id, winning_ticket_id, winner_id, prize_amount, status, drawn_at`

// Create inserts a winner drawing within a database transaction.
func (r *DrawingRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.WinnerDrawing) error {
	query := `INSERT INTO winner_drawings (id, lottery_id, winning_ticket_id, winner_id, prize_amount, status, drawn_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		d.ID, d.LotteryID, d.WinningTicketID, d.WinnerID,
		d.PrizeAmount, d.Status, d.DrawnAt,
	)
	if err != nil {
		return fmt.Errorf("insert winner drawing: %w", err)
	}
	return nil
}

// GetByLotteryID fetches the drawing for a lottery (without locking).
func (r *DrawingRepo) GetByLotteryID(ctx context.Context, lotteryID uuid.UUID) (*domain.WinnerDrawing, error) {
	query := `SELECT ` + drawingColumns + ` FROM winner_drawings WHERE lottery_id = $1`
	return scanDrawing(r.pool.QueryRow(ctx, query, lotteryID))
}

// GetByLotteryIDLocked is the in-lock double check of the drawing path:
// called under the lottery row lock to catch a drawing committed by a racing
// caller before this one acquired the lock.
func (r *DrawingRepo) GetByLotteryIDLocked(ctx context.Context, tx pgx.Tx, lotteryID uuid.UUID) (*domain.WinnerDrawing, error) {
	query := `SELECT ` + drawingColumns + ` FROM winner_drawings WHERE lottery_id = $1`
	return scanDrawing(tx.QueryRow(ctx, query, lotteryID))
}

func scanDrawing(row pgx.Row) (*domain.WinnerDrawing, error) {
	d := &domain.WinnerDrawing{}
	err := row.Scan(
		&d.ID, &d.LotteryID, &d.WinningTicketID, &d.WinnerID,
		&d.PrizeAmount, &d.Status, &d.DrawnAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan winner drawing: %w", err)
	}
	return d, nil
}

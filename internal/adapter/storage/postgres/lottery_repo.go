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

// lockNotAvailable is the PostgreSQL error code raised when lock_timeout
// fires on a FOR UPDATE read.
const lockNotAvailable = "55P03"

// LotteryRepo implements ports.LotteryRepository.
type LotteryRepo struct {
	pool Pool
}

// NewLotteryRepo creates a new LotteryRepo.
func NewLotteryRepo(pool Pool) *LotteryRepo {
	return &LotteryRepo{pool: pool}
}

const lotteryColumns = `id, seller_id, title, item_value, item_count, ticket_price, status, kyc_completed, expiration_date, created_at, updated_at`

// Create inserts a new lottery.
func (r *LotteryRepo) Create(ctx context.Context, l *domain.Lottery) error {
	query := `INSERT INTO lotteries (id, seller_id, title, item_value, item_count, ticket_price, status, kyc_completed, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		l.ID, l.SellerID, l.Title, l.ItemValue, l.ItemCount,
		l.TicketPrice, l.Status, l.KycCompleted, l.ExpirationDate,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lottery: %w", err)
	}
	return nil
}

// GetByID fetches a lottery by its UUID (without locking).
func (r *LotteryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lottery, error) {
	query := `SELECT ` + lotteryColumns + ` FROM lotteries WHERE id = $1`
	return scanLottery(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a lottery by ID with pessimistic locking.
// This MUST be called within a transaction. A lock_timeout expiry is mapped
// to the lock-timeout error so callers can retry.
func (r *LotteryRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Lottery, error) {
	query := `SELECT ` + lotteryColumns + ` FROM lotteries WHERE id = $1 FOR UPDATE`

	l, err := scanLottery(tx.QueryRow(ctx, query, id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == lockNotAvailable {
			return nil, apperror.ErrLockTimeout(err)
		}
		return nil, err
	}
	return l, nil
}

// UpdateStatus moves the lottery to the given status within a transaction.
// An expiration of nil leaves the stored expiration date untouched.
func (r *LotteryRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.LotteryStatus, kycCompleted bool, expiration *time.Time) error {
	query := `UPDATE lotteries
		SET status = $1, kyc_completed = $2, expiration_date = COALESCE($3, expiration_date), updated_at = NOW()
		WHERE id = $4`

	tag, err := tx.Exec(ctx, query, status, kycCompleted, expiration, id)
	if err != nil {
		return fmt.Errorf("update lottery status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lottery not found: %s", id)
	}
	return nil
}

// ListActive fetches all currently active lotteries, newest first.
func (r *LotteryRepo) ListActive(ctx context.Context) ([]domain.Lottery, error) {
	query := `SELECT ` + lotteryColumns + ` FROM lotteries WHERE status = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, domain.LotteryStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active lotteries: %w", err)
	}
	defer rows.Close()

	var lotteries []domain.Lottery
	for rows.Next() {
		var l domain.Lottery
		if err := rows.Scan(
			&l.ID, &l.SellerID, &l.Title, &l.ItemValue, &l.ItemCount,
			&l.TicketPrice, &l.Status, &l.KycCompleted, &l.ExpirationDate,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lottery: %w", err)
		}
		lotteries = append(lotteries, l)
	}
	return lotteries, rows.Err()
}

// ListDrawCandidates returns ids of closed lotteries whose cooling-off period
// has elapsed and that have no drawing yet. The sweep feeds these to the draw
// queue.
func (r *LotteryRepo) ListDrawCandidates(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	query := `SELECT l.id FROM lotteries l
		LEFT JOIN winner_drawings d ON d.lottery_id = l.id
		WHERE l.status = $1 AND l.expiration_date <= $2 AND d.id IS NULL
		ORDER BY l.expiration_date ASC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, domain.LotteryStatusClosed, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list draw candidates: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan draw candidate: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanLottery(row pgx.Row) (*domain.Lottery, error) {
	l := &domain.Lottery{}
	err := row.Scan(
		&l.ID, &l.SellerID, &l.Title, &l.ItemValue, &l.ItemCount,
		&l.TicketPrice, &l.Status, &l.KycCompleted, &l.ExpirationDate,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan lottery: %w", err)
	}
	return l, nil
}

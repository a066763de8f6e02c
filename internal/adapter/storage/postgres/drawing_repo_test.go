package postgres

import (
	"context"
	"testing"
	"time"

	"mercato-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDrawing(lotteryID uuid.UUID) *domain.WinnerDrawing {
	return &domain.WinnerDrawing{
		ID:              uuid.New(),
		LotteryID:       lotteryID,
		WinningTicketID: uuid.New(),
		WinnerID:        uuid.New(),
		PrizeAmount:     10000,
		Status:          domain.DrawingStatusCompleted,
		DrawnAt:         time.Now().UTC().Truncate(time.Microsecond),
	}
}

func drawingColumnNames() []string {
	return []string{"id", "lottery_id", "winning_ticket_id", "winner_id", "prize_amount", "status", "drawn_at"}
}

func drawingRow(d *domain.WinnerDrawing) *pgxmock.Rows {
	return pgxmock.NewRows(drawingColumnNames()).AddRow(
		d.ID, d.LotteryID, d.WinningTicketID, d.WinnerID,
		d.PrizeAmount, d.Status, d.DrawnAt,
	)
}

func TestDrawingRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDrawingRepo(mock)
	d := newTestDrawing(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO winner_drawings").
		WithArgs(d.ID, d.LotteryID, d.WinningTicketID, d.WinnerID,
			d.PrizeAmount, d.Status, d.DrawnAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, d)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDrawingRepo_GetByLotteryID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDrawingRepo(mock)
	d := newTestDrawing(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM winner_drawings WHERE lottery_id").
		WithArgs(d.LotteryID).
		WillReturnRows(drawingRow(d))

	result, err := repo.GetByLotteryID(context.Background(), d.LotteryID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, d.WinningTicketID, result.WinningTicketID)
	assert.Equal(t, int64(10000), result.PrizeAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDrawingRepo_GetByLotteryID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDrawingRepo(mock)
	lotteryID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM winner_drawings WHERE lottery_id").
		WithArgs(lotteryID).
		WillReturnRows(pgxmock.NewRows(drawingColumnNames()))

	result, err := repo.GetByLotteryID(context.Background(), lotteryID)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDrawingRepo_GetByLotteryIDLocked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDrawingRepo(mock)
	d := newTestDrawing(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM winner_drawings WHERE lottery_id").
		WithArgs(d.LotteryID).
		WillReturnRows(drawingRow(d))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByLotteryIDLocked(context.Background(), tx, d.LotteryID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, d.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

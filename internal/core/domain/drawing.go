package domain

import (
	"time"

	"github.com/google/uuid"
)

// DrawingStatus represents the state of a winner drawing record.
type DrawingStatus string

const (
	DrawingStatusPending   DrawingStatus = "pending"
	DrawingStatusCompleted DrawingStatus = "completed"
	DrawingStatusCancelled DrawingStatus = "cancelled"
)

// WinnerDrawing is the single, append-only record of a lottery's drawing.
// At most one row exists per lottery, enforced by a unique constraint and by
// the locked drawing path. Never mutated after creation.
type WinnerDrawing struct {
	ID              uuid.UUID     `json:"id"`
	LotteryID       uuid.UUID     `json:"lottery_id"`
	WinningTicketID uuid.UUID     `json:"winning_ticket_id"`
	WinnerID        uuid.UUID     `json:"winner_id"`
	PrizeAmount     int64         `json:"prize_amount"`
	Status          DrawingStatus `json:"status"`
	DrawnAt         time.Time     `json:"drawn_at"`
}

// NewWinnerDrawing records the drawn ticket. PrizeAmount is the lottery's
// item value.
func NewWinnerDrawing(lotteryID uuid.UUID, winning *Ticket, prizeAmount int64) *WinnerDrawing {
	return &WinnerDrawing{
		ID:              uuid.New(),
		LotteryID:       lotteryID,
		WinningTicketID: winning.ID,
		WinnerID:        winning.BuyerID,
		PrizeAmount:     prizeAmount,
		Status:          DrawingStatusCompleted,
		DrawnAt:         time.Now().UTC(),
	}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// LotteryStatus represents the lifecycle state of a lottery.
type LotteryStatus string

const (
	LotteryStatusDraft     LotteryStatus = "draft"
	LotteryStatusActive    LotteryStatus = "active"
	LotteryStatusClosed    LotteryStatus = "closed"
	LotteryStatusDrawn     LotteryStatus = "drawn"
	LotteryStatusCompleted LotteryStatus = "completed"
	LotteryStatusCancelled LotteryStatus = "cancelled"
)

// CloseReason describes why a lottery left the active state.
type CloseReason string

const (
	CloseReasonSoldOut CloseReason = "sold_out"
	CloseReasonManual  CloseReason = "manual"
)

// Lottery is a raffle over a single item. ItemValue and TicketPrice are in
// cents; TicketPrice is derived once at creation and frozen afterwards.
// Invariant: Status == active implies KycCompleted.
type Lottery struct {
	ID             uuid.UUID     `json:"id"`
	SellerID       uuid.UUID     `json:"seller_id"`
	Title          string        `json:"title"`
	ItemValue      int64         `json:"item_value"`
	ItemCount      int           `json:"item_count"`
	TicketPrice    int64         `json:"ticket_price"`
	Status         LotteryStatus `json:"status"`
	KycCompleted   bool          `json:"kyc_completed"`
	ExpirationDate *time.Time    `json:"expiration_date,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// NewLottery builds a draft lottery with the ticket price frozen.
func NewLottery(sellerID uuid.UUID, title string, itemValue int64, itemCount int) *Lottery {
	now := time.Now().UTC()
	return &Lottery{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Title:       title,
		ItemValue:   itemValue,
		ItemCount:   itemCount,
		TicketPrice: TicketPrice(itemValue, itemCount),
		Status:      LotteryStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsExpired reports whether the lottery's expiration date has passed.
func (l *Lottery) IsExpired(now time.Time) bool {
	return l.ExpirationDate != nil && !l.ExpirationDate.After(now)
}

// CanTransition reports whether a state-machine edge exists from the current
// status to the target. Cancellation additionally requires the no-completed-
// tickets check, which needs persisted state and lives in the service.
func (l *Lottery) CanTransition(to LotteryStatus) bool {
	switch to {
	case LotteryStatusActive:
		return l.Status == LotteryStatusDraft
	case LotteryStatusClosed:
		return l.Status == LotteryStatusActive
	case LotteryStatusDrawn:
		return l.Status == LotteryStatusClosed
	case LotteryStatusCompleted:
		return l.Status == LotteryStatusDrawn
	case LotteryStatusCancelled:
		return l.Status == LotteryStatusDraft || l.Status == LotteryStatusActive
	default:
		return false
	}
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the payment lifecycle of a ticket.
type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusProcessing TicketStatus = "processing"
	TicketStatusFailed     TicketStatus = "failed"
	TicketStatusCompleted  TicketStatus = "completed"
	TicketStatusRefunded   TicketStatus = "refunded"
)

// Ticket is a numbered unit of participation in one lottery. Everything but
// PaymentStatus is immutable after issuance; only the payment ledger mutates
// PaymentStatus. Ticket numbers are never reused, even after failure or
// refund.
type Ticket struct {
	ID            uuid.UUID    `json:"id"`
	LotteryID     uuid.UUID    `json:"lottery_id"`
	BuyerID       uuid.UUID    `json:"buyer_id"`
	TransactionID uuid.UUID    `json:"transaction_id"`
	TicketNumber  string       `json:"ticket_number"`
	PaymentStatus TicketStatus `json:"payment_status"`
	PurchasedAt   time.Time    `json:"purchased_at"`
}

// FormatTicketNumber renders the per-lottery sequential ticket number.
// Sequences are strictly increasing in allocation order; the %04d pad widens
// naturally past 9999.
func FormatTicketNumber(lotteryID uuid.UUID, seq int) string {
	return fmt.Sprintf("LOTTERY-%s-%04d", lotteryID, seq)
}

// OccupiesStock reports whether the ticket counts against the lottery's
// remaining stock. Failed tickets keep their number but release the slot.
func (t *Ticket) OccupiesStock() bool {
	return t.PaymentStatus != TicketStatusFailed
}

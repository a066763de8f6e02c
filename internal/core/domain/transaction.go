package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the lifecycle state of a payment transaction.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusCompleted  TransactionStatus = "completed"
	TransactionStatusFailed     TransactionStatus = "failed"
	TransactionStatusRefunded   TransactionStatus = "refunded"
	TransactionStatusCancelled  TransactionStatus = "cancelled"
)

// PaymentTransaction covers all tickets of one purchase batch. Amounts are in
// cents. Commission and NetAmount are computed exactly once at creation and
// never recomputed, so a commission-rate change cannot drift an in-flight
// transaction. Invariant: Commission + NetAmount == Amount.
type PaymentTransaction struct {
	ID             uuid.UUID         `json:"id"`
	LotteryID      uuid.UUID         `json:"lottery_id"`
	BuyerID        uuid.UUID         `json:"buyer_id"`
	TicketCount    int               `json:"ticket_count"`
	Amount         int64             `json:"amount"`
	Commission     int64             `json:"commission"`
	NetAmount      int64             `json:"net_amount"`
	Status         TransactionStatus `json:"status"`
	GatewayOrderID *string           `json:"gateway_order_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
}

// NewPaymentTransaction creates a pending transaction with the commission
// split frozen.
func NewPaymentTransaction(lotteryID, buyerID uuid.UUID, ticketCount int, amount, rateBps int64) *PaymentTransaction {
	commission, net := Split(amount, rateBps)
	return &PaymentTransaction{
		ID:          uuid.New(),
		LotteryID:   lotteryID,
		BuyerID:     buyerID,
		TicketCount: ticketCount,
		Amount:      amount,
		Commission:  commission,
		NetAmount:   net,
		Status:      TransactionStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsTerminal returns true if the transaction is in a final state.
func (t *PaymentTransaction) IsTerminal() bool {
	return t.Status == TransactionStatusCompleted ||
		t.Status == TransactionStatusFailed ||
		t.Status == TransactionStatusRefunded ||
		t.Status == TransactionStatusCancelled
}

// IsRefundable returns true if this transaction can be refunded.
func (t *PaymentTransaction) IsRefundable() bool {
	return t.Status == TransactionStatusCompleted
}

// CheckSplit verifies the frozen commission split still balances.
func (t *PaymentTransaction) CheckSplit() bool {
	return t.Commission+t.NetAmount == t.Amount
}

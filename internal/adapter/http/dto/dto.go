package dto

// CreateLotteryRequest is the request body for lottery creation.
// Amounts are in cents.
type CreateLotteryRequest struct {
	SellerID  string `json:"seller_id" binding:"required,uuid"`
	Title     string `json:"title" binding:"required,not_blank,max=200"`
	ItemValue int64  `json:"item_value" binding:"required,gt=0"`
	ItemCount int    `json:"item_count" binding:"required,gte=1"`
}

// PurchaseRequest is the request body for a ticket purchase.
type PurchaseRequest struct {
	BuyerID string `json:"buyer_id" binding:"required,uuid"`
	Count   int    `json:"count" binding:"required,gte=1"`
}

// FailTransactionRequest is the request body for the operator fail endpoint.
type FailTransactionRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// WebhookRequest is the gateway callback body. EventType selects which ledger
// operation runs; the order id correlates back to the transaction.
type WebhookRequest struct {
	OrderID   string `json:"order_id" binding:"required,max=100"`
	EventType string `json:"event_type" binding:"required,oneof=payment.captured payment.failed payment.refunded"`
	Reason    string `json:"reason,omitempty"`
}

// LotteryResponse is the response body for a single lottery.
type LotteryResponse struct {
	ID             string  `json:"id"`
	SellerID       string  `json:"seller_id"`
	Title          string  `json:"title"`
	ItemValue      int64   `json:"item_value"`
	ItemCount      int     `json:"item_count"`
	TicketPrice    int64   `json:"ticket_price"`
	Status         string  `json:"status"`
	KycCompleted   bool    `json:"kyc_completed"`
	ExpirationDate *string `json:"expiration_date,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// LotteryListItem is a lottery plus its live stock counters, as returned by
// the active-lottery listing.
type LotteryListItem struct {
	LotteryResponse
	SoldCount int `json:"sold_count"`
	Remaining int `json:"remaining"`
}

// LotteryListResponse wraps the active-lottery listing.
type LotteryListResponse struct {
	Items []LotteryListItem `json:"items"`
	Total int               `json:"total"`
}

// TicketResponse is the response body for a single ticket.
type TicketResponse struct {
	ID            string `json:"id"`
	LotteryID     string `json:"lottery_id"`
	BuyerID       string `json:"buyer_id"`
	TransactionID string `json:"transaction_id"`
	TicketNumber  string `json:"ticket_number"`
	PaymentStatus string `json:"payment_status"`
	PurchasedAt   string `json:"purchased_at"`
}

// TicketListResponse wraps a buyer's ticket listing.
type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
	Total int              `json:"total"`
}

// TransactionResponse is the response body for a payment transaction.
type TransactionResponse struct {
	ID             string  `json:"id"`
	LotteryID      string  `json:"lottery_id"`
	BuyerID        string  `json:"buyer_id"`
	TicketCount    int     `json:"ticket_count"`
	Amount         int64   `json:"amount"`
	Commission     int64   `json:"commission"`
	NetAmount      int64   `json:"net_amount"`
	Status         string  `json:"status"`
	GatewayOrderID *string `json:"gateway_order_id,omitempty"`
	CreatedAt      string  `json:"created_at"`
	CompletedAt    *string `json:"completed_at,omitempty"`
}

// PurchaseResponse is the atomic outcome of a purchase: every ticket of the
// batch plus the covering transaction.
type PurchaseResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Tickets     []TicketResponse    `json:"tickets"`
}

// DrawingResponse is the response body for a winner drawing.
type DrawingResponse struct {
	ID              string `json:"id"`
	LotteryID       string `json:"lottery_id"`
	WinningTicketID string `json:"winning_ticket_id"`
	WinnerID        string `json:"winner_id"`
	PrizeAmount     int64  `json:"prize_amount"`
	Status          string `json:"status"`
	DrawnAt         string `json:"drawn_at"`
}

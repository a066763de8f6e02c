package handler

import (
	"time"

	"mercato-core/internal/adapter/http/dto"
	"mercato-core/internal/core/domain"
	"mercato-core/internal/core/ports"
	"mercato-core/pkg/apperror"
	"mercato-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// Gateway webhook event types.
const (
	eventPaymentCaptured = "payment.captured"
	eventPaymentFailed   = "payment.failed"
	eventPaymentRefunded = "payment.refunded"
)

// LedgerHandler handles payment-ledger endpoints: the gateway webhook and the
// operator transaction controls. Every operation is safe to re-deliver.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// Webhook handles POST /api/v1/payments/webhook. The gateway correlates by
// order id; the event type selects the ledger transition.
func (h *LedgerHandler) Webhook(c *gin.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.ledgerSvc.GetByGatewayOrderID(c.Request.Context(), req.OrderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch req.EventType {
	case eventPaymentCaptured:
		txn, err = h.ledgerSvc.MarkCompleted(c.Request.Context(), txn.ID)
	case eventPaymentFailed:
		reason := req.Reason
		if reason == "" {
			reason = "gateway reported failure"
		}
		txn, err = h.ledgerSvc.MarkFailed(c.Request.Context(), txn.ID, reason)
	case eventPaymentRefunded:
		txn, err = h.ledgerSvc.Refund(c.Request.Context(), txn.ID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(txn))
}

// Complete handles POST /api/v1/transactions/:id/complete.
func (h *LedgerHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	txn, err := h.ledgerSvc.MarkCompleted(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(txn))
}

// Fail handles POST /api/v1/transactions/:id/fail.
func (h *LedgerHandler) Fail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.FailTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.ledgerSvc.MarkFailed(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(txn))
}

// Refund handles POST /api/v1/transactions/:id/refund.
func (h *LedgerHandler) Refund(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	txn, err := h.ledgerSvc.Refund(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(txn))
}

// toTransactionResponse converts domain.PaymentTransaction to DTO.
func toTransactionResponse(t *domain.PaymentTransaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:             t.ID.String(),
		LotteryID:      t.LotteryID.String(),
		BuyerID:        t.BuyerID.String(),
		TicketCount:    t.TicketCount,
		Amount:         t.Amount,
		Commission:     t.Commission,
		NetAmount:      t.NetAmount,
		Status:         string(t.Status),
		GatewayOrderID: t.GatewayOrderID,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
	if t.CompletedAt != nil {
		s := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}

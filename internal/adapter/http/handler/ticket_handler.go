package handler

import (
	"time"

	"mercato-core/internal/adapter/http/dto"
	"mercato-core/internal/core/domain"
	"mercato-core/internal/core/ports"
	"mercato-core/pkg/apperror"
	"mercato-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TicketHandler handles ticket issuance endpoints.
type TicketHandler struct {
	issuanceSvc ports.IssuanceService
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(issuanceSvc ports.IssuanceService) *TicketHandler {
	return &TicketHandler{issuanceSvc: issuanceSvc}
}

// Purchase handles POST /api/v1/lotteries/:id/tickets. The whole batch
// succeeds or nothing does; partial fills are never issued.
func (h *TicketHandler) Purchase(c *gin.Context) {
	lotteryID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	buyerID, err := uuid.Parse(req.BuyerID)
	if err != nil {
		response.Error(c, apperror.Validation("buyer_id must be a UUID"))
		return
	}

	result, err := h.issuanceSvc.Purchase(c.Request.Context(), ports.PurchaseRequest{
		LotteryID: lotteryID,
		BuyerID:   buyerID,
		Count:     req.Count,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	tickets := make([]dto.TicketResponse, 0, len(result.Tickets))
	for _, tk := range result.Tickets {
		tickets = append(tickets, toTicketResponse(tk))
	}

	response.Created(c, dto.PurchaseResponse{
		Transaction: toTransactionResponse(result.Transaction),
		Tickets:     tickets,
	})
}

// ListByBuyer handles GET /api/v1/buyers/:id/tickets.
func (h *TicketHandler) ListByBuyer(c *gin.Context) {
	buyerID, ok := pathID(c)
	if !ok {
		return
	}

	tickets, err := h.issuanceSvc.ListByBuyer(c.Request.Context(), buyerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, toTicketResponse(&tickets[i]))
	}

	response.OK(c, dto.TicketListResponse{Items: items, Total: len(items)})
}

// toTicketResponse converts domain.Ticket to DTO.
func toTicketResponse(t *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:            t.ID.String(),
		LotteryID:     t.LotteryID.String(),
		BuyerID:       t.BuyerID.String(),
		TransactionID: t.TransactionID.String(),
		TicketNumber:  t.TicketNumber,
		PaymentStatus: string(t.PaymentStatus),
		PurchasedAt:   t.PurchasedAt.Format(time.RFC3339),
	}
}

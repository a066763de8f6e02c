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

// LotteryHandler handles lottery lifecycle and drawing endpoints.
type LotteryHandler struct {
	lotterySvc ports.LotteryService
	drawingSvc ports.DrawingService
}

// NewLotteryHandler creates a new LotteryHandler.
func NewLotteryHandler(lotterySvc ports.LotteryService, drawingSvc ports.DrawingService) *LotteryHandler {
	return &LotteryHandler{lotterySvc: lotterySvc, drawingSvc: drawingSvc}
}

// Create handles POST /api/v1/lotteries.
func (h *LotteryHandler) Create(c *gin.Context) {
	var req dto.CreateLotteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		response.Error(c, apperror.Validation("seller_id must be a UUID"))
		return
	}

	lottery, err := h.lotterySvc.Create(c.Request.Context(), ports.CreateLotteryRequest{
		SellerID:  sellerID,
		Title:     req.Title,
		ItemValue: req.ItemValue,
		ItemCount: req.ItemCount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toLotteryResponse(lottery))
}

// List handles GET /api/v1/lotteries.
func (h *LotteryHandler) List(c *gin.Context) {
	stats, err := h.lotterySvc.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.LotteryListItem, 0, len(stats))
	for _, s := range stats {
		l := s.Lottery
		items = append(items, dto.LotteryListItem{
			LotteryResponse: toLotteryResponse(&l),
			SoldCount:       s.SoldCount,
			Remaining:       s.Remaining,
		})
	}

	response.OK(c, dto.LotteryListResponse{Items: items, Total: len(items)})
}

// Get handles GET /api/v1/lotteries/:id.
func (h *LotteryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	lottery, err := h.lotterySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toLotteryResponse(lottery))
}

// Activate handles POST /api/v1/lotteries/:id/activate.
func (h *LotteryHandler) Activate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	lottery, err := h.lotterySvc.Activate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toLotteryResponse(lottery))
}

// Close handles POST /api/v1/lotteries/:id/close.
func (h *LotteryHandler) Close(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	lottery, err := h.lotterySvc.Close(c.Request.Context(), id, domain.CloseReasonManual)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toLotteryResponse(lottery))
}

// Cancel handles POST /api/v1/lotteries/:id/cancel.
func (h *LotteryHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	lottery, err := h.lotterySvc.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toLotteryResponse(lottery))
}

// Draw handles POST /api/v1/lotteries/:id/draw — the manual drawing trigger.
// Safe to call redundantly; an already-drawn lottery returns its drawing.
func (h *LotteryHandler) Draw(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	drawing, err := h.drawingSvc.DrawWinner(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toDrawingResponse(drawing))
}

// GetDrawing handles GET /api/v1/lotteries/:id/drawing.
func (h *LotteryHandler) GetDrawing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	drawing, err := h.drawingSvc.GetByLotteryID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toDrawingResponse(drawing))
}

// pathID parses the :id path parameter, writing a validation error on failure.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// toLotteryResponse converts domain.Lottery to DTO.
func toLotteryResponse(l *domain.Lottery) dto.LotteryResponse {
	resp := dto.LotteryResponse{
		ID:           l.ID.String(),
		SellerID:     l.SellerID.String(),
		Title:        l.Title,
		ItemValue:    l.ItemValue,
		ItemCount:    l.ItemCount,
		TicketPrice:  l.TicketPrice,
		Status:       string(l.Status),
		KycCompleted: l.KycCompleted,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
	}
	if l.ExpirationDate != nil {
		s := l.ExpirationDate.Format(time.RFC3339)
		resp.ExpirationDate = &s
	}
	return resp
}

// toDrawingResponse converts domain.WinnerDrawing to DTO.
func toDrawingResponse(d *domain.WinnerDrawing) dto.DrawingResponse {
	return dto.DrawingResponse{
		ID:              d.ID.String(),
		LotteryID:       d.LotteryID.String(),
		WinningTicketID: d.WinningTicketID.String(),
		WinnerID:        d.WinnerID.String(),
		PrizeAmount:     d.PrizeAmount,
		Status:          string(d.Status),
		DrawnAt:         d.DrawnAt.Format(time.RFC3339),
	}
}

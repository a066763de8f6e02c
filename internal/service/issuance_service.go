package service

import (
	"context"
	"fmt"
	"time"

	"mercato-core/config"
	"mercato-core/internal/core/domain"
	"mercato-core/internal/core/ports"
	"mercato-core/internal/metrics"
	"mercato-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// IssuanceServiceImpl implements ports.IssuanceService. All stock checks and
// number allocation happen under the lottery row lock, so concurrent
// purchases serialize and stock can never oversell.
type IssuanceServiceImpl struct {
	lotteryRepo ports.LotteryRepository
	ticketRepo  ports.TicketRepository
	txRepo      ports.TransactionRepository
	gateway     ports.PaymentGateway
	publisher   ports.EventPublisher
	transactor  ports.DBTransactor
	cfg         config.LotteryConfig
	log         zerolog.Logger
}

// NewIssuanceService creates a new IssuanceServiceImpl.
func NewIssuanceService(
	lotteryRepo ports.LotteryRepository,
	ticketRepo ports.TicketRepository,
	txRepo ports.TransactionRepository,
	gateway ports.PaymentGateway,
	publisher ports.EventPublisher,
	transactor ports.DBTransactor,
	cfg config.LotteryConfig,
	log zerolog.Logger,
) *IssuanceServiceImpl {
	return &IssuanceServiceImpl{
		lotteryRepo: lotteryRepo,
		ticketRepo:  ticketRepo,
		txRepo:      txRepo,
		gateway:     gateway,
		publisher:   publisher,
		transactor:  transactor,
		cfg:         cfg,
		log:         log,
	}
}

// Purchase issues req.Count tickets atomically: all tickets plus one covering
// payment transaction, or nothing. The commission split is frozen on the
// transaction here and never recomputed.
func (s *IssuanceServiceImpl) Purchase(ctx context.Context, req ports.PurchaseRequest) (*ports.PurchaseResult, error) {
	if req.Count <= 0 {
		metrics.PurchasesRejected.WithLabelValues("invalid").Inc()
		return nil, apperror.ErrInvalidQuantity()
	}
	if req.BuyerID == uuid.Nil {
		metrics.PurchasesRejected.WithLabelValues("invalid").Inc()
		return nil, apperror.Validation("buyer id is required")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	lottery, err := s.lotteryRepo.GetByIDForUpdate(ctx, dbTx, req.LotteryID)
	if err != nil {
		return nil, err
	}
	if lottery == nil {
		metrics.PurchasesRejected.WithLabelValues("not_found").Inc()
		return nil, apperror.ErrNotFound("lottery")
	}
	if lottery.Status != domain.LotteryStatusActive {
		metrics.PurchasesRejected.WithLabelValues("inactive").Inc()
		return nil, apperror.Validation(fmt.Sprintf("lottery in status %s is not open for purchase", lottery.Status))
	}
	now := time.Now().UTC()
	if lottery.IsExpired(now) {
		metrics.PurchasesRejected.WithLabelValues("expired").Inc()
		return nil, apperror.ErrLotteryExpired()
	}

	// Stock: every non-failed ticket occupies a slot, paid or not.
	issued, err := s.ticketRepo.CountIssued(ctx, dbTx, req.LotteryID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("count issued: %w", err))
	}
	remaining := lottery.ItemCount - issued
	if req.Count > remaining {
		metrics.PurchasesRejected.WithLabelValues("sold_out").Inc()
		return nil, apperror.ErrSoldOut(remaining)
	}

	// Numbers continue from the highest ever allocated, so a failed ticket's
	// number is never reissued.
	maxSeq, err := s.ticketRepo.MaxSequence(ctx, dbTx, req.LotteryID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("max sequence: %w", err))
	}

	amount := lottery.TicketPrice * int64(req.Count)
	txn := domain.NewPaymentTransaction(req.LotteryID, req.BuyerID, req.Count, amount, s.cfg.CommissionRateBps)

	tickets := make([]*domain.Ticket, 0, req.Count)
	for i := 1; i <= req.Count; i++ {
		tickets = append(tickets, &domain.Ticket{
			ID:            uuid.New(),
			LotteryID:     req.LotteryID,
			BuyerID:       req.BuyerID,
			TransactionID: txn.ID,
			TicketNumber:  domain.FormatTicketNumber(req.LotteryID, maxSeq+i),
			PaymentStatus: domain.TicketStatusPending,
			PurchasedAt:   now,
		})
	}

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create transaction: %w", err))
	}
	if err := s.ticketRepo.CreateBatch(ctx, dbTx, tickets); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create tickets: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit purchase: %w", err))
	}

	metrics.TicketsIssued.Add(float64(req.Count))
	s.publishEvent(ctx, domain.NewEvent(domain.EventTicketPurchased, req.LotteryID, map[string]any{
		"buyer_id":       req.BuyerID.String(),
		"transaction_id": txn.ID.String(),
		"ticket_count":   req.Count,
		"amount":         amount,
	}))

	// Open the gateway order outside the lock. A gateway outage leaves the
	// transaction pending; the webhook path settles it later.
	if orderID, gwErr := s.gateway.CreateOrder(ctx, amount, txn.ID.String()); gwErr != nil {
		s.log.Warn().Err(gwErr).
			Str("transaction_id", txn.ID.String()).
			Msg("gateway order creation failed, transaction stays pending")
	} else if setErr := s.txRepo.SetGatewayOrderID(ctx, txn.ID, orderID); setErr != nil {
		s.log.Error().Err(setErr).
			Str("transaction_id", txn.ID.String()).
			Str("gateway_order_id", orderID).
			Msg("failed to record gateway order id")
	} else {
		txn.GatewayOrderID = &orderID
	}

	s.log.Info().
		Str("lottery_id", req.LotteryID.String()).
		Str("buyer_id", req.BuyerID.String()).
		Str("transaction_id", txn.ID.String()).
		Int("ticket_count", req.Count).
		Int64("amount", amount).
		Msg("tickets issued")

	return &ports.PurchaseResult{Tickets: tickets, Transaction: txn}, nil
}

// ListByBuyer fetches all tickets ever issued to a buyer.
func (s *IssuanceServiceImpl) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]domain.Ticket, error) {
	tickets, err := s.ticketRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list tickets by buyer: %w", err))
	}
	return tickets, nil
}

func (s *IssuanceServiceImpl) publishEvent(ctx context.Context, event domain.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).
			Str("event_type", string(event.Type)).
			Str("lottery_id", event.LotteryID.String()).
			Msg("event publish failed")
	}
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mercato-core/config"
	"mercato-core/internal/core/domain"
	"mercato-core/internal/core/ports"
	"mercato-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LotteryServiceImpl implements ports.LotteryService.
type LotteryServiceImpl struct {
	lotteryRepo ports.LotteryRepository
	ticketRepo  ports.TicketRepository
	verifier    ports.SellerVerifier
	publisher   ports.EventPublisher
	transactor  ports.DBTransactor
	cfg         config.LotteryConfig
	log         zerolog.Logger
}

// NewLotteryService creates a new LotteryServiceImpl.
func NewLotteryService(
	lotteryRepo ports.LotteryRepository,
	ticketRepo ports.TicketRepository,
	verifier ports.SellerVerifier,
	publisher ports.EventPublisher,
	transactor ports.DBTransactor,
	cfg config.LotteryConfig,
	log zerolog.Logger,
) *LotteryServiceImpl {
	return &LotteryServiceImpl{
		lotteryRepo: lotteryRepo,
		ticketRepo:  ticketRepo,
		verifier:    verifier,
		publisher:   publisher,
		transactor:  transactor,
		cfg:         cfg,
		log:         log,
	}
}

// Create validates the request and persists a draft lottery with the ticket
// price frozen.
func (s *LotteryServiceImpl) Create(ctx context.Context, req ports.CreateLotteryRequest) (*domain.Lottery, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.Validation("title must not be empty")
	}
	if req.ItemValue <= 0 {
		return nil, apperror.Validation("item value must be positive")
	}
	if req.ItemCount <= 0 {
		return nil, apperror.Validation("item count must be positive")
	}
	if req.SellerID == uuid.Nil {
		return nil, apperror.Validation("seller id is required")
	}

	lottery := domain.NewLottery(req.SellerID, req.Title, req.ItemValue, req.ItemCount)
	if err := s.lotteryRepo.Create(ctx, lottery); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create lottery: %w", err))
	}

	s.log.Info().
		Str("lottery_id", lottery.ID.String()).
		Str("seller_id", lottery.SellerID.String()).
		Int64("ticket_price", lottery.TicketPrice).
		Msg("lottery created")
	return lottery, nil
}

// Activate moves a draft lottery to active after verifying the seller's KYC.
// The KYC outcome is stamped on the lottery so later transitions never
// re-query the verifier.
func (s *LotteryServiceImpl) Activate(ctx context.Context, lotteryID uuid.UUID) (*domain.Lottery, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	lottery, err := s.lotteryRepo.GetByIDForUpdate(ctx, dbTx, lotteryID)
	if err != nil {
		return nil, err
	}
	if lottery == nil {
		return nil, apperror.ErrNotFound("lottery")
	}
	if !lottery.CanTransition(domain.LotteryStatusActive) {
		return nil, apperror.ErrInvalidTransition(string(lottery.Status), string(domain.LotteryStatusActive))
	}

	verified, err := s.verifier.IsSellerVerified(ctx, lottery.SellerID)
	if err != nil {
		return nil, apperror.ErrExternalDependency("seller verification", err)
	}
	if !verified {
		return nil, apperror.ErrKycRequired()
	}

	if err := s.lotteryRepo.UpdateStatus(ctx, dbTx, lotteryID, domain.LotteryStatusActive, true, nil); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("activate lottery: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit activate: %w", err))
	}

	lottery.Status = domain.LotteryStatusActive
	lottery.KycCompleted = true

	s.publishEvent(ctx, domain.NewEvent(domain.EventLotteryActivated, lotteryID, nil))
	s.log.Info().Str("lottery_id", lotteryID.String()).Msg("lottery activated")
	return lottery, nil
}

// Close manually closes an active lottery and starts the cooling-off clock.
func (s *LotteryServiceImpl) Close(ctx context.Context, lotteryID uuid.UUID, reason domain.CloseReason) (*domain.Lottery, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	lottery, err := s.lotteryRepo.GetByIDForUpdate(ctx, dbTx, lotteryID)
	if err != nil {
		return nil, err
	}
	if lottery == nil {
		return nil, apperror.ErrNotFound("lottery")
	}
	if !lottery.CanTransition(domain.LotteryStatusClosed) {
		return nil, apperror.ErrInvalidTransition(string(lottery.Status), string(domain.LotteryStatusClosed))
	}

	expiration := time.Now().UTC().Add(time.Duration(s.cfg.CoolingOffDays) * 24 * time.Hour)
	if err := s.lotteryRepo.UpdateStatus(ctx, dbTx, lotteryID, domain.LotteryStatusClosed, lottery.KycCompleted, &expiration); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("close lottery: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit close: %w", err))
	}

	lottery.Status = domain.LotteryStatusClosed
	lottery.ExpirationDate = &expiration

	s.publishEvent(ctx, domain.NewEvent(domain.EventLotteryClosed, lotteryID, map[string]any{
		"reason":          string(reason),
		"expiration_date": expiration,
	}))
	s.log.Info().
		Str("lottery_id", lotteryID.String()).
		Str("reason", string(reason)).
		Time("expiration_date", expiration).
		Msg("lottery closed")
	return lottery, nil
}

// Cancel aborts a draft or active lottery. Refused once any ticket has been
// paid; refunds must run first.
func (s *LotteryServiceImpl) Cancel(ctx context.Context, lotteryID uuid.UUID) (*domain.Lottery, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	lottery, err := s.lotteryRepo.GetByIDForUpdate(ctx, dbTx, lotteryID)
	if err != nil {
		return nil, err
	}
	if lottery == nil {
		return nil, apperror.ErrNotFound("lottery")
	}
	if !lottery.CanTransition(domain.LotteryStatusCancelled) {
		return nil, apperror.ErrInvalidTransition(string(lottery.Status), string(domain.LotteryStatusCancelled))
	}

	paid, err := s.ticketRepo.CountCompleted(ctx, dbTx, lotteryID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("count paid tickets: %w", err))
	}
	if paid > 0 {
		return nil, apperror.ErrCancellationNotAllowed()
	}

	if err := s.lotteryRepo.UpdateStatus(ctx, dbTx, lotteryID, domain.LotteryStatusCancelled, lottery.KycCompleted, nil); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("cancel lottery: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit cancel: %w", err))
	}

	lottery.Status = domain.LotteryStatusCancelled

	s.publishEvent(ctx, domain.NewEvent(domain.EventLotteryCancelled, lotteryID, nil))
	s.log.Info().Str("lottery_id", lotteryID.String()).Msg("lottery cancelled")
	return lottery, nil
}

// GetByID fetches a single lottery.
func (s *LotteryServiceImpl) GetByID(ctx context.Context, lotteryID uuid.UUID) (*domain.Lottery, error) {
	lottery, err := s.lotteryRepo.GetByID(ctx, lotteryID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get lottery: %w", err))
	}
	if lottery == nil {
		return nil, apperror.ErrNotFound("lottery")
	}
	return lottery, nil
}

// ListActive fetches all currently active lotteries with their stock
// counters. The counts are a read snapshot, not a lock.
func (s *LotteryServiceImpl) ListActive(ctx context.Context) ([]ports.LotteryStats, error) {
	lotteries, err := s.lotteryRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list active lotteries: %w", err))
	}
	if len(lotteries) == 0 {
		return []ports.LotteryStats{}, nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	stats := make([]ports.LotteryStats, 0, len(lotteries))
	for _, l := range lotteries {
		sold, err := s.ticketRepo.CountIssued(ctx, dbTx, l.ID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("count issued tickets: %w", err))
		}
		stats = append(stats, ports.LotteryStats{
			Lottery:   l,
			SoldCount: sold,
			Remaining: l.ItemCount - sold,
		})
	}
	return stats, nil
}

func (s *LotteryServiceImpl) publishEvent(ctx context.Context, event domain.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).
			Str("event_type", string(event.Type)).
			Str("lottery_id", event.LotteryID.String()).
			Msg("event publish failed")
	}
}

package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"mercato-core/internal/core/domain"
	"mercato-core/internal/core/ports"
	"mercato-core/internal/metrics"
	"mercato-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DrawingServiceImpl implements ports.DrawingService. The drawing runs under
// the lottery row lock with a double check of the drawings table inside the
// lock, so concurrent and redundant draw calls converge on one winner.
type DrawingServiceImpl struct {
	lotteryRepo ports.LotteryRepository
	ticketRepo  ports.TicketRepository
	drawingRepo ports.DrawingRepository
	publisher   ports.EventPublisher
	transactor  ports.DBTransactor
	log         zerolog.Logger

	// randIntN is swapped out in tests for a deterministic pick.
	randIntN func(n int) int
}

// NewDrawingService creates a new DrawingServiceImpl.
func NewDrawingService(
	lotteryRepo ports.LotteryRepository,
	ticketRepo ports.TicketRepository,
	drawingRepo ports.DrawingRepository,
	publisher ports.EventPublisher,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *DrawingServiceImpl {
	return &DrawingServiceImpl{
		lotteryRepo: lotteryRepo,
		ticketRepo:  ticketRepo,
		drawingRepo: drawingRepo,
		publisher:   publisher,
		transactor:  transactor,
		log:         log,
		randIntN:    rand.IntN,
	}
}

// DrawWinner draws uniformly over the lottery's completed tickets and records
// the single winner. Returns the pre-existing drawing when one was already
// made; at most one drawing ever exists per lottery.
func (s *DrawingServiceImpl) DrawWinner(ctx context.Context, lotteryID uuid.UUID) (*domain.WinnerDrawing, error) {
	// Unlocked fast path: most redundant calls end here.
	existing, err := s.drawingRepo.GetByLotteryID(ctx, lotteryID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("check existing drawing: %w", err))
	}
	if existing != nil {
		metrics.DrawsSkipped.Inc()
		return existing, nil
	}

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

	// Double check inside the lock: a racing caller may have committed a
	// drawing between the fast path and lock acquisition.
	existing, err = s.drawingRepo.GetByLotteryIDLocked(ctx, dbTx, lotteryID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("locked drawing check: %w", err))
	}
	if existing != nil {
		metrics.DrawsSkipped.Inc()
		return existing, nil
	}

	if lottery.Status != domain.LotteryStatusClosed {
		return nil, apperror.ErrLotteryNotClosed(string(lottery.Status))
	}

	eligible, err := s.ticketRepo.ListCompleted(ctx, dbTx, lotteryID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list eligible tickets: %w", err))
	}
	if len(eligible) == 0 {
		return nil, apperror.ErrNoEligibleTickets()
	}

	winning := eligible[s.randIntN(len(eligible))]
	drawing := domain.NewWinnerDrawing(lotteryID, &winning, lottery.ItemValue)

	if err := s.drawingRepo.Create(ctx, dbTx, drawing); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create drawing: %w", err))
	}
	if err := s.lotteryRepo.UpdateStatus(ctx, dbTx, lotteryID, domain.LotteryStatusDrawn, lottery.KycCompleted, nil); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("mark lottery drawn: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit drawing: %w", err))
	}

	metrics.Drawings.Inc()
	s.publishEvent(ctx, domain.NewEvent(domain.EventLotteryDrawn, lotteryID, map[string]any{
		"drawing_id":    drawing.ID.String(),
		"winner_id":     drawing.WinnerID.String(),
		"ticket_number": winning.TicketNumber,
		"prize_amount":  drawing.PrizeAmount,
	}))
	s.log.Info().
		Str("lottery_id", lotteryID.String()).
		Str("winner_id", drawing.WinnerID.String()).
		Str("ticket_number", winning.TicketNumber).
		Int64("prize_amount", drawing.PrizeAmount).
		Int("eligible_tickets", len(eligible)).
		Msg("winner drawn")
	return drawing, nil
}

// GetByLotteryID fetches the drawing for a lottery.
func (s *DrawingServiceImpl) GetByLotteryID(ctx context.Context, lotteryID uuid.UUID) (*domain.WinnerDrawing, error) {
	drawing, err := s.drawingRepo.GetByLotteryID(ctx, lotteryID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get drawing: %w", err))
	}
	if drawing == nil {
		return nil, apperror.ErrNotFound("winner drawing")
	}
	return drawing, nil
}

func (s *DrawingServiceImpl) publishEvent(ctx context.Context, event domain.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).
			Str("event_type", string(event.Type)).
			Str("lottery_id", event.LotteryID.String()).
			Msg("event publish failed")
	}
}

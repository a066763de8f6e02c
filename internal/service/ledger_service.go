package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mercato-core/config"
	"mercato-core/internal/core/domain"
	"mercato-core/internal/core/ports"
	"mercato-core/internal/metrics"
	"mercato-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const completionTTL = 24 * time.Hour

// LedgerServiceImpl implements ports.LedgerService. All three transitions are
// idempotent: re-delivering a gateway callback returns the already-settled
// transaction instead of double-applying it.
type LedgerServiceImpl struct {
	txRepo      ports.TransactionRepository
	ticketRepo  ports.TicketRepository
	lotteryRepo ports.LotteryRepository
	gateway     ports.PaymentGateway
	cache       ports.CompletionCache
	publisher   ports.EventPublisher
	transactor  ports.DBTransactor
	cfg         config.LotteryConfig
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	txRepo ports.TransactionRepository,
	ticketRepo ports.TicketRepository,
	lotteryRepo ports.LotteryRepository,
	gateway ports.PaymentGateway,
	cache ports.CompletionCache,
	publisher ports.EventPublisher,
	transactor ports.DBTransactor,
	cfg config.LotteryConfig,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		txRepo:      txRepo,
		ticketRepo:  ticketRepo,
		lotteryRepo: lotteryRepo,
		gateway:     gateway,
		cache:       cache,
		publisher:   publisher,
		transactor:  transactor,
		cfg:         cfg,
		log:         log,
	}
}

// MarkCompleted settles a transaction: the transaction and all its tickets
// move to completed, and if that fills the lottery the sell-out closure runs
// in the same atomic unit. Safe to re-deliver.
func (s *LedgerServiceImpl) MarkCompleted(ctx context.Context, transactionID uuid.UUID) (*domain.PaymentTransaction, error) {
	// Layer 1: Redis fast path for re-delivered webhooks.
	cached, err := s.cache.Get(ctx, transactionID)
	if err != nil {
		s.log.Warn().Err(err).Str("transaction_id", transactionID.String()).Msg("completion cache check failed, falling through to DB")
	}
	if cached != nil {
		return s.unmarshalCachedTransaction(cached)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Layer 2: locked DB check, the source of truth.
	txn, err := s.txRepo.GetByIDForUpdate(ctx, dbTx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("payment transaction")
	}
	if txn.Status == domain.TransactionStatusCompleted {
		s.cacheCompletion(ctx, txn)
		return txn, nil
	}
	if txn.IsTerminal() {
		return nil, apperror.ErrTransactionTerminal(string(txn.Status))
	}
	if !txn.CheckSplit() {
		return nil, apperror.ErrInvariantViolation(
			fmt.Sprintf("transaction %s split does not balance", txn.ID))
	}

	now := time.Now().UTC()
	if err := s.txRepo.UpdateStatus(ctx, dbTx, transactionID, domain.TransactionStatusCompleted, &now); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("complete transaction: %w", err))
	}
	if err := s.ticketRepo.UpdateStatusByTransaction(ctx, dbTx, transactionID, domain.TicketStatusCompleted); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("complete tickets: %w", err))
	}

	soldOut, expiration, err := s.closeIfFilled(ctx, dbTx, txn.LotteryID)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit completion: %w", err))
	}

	txn.Status = domain.TransactionStatusCompleted
	txn.CompletedAt = &now

	metrics.PaymentsCompleted.Inc()
	s.cacheCompletion(ctx, txn)
	s.publishEvent(ctx, domain.NewEvent(domain.EventPaymentCompleted, txn.LotteryID, map[string]any{
		"transaction_id": txn.ID.String(),
		"amount":         txn.Amount,
		"commission":     txn.Commission,
		"net_amount":     txn.NetAmount,
	}))
	if soldOut {
		s.publishEvent(ctx, domain.NewEvent(domain.EventLotteryClosed, txn.LotteryID, map[string]any{
			"reason":          string(domain.CloseReasonSoldOut),
			"expiration_date": expiration,
		}))
	}

	// Settle the gateway order. A capture failure is retried out of band;
	// the ledger state is already committed.
	if txn.GatewayOrderID != nil {
		if _, capErr := s.gateway.Capture(ctx, *txn.GatewayOrderID); capErr != nil {
			s.log.Warn().Err(capErr).
				Str("transaction_id", txn.ID.String()).
				Str("gateway_order_id", *txn.GatewayOrderID).
				Msg("gateway capture failed")
		}
	}

	s.log.Info().
		Str("transaction_id", txn.ID.String()).
		Str("lottery_id", txn.LotteryID.String()).
		Bool("sold_out", soldOut).
		Msg("payment completed")
	return txn, nil
}

// MarkFailed voids a transaction: its tickets keep their numbers but release
// their stock. Safe to re-deliver.
func (s *LedgerServiceImpl) MarkFailed(ctx context.Context, transactionID uuid.UUID, reason string) (*domain.PaymentTransaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err := s.txRepo.GetByIDForUpdate(ctx, dbTx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("payment transaction")
	}
	if txn.Status == domain.TransactionStatusFailed {
		return txn, nil
	}
	if txn.IsTerminal() {
		return nil, apperror.ErrTransactionTerminal(string(txn.Status))
	}

	if err := s.txRepo.UpdateStatus(ctx, dbTx, transactionID, domain.TransactionStatusFailed, nil); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("fail transaction: %w", err))
	}
	if err := s.ticketRepo.UpdateStatusByTransaction(ctx, dbTx, transactionID, domain.TicketStatusFailed); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("fail tickets: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit failure: %w", err))
	}

	txn.Status = domain.TransactionStatusFailed

	metrics.PaymentsFailed.Inc()
	s.publishEvent(ctx, domain.NewEvent(domain.EventPaymentFailed, txn.LotteryID, map[string]any{
		"transaction_id": txn.ID.String(),
		"reason":         reason,
	}))
	s.log.Info().
		Str("transaction_id", txn.ID.String()).
		Str("reason", reason).
		Msg("payment failed")
	return txn, nil
}

// Refund reverses a completed transaction. Refunded tickets stay numbered and
// keep their stock slot but lose drawing eligibility.
func (s *LedgerServiceImpl) Refund(ctx context.Context, transactionID uuid.UUID) (*domain.PaymentTransaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err := s.txRepo.GetByIDForUpdate(ctx, dbTx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("payment transaction")
	}
	if txn.Status == domain.TransactionStatusRefunded {
		return txn, nil
	}
	if !txn.IsRefundable() {
		return nil, apperror.ErrTransactionNotRefundable(string(txn.Status))
	}

	if err := s.txRepo.UpdateStatus(ctx, dbTx, transactionID, domain.TransactionStatusRefunded, nil); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("refund transaction: %w", err))
	}
	if err := s.ticketRepo.UpdateStatusByTransaction(ctx, dbTx, transactionID, domain.TicketStatusRefunded); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("refund tickets: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit refund: %w", err))
	}

	txn.Status = domain.TransactionStatusRefunded

	metrics.PaymentsRefunded.Inc()
	s.publishEvent(ctx, domain.NewEvent(domain.EventPaymentRefunded, txn.LotteryID, map[string]any{
		"transaction_id": txn.ID.String(),
		"amount":         txn.Amount,
	}))
	s.log.Info().Str("transaction_id", txn.ID.String()).Msg("payment refunded")
	return txn, nil
}

// GetByGatewayOrderID resolves a gateway webhook to its transaction.
func (s *LedgerServiceImpl) GetByGatewayOrderID(ctx context.Context, orderID string) (*domain.PaymentTransaction, error) {
	txn, err := s.txRepo.GetByGatewayOrderID(ctx, orderID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get by gateway order: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("payment transaction")
	}
	return txn, nil
}

// closeIfFilled runs the sell-out closure under the lottery row lock when the
// completing payment fills the lottery: every slot paid, cooling-off started.
func (s *LedgerServiceImpl) closeIfFilled(ctx context.Context, dbTx pgx.Tx, lotteryID uuid.UUID) (bool, time.Time, error) {
	lottery, err := s.lotteryRepo.GetByIDForUpdate(ctx, dbTx, lotteryID)
	if err != nil {
		return false, time.Time{}, err
	}
	if lottery == nil {
		return false, time.Time{}, apperror.ErrInvariantViolation(
			fmt.Sprintf("transaction references missing lottery %s", lotteryID))
	}
	if lottery.Status != domain.LotteryStatusActive {
		return false, time.Time{}, nil
	}

	paid, err := s.ticketRepo.CountCompleted(ctx, dbTx, lotteryID)
	if err != nil {
		return false, time.Time{}, apperror.ErrDatabaseError(fmt.Errorf("count paid tickets: %w", err))
	}
	if paid < lottery.ItemCount {
		return false, time.Time{}, nil
	}

	expiration := time.Now().UTC().Add(time.Duration(s.cfg.CoolingOffDays) * 24 * time.Hour)
	if err := s.lotteryRepo.UpdateStatus(ctx, dbTx, lotteryID, domain.LotteryStatusClosed, lottery.KycCompleted, &expiration); err != nil {
		return false, time.Time{}, apperror.ErrDatabaseError(fmt.Errorf("close filled lottery: %w", err))
	}
	return true, expiration, nil
}

func (s *LedgerServiceImpl) cacheCompletion(ctx context.Context, txn *domain.PaymentTransaction) {
	payload, err := json.Marshal(txn)
	if err != nil {
		s.log.Error().Err(err).Str("transaction_id", txn.ID.String()).Msg("marshal completion cache entry")
		return
	}
	if err := s.cache.Set(ctx, txn.ID, payload, completionTTL); err != nil {
		s.log.Warn().Err(err).Str("transaction_id", txn.ID.String()).Msg("completion cache write failed")
	}
}

func (s *LedgerServiceImpl) unmarshalCachedTransaction(data []byte) (*domain.PaymentTransaction, error) {
	txn := &domain.PaymentTransaction{}
	if err := json.Unmarshal(data, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached transaction: %w", err))
	}
	return txn, nil
}

func (s *LedgerServiceImpl) publishEvent(ctx context.Context, event domain.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).
			Str("event_type", string(event.Type)).
			Str("lottery_id", event.LotteryID.String()).
			Msg("event publish failed")
	}
}

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"mercato-core/internal/core/domain"
	"mercato-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawingFixture struct {
	drawing  *DrawingServiceImpl
	issuance *IssuanceServiceImpl
	ledger   *LedgerServiceImpl
	store    *memStore
	pub      *fakePublisher
}

func newDrawingFixture() *drawingFixture {
	store := newMemStore()
	gw := &fakeGateway{}
	pub := &fakePublisher{}
	cfg := testLotteryConfig()

	return &drawingFixture{
		drawing: NewDrawingService(
			&memLotteryRepo{s: store},
			&memTicketRepo{s: store},
			&memDrawingRepo{s: store},
			pub, store, zerolog.Nop(),
		),
		issuance: NewIssuanceService(
			&memLotteryRepo{s: store},
			&memTicketRepo{s: store},
			&memTxnRepo{s: store},
			gw, pub, store, cfg, zerolog.Nop(),
		),
		ledger: NewLedgerService(
			&memTxnRepo{s: store},
			&memTicketRepo{s: store},
			&memLotteryRepo{s: store},
			gw, newFakeCompletionCache(), pub, store, cfg, zerolog.Nop(),
		),
		store: store,
		pub:   pub,
	}
}

// closedLotteryWithPaidTickets drives a lottery through purchase and payment
// until it closes sold-out, then expires the cooling-off period.
func (f *drawingFixture) closedLotteryWithPaidTickets(t *testing.T, itemCount int) *domain.Lottery {
	t.Helper()
	l := seedLottery(f.store, domain.LotteryStatusActive, 10000, itemCount)
	ctx := context.Background()

	for i := 0; i < itemCount; i++ {
		result, err := f.issuance.Purchase(ctx, ports.PurchaseRequest{
			LotteryID: l.ID, BuyerID: uuid.New(), Count: 1,
		})
		require.NoError(t, err)
		_, err = f.ledger.MarkCompleted(ctx, result.Transaction.ID)
		require.NoError(t, err)
	}

	stored := f.store.lotteries[l.ID]
	require.Equal(t, domain.LotteryStatusClosed, stored.Status)
	past := time.Now().UTC().Add(-time.Minute)
	stored.ExpirationDate = &past
	return stored
}

func TestDrawingService_DrawWinner(t *testing.T) {
	f := newDrawingFixture()
	l := f.closedLotteryWithPaidTickets(t, 3)
	f.drawing.randIntN = func(n int) int { return 1 } // second ticket by number

	drawing, err := f.drawing.DrawWinner(context.Background(), l.ID)
	require.NoError(t, err)

	assert.Equal(t, l.ID, drawing.LotteryID)
	assert.Equal(t, int64(10000), drawing.PrizeAmount, "prize is the item value")
	assert.Equal(t, domain.DrawingStatusCompleted, drawing.Status)

	winner := f.store.tickets[drawing.WinningTicketID]
	require.NotNil(t, winner)
	assert.Equal(t, domain.FormatTicketNumber(l.ID, 2), winner.TicketNumber)
	assert.Equal(t, winner.BuyerID, drawing.WinnerID)

	assert.Equal(t, domain.LotteryStatusDrawn, f.store.lotteries[l.ID].Status)

	events := f.pub.byType(domain.EventLotteryDrawn)
	require.Len(t, events, 1)
	assert.Equal(t, drawing.WinnerID.String(), events[0].Payload["winner_id"])
}

func TestDrawingService_DrawWinner_Idempotent(t *testing.T) {
	f := newDrawingFixture()
	l := f.closedLotteryWithPaidTickets(t, 2)
	ctx := context.Background()

	first, err := f.drawing.DrawWinner(ctx, l.ID)
	require.NoError(t, err)

	second, err := f.drawing.DrawWinner(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.WinningTicketID, second.WinningTicketID)
	assert.Len(t, f.pub.byType(domain.EventLotteryDrawn), 1, "drawn event must fire once")
}

func TestDrawingService_DrawWinner_NotClosed(t *testing.T) {
	f := newDrawingFixture()
	l := seedLottery(f.store, domain.LotteryStatusActive, 10000, 2)

	_, err := f.drawing.DrawWinner(context.Background(), l.ID)
	assertAppCode(t, err, "DRW_002")
}

func TestDrawingService_DrawWinner_NoEligibleTickets(t *testing.T) {
	f := newDrawingFixture()
	// Closed manually with only pending tickets: nothing eligible.
	l := seedLottery(f.store, domain.LotteryStatusClosed, 10000, 2)
	id := uuid.New()
	f.store.tickets[id] = &domain.Ticket{
		ID: id, LotteryID: l.ID, BuyerID: uuid.New(),
		TicketNumber:  domain.FormatTicketNumber(l.ID, 1),
		PaymentStatus: domain.TicketStatusPending,
	}

	_, err := f.drawing.DrawWinner(context.Background(), l.ID)
	assertAppCode(t, err, "DRW_001")
	assert.Equal(t, domain.LotteryStatusClosed, f.store.lotteries[l.ID].Status, "failed draw must not advance the lottery")
}

func TestDrawingService_DrawWinner_NotFound(t *testing.T) {
	f := newDrawingFixture()

	_, err := f.drawing.DrawWinner(context.Background(), uuid.New())
	assertAppCode(t, err, "VAL_002")
}

func TestDrawingService_DrawWinner_ConcurrentSingleWinner(t *testing.T) {
	f := newDrawingFixture()
	l := f.closedLotteryWithPaidTickets(t, 4)
	const callers = 10

	var wg sync.WaitGroup
	drawings := make([]*domain.WinnerDrawing, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			drawings[i], errs[i] = f.drawing.DrawWinner(context.Background(), l.ID)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, drawings[i])
		assert.Equal(t, drawings[0].ID, drawings[i].ID, "every caller must see the same drawing")
	}
	assert.Len(t, f.store.drawings, 1)
	assert.Len(t, f.pub.byType(domain.EventLotteryDrawn), 1)
}

func TestDrawingService_GetByLotteryID(t *testing.T) {
	f := newDrawingFixture()
	l := f.closedLotteryWithPaidTickets(t, 2)
	ctx := context.Background()

	_, err := f.drawing.GetByLotteryID(ctx, l.ID)
	assertAppCode(t, err, "VAL_002")

	drawn, err := f.drawing.DrawWinner(ctx, l.ID)
	require.NoError(t, err)

	got, err := f.drawing.GetByLotteryID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, drawn.ID, got.ID)
}

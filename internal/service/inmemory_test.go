package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"mercato-core/internal/core/domain"
	"mercato-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory stand-in for PostgreSQL that emulates row locks:
// ForUpdate reads take a per-row mutex that is held until the transaction
// commits or rolls back. That preserves the serialization the services rely
// on, so the concurrency tests exercise the real locking protocol.
type memStore struct {
	mu        sync.Mutex
	lotteries map[uuid.UUID]*domain.Lottery
	tickets   map[uuid.UUID]*domain.Ticket
	txns      map[uuid.UUID]*domain.PaymentTransaction
	drawings  map[uuid.UUID]*domain.WinnerDrawing // keyed by lottery id
	rowLocks  map[string]*sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{
		lotteries: make(map[uuid.UUID]*domain.Lottery),
		tickets:   make(map[uuid.UUID]*domain.Ticket),
		txns:      make(map[uuid.UUID]*domain.PaymentTransaction),
		drawings:  make(map[uuid.UUID]*domain.WinnerDrawing),
		rowLocks:  make(map[string]*sync.Mutex),
	}
}

// Begin implements ports.DBTransactor.
func (s *memStore) Begin(_ context.Context) (pgx.Tx, error) {
	return &memTx{store: s}, nil
}

func (s *memStore) acquire(tx pgx.Tx, key string) {
	s.mu.Lock()
	m, ok := s.rowLocks[key]
	if !ok {
		m = &sync.Mutex{}
		s.rowLocks[key] = m
	}
	s.mu.Unlock()

	m.Lock()
	tx.(*memTx).held = append(tx.(*memTx).held, m)
}

// memTx embeds pgx.Tx for interface shape only; services call nothing but
// Commit and Rollback on it. Both release the held row locks exactly once,
// so the teacher-style `defer Rollback` after Commit is a no-op.
type memTx struct {
	pgx.Tx
	store *memStore
	held  []*sync.Mutex
	mu    sync.Mutex
	done  bool
}

func (t *memTx) Commit(_ context.Context) error {
	t.release()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	t.release()
	return nil
}

func (t *memTx) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
}

// --- lottery repository fake ---

type memLotteryRepo struct{ s *memStore }

func (r *memLotteryRepo) Create(_ context.Context, l *domain.Lottery) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *l
	r.s.lotteries[l.ID] = &cp
	return nil
}

func (r *memLotteryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Lottery, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lotteries[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLotteryRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Lottery, error) {
	r.s.acquire(tx, "lottery:"+id.String())
	return r.GetByID(ctx, id)
}

func (r *memLotteryRepo) UpdateStatus(_ context.Context, _ pgx.Tx, id uuid.UUID, status domain.LotteryStatus, kycCompleted bool, expiration *time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lotteries[id]
	if !ok {
		return pgx.ErrNoRows
	}
	l.Status = status
	l.KycCompleted = kycCompleted
	if expiration != nil {
		exp := *expiration
		l.ExpirationDate = &exp
	}
	l.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memLotteryRepo) ListActive(_ context.Context) ([]domain.Lottery, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Lottery
	for _, l := range r.s.lotteries {
		if l.Status == domain.LotteryStatusActive {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *memLotteryRepo) ListDrawCandidates(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uuid.UUID
	for _, l := range r.s.lotteries {
		if l.Status != domain.LotteryStatusClosed || l.ExpirationDate == nil || l.ExpirationDate.After(now) {
			continue
		}
		if _, drawn := r.s.drawings[l.ID]; drawn {
			continue
		}
		ids = append(ids, l.ID)
		if len(ids) == limit {
			break
		}
	}
	return ids, nil
}

// --- ticket repository fake ---

type memTicketRepo struct{ s *memStore }

func (r *memTicketRepo) CreateBatch(_ context.Context, _ pgx.Tx, tickets []*domain.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range tickets {
		cp := *t
		r.s.tickets[t.ID] = &cp
	}
	return nil
}

func (r *memTicketRepo) MaxSequence(_ context.Context, _ pgx.Tx, lotteryID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	maxSeq := 0
	for _, t := range r.s.tickets {
		if t.LotteryID != lotteryID {
			continue
		}
		parts := strings.Split(t.TicketNumber, "-")
		seq, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return 0, err
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq, nil
}

func (r *memTicketRepo) CountIssued(_ context.Context, _ pgx.Tx, lotteryID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, t := range r.s.tickets {
		if t.LotteryID == lotteryID && t.PaymentStatus != domain.TicketStatusFailed {
			count++
		}
	}
	return count, nil
}

func (r *memTicketRepo) CountCompleted(_ context.Context, _ pgx.Tx, lotteryID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, t := range r.s.tickets {
		if t.LotteryID == lotteryID && t.PaymentStatus == domain.TicketStatusCompleted {
			count++
		}
	}
	return count, nil
}

func (r *memTicketRepo) ListCompleted(_ context.Context, _ pgx.Tx, lotteryID uuid.UUID) ([]domain.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Ticket
	for _, t := range r.s.tickets {
		if t.LotteryID == lotteryID && t.PaymentStatus == domain.TicketStatusCompleted {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TicketNumber < out[j].TicketNumber })
	return out, nil
}

func (r *memTicketRepo) UpdateStatusByTransaction(_ context.Context, _ pgx.Tx, transactionID uuid.UUID, status domain.TicketStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tickets {
		if t.TransactionID == transactionID {
			t.PaymentStatus = status
		}
	}
	return nil
}

func (r *memTicketRepo) ListByBuyer(_ context.Context, buyerID uuid.UUID) ([]domain.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Ticket
	for _, t := range r.s.tickets {
		if t.BuyerID == buyerID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TicketNumber < out[j].TicketNumber })
	return out, nil
}

// --- transaction repository fake ---

type memTxnRepo struct{ s *memStore }

func (r *memTxnRepo) Create(_ context.Context, _ pgx.Tx, txn *domain.PaymentTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *txn
	r.s.txns[txn.ID] = &cp
	return nil
}

func (r *memTxnRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.PaymentTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	txn, ok := r.s.txns[id]
	if !ok {
		return nil, nil
	}
	cp := *txn
	return &cp, nil
}

func (r *memTxnRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PaymentTransaction, error) {
	r.s.acquire(tx, "txn:"+id.String())
	return r.GetByID(ctx, id)
}

func (r *memTxnRepo) GetByGatewayOrderID(_ context.Context, orderID string) (*domain.PaymentTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, txn := range r.s.txns {
		if txn.GatewayOrderID != nil && *txn.GatewayOrderID == orderID {
			cp := *txn
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTxnRepo) UpdateStatus(_ context.Context, _ pgx.Tx, id uuid.UUID, status domain.TransactionStatus, completedAt *time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	txn, ok := r.s.txns[id]
	if !ok {
		return pgx.ErrNoRows
	}
	txn.Status = status
	if completedAt != nil {
		ts := *completedAt
		txn.CompletedAt = &ts
	}
	return nil
}

func (r *memTxnRepo) SetGatewayOrderID(_ context.Context, id uuid.UUID, orderID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	txn, ok := r.s.txns[id]
	if !ok {
		return pgx.ErrNoRows
	}
	txn.GatewayOrderID = &orderID
	return nil
}

// --- drawing repository fake ---

type memDrawingRepo struct{ s *memStore }

func (r *memDrawingRepo) Create(_ context.Context, _ pgx.Tx, d *domain.WinnerDrawing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.drawings[d.LotteryID]; exists {
		return &duplicateDrawingError{lotteryID: d.LotteryID}
	}
	cp := *d
	r.s.drawings[d.LotteryID] = &cp
	return nil
}

func (r *memDrawingRepo) GetByLotteryID(_ context.Context, lotteryID uuid.UUID) (*domain.WinnerDrawing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.drawings[lotteryID]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDrawingRepo) GetByLotteryIDLocked(ctx context.Context, _ pgx.Tx, lotteryID uuid.UUID) (*domain.WinnerDrawing, error) {
	return r.GetByLotteryID(ctx, lotteryID)
}

type duplicateDrawingError struct{ lotteryID uuid.UUID }

func (e *duplicateDrawingError) Error() string {
	return "duplicate drawing for lottery " + e.lotteryID.String()
}

// --- collaborator fakes ---

type fakeVerifier struct {
	verified bool
	err      error
}

func (v *fakeVerifier) IsSellerVerified(_ context.Context, _ uuid.UUID) (bool, error) {
	return v.verified, v.err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *fakePublisher) Publish(_ context.Context, event domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) byType(t domain.EventType) []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []domain.Event
	for _, e := range p.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fakeGateway struct {
	mu        sync.Mutex
	createErr error
	orders    int
	captured  []string
}

func (g *fakeGateway) CreateOrder(_ context.Context, _ int64, reference string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return "", g.createErr
	}
	g.orders++
	return "gw-" + strconv.Itoa(g.orders) + "-" + reference[:8], nil
}

func (g *fakeGateway) Capture(_ context.Context, orderID string) (*ports.CaptureResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.captured = append(g.captured, orderID)
	return &ports.CaptureResult{OrderID: orderID, Captured: true}, nil
}

type fakeCompletionCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]byte
}

func newFakeCompletionCache() *fakeCompletionCache {
	return &fakeCompletionCache{entries: make(map[uuid.UUID][]byte)}
}

func (c *fakeCompletionCache) Get(_ context.Context, transactionID uuid.UUID) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[transactionID], nil
}

func (c *fakeCompletionCache) Set(_ context.Context, transactionID uuid.UUID, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[transactionID] = value
	return nil
}

package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"mercato-core/internal/core/ports"
	"mercato-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	dequeueTimeout = 5 * time.Second
	retryBackoff   = 500 * time.Millisecond
)

// Drawer consumes the draw queue with a bounded worker pool. Lock-timeout
// failures are retried with backoff; any other failure is logged and the
// lottery is left for the next sweep to re-enqueue.
type Drawer struct {
	drawingSvc ports.DrawingService
	queue      ports.DrawQueue
	workers    int
	maxRetries int
	log        zerolog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewDrawer creates a drawer with the given pool size and retry budget.
func NewDrawer(drawingSvc ports.DrawingService, queue ports.DrawQueue, workers, maxRetries int, log zerolog.Logger) *Drawer {
	if workers < 1 {
		workers = 1
	}
	return &Drawer{
		drawingSvc: drawingSvc,
		queue:      queue,
		workers:    workers,
		maxRetries: maxRetries,
		log:        log,
	}
}

// Start launches the worker pool.
func (d *Drawer) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run(ctx, i)
	}
	d.log.Info().Int("workers", d.workers).Msg("draw workers started")
}

// Stop signals the workers and waits for them to drain.
func (d *Drawer) Stop() {
	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()
}

func (d *Drawer) run(ctx context.Context, worker int) {
	defer d.wg.Done()
	log := d.log.With().Int("worker", worker).Logger()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		lotteryID, ok, err := d.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Msg("draw queue dequeue failed")
			continue
		}
		if !ok {
			continue
		}

		d.draw(ctx, log, lotteryID)
	}
}

// draw attempts the drawing with bounded retries on lock contention.
func (d *Drawer) draw(ctx context.Context, log zerolog.Logger, lotteryID uuid.UUID) {
	for attempt := 1; ; attempt++ {
		_, err := d.drawingSvc.DrawWinner(ctx, lotteryID)
		if err == nil {
			return
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "SYS_002" && attempt <= d.maxRetries {
			log.Warn().
				Str("lottery_id", lotteryID.String()).
				Int("attempt", attempt).
				Msg("drawing lock contention, retrying")
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
			continue
		}

		log.Error().Err(err).
			Str("lottery_id", lotteryID.String()).
			Msg("drawing failed")
		return
	}
}

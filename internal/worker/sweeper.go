// Package worker runs the background half of the engine: the expiration
// sweep that finds draw-ready lotteries and the worker pool that draws them.
package worker

import (
	"context"
	"time"

	"mercato-core/internal/core/ports"
	"mercato-core/internal/metrics"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

const sweepBatchSize = 100

// Sweeper periodically scans for closed lotteries whose cooling-off period
// has elapsed and feeds them to the draw queue. Enqueueing is at-least-once;
// the drawing service absorbs duplicates.
type Sweeper struct {
	lotteryRepo ports.LotteryRepository
	queue       ports.DrawQueue
	scheduler   *gocron.Scheduler
	interval    time.Duration
	log         zerolog.Logger
}

// NewSweeper creates a sweeper with the given scan interval.
func NewSweeper(lotteryRepo ports.LotteryRepository, queue ports.DrawQueue, interval time.Duration, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		lotteryRepo: lotteryRepo,
		queue:       queue,
		scheduler:   gocron.NewScheduler(time.UTC),
		interval:    interval,
		log:         log,
	}
}

// Start schedules the sweep and runs it asynchronously.
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.scheduler.Every(s.interval).Do(func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.log.Info().Dur("interval", s.interval).Msg("expiration sweeper started")
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	s.scheduler.Stop()
}

// Sweep runs one scan. Exported so a manual trigger and tests can run it
// directly.
func (s *Sweeper) Sweep(ctx context.Context) {
	metrics.SweepRuns.Inc()

	ids, err := s.lotteryRepo.ListDrawCandidates(ctx, time.Now().UTC(), sweepBatchSize)
	if err != nil {
		s.log.Error().Err(err).Msg("sweep: listing draw candidates failed")
		return
	}
	if len(ids) == 0 {
		return
	}

	enqueued := 0
	for _, id := range ids {
		if err := s.queue.Enqueue(ctx, id); err != nil {
			s.log.Error().Err(err).Str("lottery_id", id.String()).Msg("sweep: enqueue failed")
			continue
		}
		enqueued++
	}
	metrics.SweepEnqueued.Add(float64(enqueued))
	s.log.Info().Int("candidates", len(ids)).Int("enqueued", enqueued).Msg("sweep completed")
}

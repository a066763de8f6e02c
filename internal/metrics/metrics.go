// Package metrics exposes the engine's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicketsIssued counts tickets issued.
	TicketsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mercato_tickets_issued_total",
		Help: "Total number of tickets issued.",
	})

	// PurchasesRejected counts purchase attempts rejected before issuance,
	// labeled by reason (sold_out, expired, inactive, invalid).
	PurchasesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mercato_purchases_rejected_total",
		Help: "Total number of rejected purchase attempts.",
	}, []string{"reason"})

	// PaymentsCompleted counts transactions marked completed.
	PaymentsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mercato_payments_completed_total",
		Help: "Total number of payment transactions marked completed.",
	})

	// PaymentsFailed counts transactions marked failed.
	PaymentsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mercato_payments_failed_total",
		Help: "Total number of payment transactions marked failed.",
	})

	// PaymentsRefunded counts refunded transactions.
	PaymentsRefunded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mercato_payments_refunded_total",
		Help: "Total number of refunded payment transactions.",
	})

	// Drawings counts winner drawings actually performed.
	Drawings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mercato_drawings_total",
		Help: "Total number of winner drawings performed.",
	})

	// DrawsSkipped counts draw attempts that found an existing drawing.
	DrawsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mercato_draws_skipped_total",
		Help: "Total number of draw attempts skipped because a drawing already existed.",
	})

	// SweepRuns counts expiration sweep executions.
	SweepRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mercato_sweep_runs_total",
		Help: "Total number of expiration sweep runs.",
	})

	// SweepEnqueued counts lotteries the sweep enqueued for drawing.
	SweepEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mercato_sweep_enqueued_total",
		Help: "Total number of lotteries enqueued for drawing by the sweep.",
	})
)

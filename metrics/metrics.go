package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntakeOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_outcomes_total",
			Help: "Intake requests by terminal stage",
		},
		[]string{"stage"},
	)

	IntakeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_failures_total",
			Help: "Intake requests that failed, by error code",
		},
		[]string{"code"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "Latency of text-generation calls",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"operation"},
	)

	GenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_failures_total",
			Help: "Failed or unparsable text-generation calls",
		},
		[]string{"operation"},
	)

	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings materialized from confirmed matches",
		},
	)

	IdempotentReplays = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_idempotent_replays_total",
			Help: "Confirmations answered from a stored idempotency record",
		},
	)
)

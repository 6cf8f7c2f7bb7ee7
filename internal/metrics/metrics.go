package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"

	OperationAnalyzeMotivation = "analyze_motivation"
	OperationHostMessage       = "host_message"
)

var (
	AICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_ai_calls_total",
			Help: "Generative-text calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	AICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intake_ai_call_duration_seconds",
			Help:    "Duration of generative-text calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
		[]string{"operation"},
	)

	StateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_state_transitions_total",
			Help: "Intake view transitions",
		},
		[]string{"from", "to"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "intake_active_sessions",
			Help: "Intake sessions currently held in memory",
		},
	)
)

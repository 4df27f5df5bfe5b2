package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	answersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mitra",
			Name:      "answers_total",
			Help:      "Questions handled by outcome and detected language",
		},
		[]string{"outcome", "language"},
	)

	llmDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mitra",
			Name:      "llm_duration_seconds",
			Help:      "Duration of LLM calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~50s
		},
	)
)

package refresh

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	passesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mitra",
			Name:      "refresh_passes_total",
			Help:      "Total refresh passes by outcome",
		},
		[]string{"status"}, // "ok", "scan_failed", "skipped"
	)

	videosAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mitra",
			Name:      "videos_added_total",
			Help:      "Videos merged into the knowledge base",
		},
	)

	transcriptMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mitra",
			Name:      "transcript_misses_total",
			Help:      "Transcript acquisitions that found no usable track",
		},
	)

	knowledgeVideos = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mitra",
			Name:      "knowledge_videos",
			Help:      "Videos currently held in the knowledge base",
		},
	)

	passDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mitra",
			Name:      "refresh_pass_duration_seconds",
			Help:      "Duration of refresh passes in seconds",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s to ~1h
		},
	)
)

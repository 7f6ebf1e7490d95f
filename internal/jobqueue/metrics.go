package jobqueue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// queueDepth is only updated in the worker goroutine, so it has a single writer.
var (
	submissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "instaboard",
			Subsystem: "jobqueue",
			Name:      "submissions_total",
			Help:      "Jobs successfully accepted for execution.",
		},
	)

	queueFullTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "instaboard",
			Subsystem: "jobqueue",
			Name:      "queue_full_total",
			Help:      "Enqueue attempts that timed out on a full queue.",
		},
	)

	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "instaboard",
			Subsystem: "jobqueue",
			Name:      "run_duration_seconds",
			Help:      "Job execution latency.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "instaboard",
			Subsystem: "jobqueue",
			Name:      "queue_depth",
			Help:      "Current depth of the job queue.",
		},
	)
)

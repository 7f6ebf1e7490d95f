package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "instaboard_client",
			Name:      "fetch_total",
			Help:      "Directory fetches by outcome.",
		},
		[]string{"outcome"},
	)

	fetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "instaboard_client",
			Name:      "fetch_duration_seconds",
			Help:      "Directory fetch latency, including rate-limit waits.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func observeFetch(start time.Time, err error) {
	fetchDuration.Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	fetchTotal.WithLabelValues(outcome).Inc()
}

package directory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "instaboard",
			Subsystem: "directory",
			Name:      "transitions_total",
			Help:      "Phase transitions, labelled by the phase entered.",
		},
		[]string{"phase"},
	)

	droppedActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "instaboard",
			Subsystem: "directory",
			Name:      "dropped_actions_total",
			Help:      "Retry and load-more requests ignored because of the current phase.",
		},
		[]string{"action"},
	)

	recordsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "instaboard",
			Subsystem: "directory",
			Name:      "records",
			Help:      "Records held by the most recently updated directory.",
		},
	)
)

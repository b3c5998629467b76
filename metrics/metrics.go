// Package metrics exposes Prometheus instrumentation for the solve
// orchestrator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsAssignedTotal counts jobs placed on a route across every Solve call.
	JobsAssignedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vrpkit_jobs_assigned_total",
		Help: "Total jobs assigned to a route by the solver.",
	})

	// JobsUnassignedTotal counts jobs left unplaced across every Solve call.
	JobsUnassignedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vrpkit_jobs_unassigned_total",
		Help: "Total jobs the solver could not place on any route.",
	})

	// SearchesTotal counts heuristic searches run, labeled by whether local
	// search ran or was skipped via deduplication.
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vrpkit_searches_total",
		Help: "Total heuristic searches run by the orchestrator.",
	}, []string{"outcome"})

	// SearchDurationSeconds tracks wall-clock time per Solve call.
	SearchDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vrpkit_search_duration_seconds",
		Help:    "Duration of a full Solve call.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
	})

	// VehiclesUsed tracks the winning solution's vehicle count for the most
	// recent Solve call.
	VehiclesUsed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vrpkit_vehicles_used",
		Help: "Number of vehicles used by the most recent solve's winning result.",
	})
)

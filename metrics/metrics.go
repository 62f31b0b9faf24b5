// Package metrics exposes Prometheus instrumentation for the planning
// pipeline. Collectors register on the default registry; the CLI serves them
// on demand via --metrics-addr for long runs over large road networks.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roadsweep_plans_total",
		Help: "Total number of completed planning runs.",
	})

	ComponentsPlanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roadsweep_components_planned_total",
		Help: "Total number of road-graph components augmented and split.",
	})

	OddNodesMatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roadsweep_odd_nodes_matched_total",
		Help: "Total number of odd-degree nodes paired during augmentation.",
	})

	DuplicatedLength = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roadsweep_duplicated_length_total",
		Help: "Total road length added by edge duplication, in input units.",
	})

	RouteLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "roadsweep_route_length",
		Help:    "Per-vehicle route length distribution, in input units.",
		Buckets: prometheus.ExponentialBuckets(100, 4, 10),
	})

	PlanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "roadsweep_plan_duration_seconds",
		Help:    "Wall-clock duration of full planning runs.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	})
)

// Package metrics defines and registers all custom Prometheus metrics for the
// housing client. It is the single source of truth for metric names, labels,
// and help strings; metrics are registered with the default registry at
// package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "housing_client"

// ---- transport metrics ----

// RequestsTotal counts API requests by method and outcome.
// Labels:
//   - method: HTTP method (GET, POST, PUT, DELETE)
//   - outcome: "ok", "network_error", "unauthorized", "validation",
//     "not_found", or "server_error"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API requests issued, by method and outcome.",
	},
	[]string{"method", "outcome"},
)

// RequestDuration measures end-to-end request latency.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of API requests from issue to final response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// EndpointSwitchesTotal counts how often the startup probe pinned the client
// to a fallback endpoint instead of the primary one.
var EndpointSwitchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "endpoint_switches_total",
		Help:      "Total number of times the client switched to a fallback endpoint.",
	},
)

// ---- hydration metrics ----

// HydrationFetchesTotal counts per-resource outcomes of the fetch-all pass.
// Labels:
//   - resource: "maintenance", "invoices", "grocery_items", "grocery_orders", "users"
//   - outcome: "fulfilled" or "rejected"
var HydrationFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hydration_fetches_total",
		Help:      "Per-resource outcomes of full-state hydration, by result.",
	},
	[]string{"resource", "outcome"},
)

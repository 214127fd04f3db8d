// Package metrics defines all custom Prometheus metrics for the storefront
// gateway. It is the single source of truth for metric names, labels, and
// help strings; everything registers against the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Backend call metrics ─────────────────────────────────────────────────────

// BackendRequestsTotal counts outbound calls to the marketplace backend.
// Labels:
//   - method: HTTP method
//   - route: path with entity IDs collapsed to ":id"
//   - outcome: "ok" or the error kind ("unauthorized", "not_found",
//     "validation", "server", "network")
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total outbound marketplace backend calls by outcome.",
	},
	[]string{"method", "route", "outcome"},
)

// BackendRequestDuration observes outbound call latency in seconds.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Latency of outbound marketplace backend calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// SessionsStartedTotal counts successful logins by role.
var SessionsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total sessions created on successful login, by role.",
	},
	[]string{"role"},
)

// SessionsClearedTotal counts session teardowns.
// Label:
//   - reason: "logout" or "auth_expired"
var SessionsClearedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_cleared_total",
		Help:      "Total sessions cleared, by reason.",
	},
	[]string{"reason"},
)

// ── Mutation cycle metrics ───────────────────────────────────────────────────

// ReloadCyclesTotal counts mutate-then-reload cycles.
// Labels:
//   - collection: the owning collection ("products", "enquiries", ...)
//   - result: "ok", "action_failed", or "reload_failed"
var ReloadCyclesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reload_cycles_total",
		Help:      "Total write-then-reload cycles, by collection and result.",
	},
	[]string{"collection", "result"},
)

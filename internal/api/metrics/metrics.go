// Package metrics defines and registers all custom Prometheus metrics for the
// food-ordering API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foodorder"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users successfully registered.",
	},
)

// SessionsIssuedTotal counts sessions created on login.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of sessions issued on successful login.",
	},
)

// SessionResolutionsTotal counts session resolution attempts.
// Label:
//   - result: "ok", "missing", "expired", or "orphaned" (session valid but
//     owning user record no longer exists)
var SessionResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Total number of session token resolutions, labelled by result.",
	},
	[]string{"result"},
)

// LoginFailuresTotal counts rejected login attempts.
var LoginFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of login attempts rejected as invalid credentials.",
	},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts successfully placed orders.
// Label:
//   - payment_method: the method declared at checkout (e.g. "cash", "card")
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders successfully placed, by payment method.",
	},
	[]string{"payment_method"},
)

// OrderTotalMismatchesTotal counts checkout submissions rejected because the
// declared total diverged from the server-side recomputed sum.
var OrderTotalMismatchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_total_mismatches_total",
		Help:      "Total number of orders rejected for a declared/recomputed total mismatch.",
	},
)

// Package metrics defines all custom Prometheus metrics for the inventory
// API. It is the single source of truth for metric names, labels, and help
// strings. All metrics self-register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthDeniedTotal counts requests rejected before reaching a handler.
// Label:
//   - reason: "unauthenticated" (401 at the auth middleware) or
//     "forbidden" (403 at the role gate)
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests denied by the authorization gate.",
	},
	[]string{"reason"},
)

// ── Asset metrics ─────────────────────────────────────────────────────────────

// AssetsCreatedTotal counts newly created assets, by type.
var AssetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assets_created_total",
		Help:      "Total number of assets created, by asset type.",
	},
	[]string{"asset_type"},
)

// AssetUpdatesTotal counts asset updates, by the caller role that made them.
var AssetUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asset_updates_total",
		Help:      "Total number of asset updates, by caller role.",
	},
	[]string{"role"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportRequestsTotal counts report reads, by report name.
var ReportRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_requests_total",
		Help:      "Total number of report requests, by report.",
	},
	[]string{"report"},
)

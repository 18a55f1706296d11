// Package metrics defines and registers all custom Prometheus metrics for
// the admin gateway. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry at package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cms_admin"

// UpstreamRequestsTotal counts requests issued to the remote CMS API.
// Labels:
//   - method: HTTP method of the upstream call
//   - status: upstream response status code, or "error" for transport failures
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the remote CMS API.",
	},
	[]string{"method", "status"},
)

// ForcedLogoutsTotal counts sessions terminated because the upstream CMS
// rejected their credential with a 401.
var ForcedLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forced_logouts_total",
		Help:      "Total number of sessions terminated by an upstream 401.",
	},
)

// LoginsTotal counts login attempts through the gateway.
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

// TokenStoreFallbacksTotal counts reads that missed the primary token
// store backend and were served by a lower-ranked one.
// Label:
//   - backend: name of the backend that served the read
var TokenStoreFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_store_fallbacks_total",
		Help:      "Total number of token store reads served by a non-primary backend.",
	},
	[]string{"backend"},
)

// TokenStoreErrorsTotal counts swallowed backend failures.
// Labels:
//   - backend: backend name
//   - op: "get", "set", or "remove"
var TokenStoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_store_errors_total",
		Help:      "Total number of token store backend failures (swallowed).",
	},
	[]string{"backend", "op"},
)

// Package metrics defines all custom Prometheus metrics for the API.
// It is the single source of truth for metric names, labels, and help
// strings. promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gestor"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "not_found", "inactive", "bad_password", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDeniedTotal counts capability checks that denied access.
// Label:
//   - capability: "admin", "project", "personal", "financial"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of authorization denials, by capability.",
	},
	[]string{"capability"},
)

// RoleCacheTotal counts role-cache lookups on the authorization path.
// Label:
//   - result: "hit" or "miss"
var RoleCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_cache_total",
		Help:      "Total number of role cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

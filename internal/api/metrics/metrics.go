// Package metrics defines and registers the custom Prometheus metrics for
// the library catalog API. It is the single source of truth for metric
// names, labels, and help strings; all collectors register with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "elibrary"

// TokenVerificationsTotal counts bearer token checks by the gate.
// Label:
//   - result: "valid", "invalid", or "expired"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "conflict", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// BooksUploadedTotal counts catalog entries created with a file upload.
var BooksUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_uploaded_total",
		Help:      "Total number of books added to the catalog.",
	},
)

// UpstreamRequestDuration observes record store round-trip latency.
// Label:
//   - method: HTTP method of the upstream request
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of record store requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ExportsTotal counts bundle exports.
// Label:
//   - result: "success" or "error"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of bundle exports, by result.",
	},
	[]string{"result"},
)

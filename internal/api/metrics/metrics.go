// Package metrics defines and registers all custom Prometheus metrics for
// the records API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "records"

// ResponsesTotal counts responses by envelope status code ("0".."7").
var ResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "responses_total",
		Help:      "Total number of responses, labelled by envelope status code.",
	},
	[]string{"status"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// FilesStoredTotal counts accepted file uploads.
var FilesStoredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_stored_total",
		Help:      "Total number of files accepted into the blob store.",
	},
)

// FilesRejectedTotal counts uploads rejected by the settings limits.
var FilesRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_rejected_total",
		Help:      "Total number of uploads rejected by the settings limits.",
	},
)

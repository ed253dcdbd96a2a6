// Package metrics holds the Prometheus instruments shared by the HTTP
// server and the reminder scheduler. Instruments are registered on the
// default registry; the web server exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ComputationsTotal counts intake computations by calling surface
	// ("api" or "form").
	ComputationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hydration_computations_total",
		Help: "Total intake computations by calling surface.",
	}, []string{"source"})

	// ReminderExportsTotal counts reminder exports by format
	// ("data_uri" or "ics").
	ReminderExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hydration_reminder_exports_total",
		Help: "Total reminder exports by format.",
	}, []string{"format"})

	// RemindersFiredTotal counts reminders fired by the scheduler.
	RemindersFiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hydration_reminders_fired_total",
		Help: "Total reminders fired by the scheduler.",
	})

	// HTTPRequestDuration observes request latency per method, path and
	// status. The path label is safe here: the server serves a small fixed
	// route set.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hydration_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

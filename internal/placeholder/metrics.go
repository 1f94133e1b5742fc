// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package placeholder

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status constants for resolution metrics.
const (
	StatusResolved  = "resolved"
	StatusUnhandled = "unhandled"
	StatusUnknown   = "unknown_namespace"
	StatusPanic     = "panic"
)

// Resolutions is the counter for placeholder resolutions.
// Use RegisterMetrics to register this with a Prometheus registry.
var Resolutions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "extraplaceholders_resolutions_total",
		Help: "Total number of placeholder resolution requests",
	},
	[]string{"namespace", "status"},
)

// ResolutionDuration is the histogram for resolution duration.
// Use RegisterMetrics to register this with a Prometheus registry.
var ResolutionDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "extraplaceholders_resolution_duration_seconds",
		Help:    "Placeholder resolution duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"namespace"},
)

// RegisterMetrics registers placeholder package metrics with the given
// Prometheus registry. This must be called at startup to make metrics
// available on /metrics. Panics if registration fails (following
// prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Resolutions)
	reg.MustRegister(ResolutionDuration)
}

// RecordResolution increments the resolution counter for a namespace
// with the given status (use Status* constants).
func RecordResolution(namespace, status string) {
	Resolutions.WithLabelValues(namespace, status).Inc()
}

// RecordResolutionDuration records how long one resolution took.
func RecordResolutionDuration(namespace string, duration time.Duration) {
	ResolutionDuration.WithLabelValues(namespace).Observe(duration.Seconds())
}

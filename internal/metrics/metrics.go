// Package metrics defines the prometheus counters exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EnrollmentsSubmitted counts enrollment submissions by catalog
	// kind (course|program) and outcome (ok|error).
	EnrollmentsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webapp_enrollments_submitted_total",
		Help: "Enrollment submissions sent to the backend.",
	}, []string{"kind", "outcome"})

	// Logins counts login attempts by outcome (ok|error).
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webapp_logins_total",
		Help: "Login attempts against the backend.",
	}, []string{"outcome"})
)

// Package observability exposes Prometheus metrics for the registry.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "unregisters_total",
		Help:      "Number of successful unregistrations per activity.",
	}, []string{"activity"})
	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Number of rejected mutations by validation reason.",
	}, []string{"reason"})
	rosterGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "roster_size",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, rosterGauge)
}

// RecordSignup bumps the signup counter and updates the roster gauge.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.WithLabelValues(activity).Inc()
	rosterGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordUnregister bumps the unregister counter and updates the roster gauge.
func RecordUnregister(activity string, rosterSize int) {
	unregisterCounter.WithLabelValues(activity).Inc()
	rosterGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordRejection counts a validation failure by reason label.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}

// SeedRosterSizes initialises the roster gauge from the starting catalog so
// scrapes before the first mutation still report every activity.
func SeedRosterSizes(sizes map[string]int) {
	for activity, size := range sizes {
		rosterGauge.WithLabelValues(activity).Set(float64(size))
	}
}

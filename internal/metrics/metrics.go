// Package metrics exposes prometheus collectors for the roster service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "school_activities"

// Roster operation outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics groups the service collectors. A nil *Metrics is a no-op.
type Metrics struct {
	rosterOps    *prometheus.CounterVec
	participants *prometheus.GaugeVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rosterOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "operations_total",
			Help:      "Roster operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		participants: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "participants",
			Help:      "Current number of participants per activity.",
		}, []string{"activity"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.rosterOps, m.participants, m.httpRequests, m.httpDuration)
	return m
}

// RosterOperation counts a signup or unregister attempt.
func (m *Metrics) RosterOperation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.rosterOps.WithLabelValues(operation, outcome).Inc()
}

// SetParticipants records the participant count of an activity.
func (m *Metrics) SetParticipants(activity string, count int) {
	if m == nil {
		return
	}
	m.participants.WithLabelValues(activity).Set(float64(count))
}

// HTTPRequest records a served request.
func (m *Metrics) HTTPRequest(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}

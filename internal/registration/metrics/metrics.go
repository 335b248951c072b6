package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Claim outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeConflict    = "conflict"
	OutcomeNotFound    = "not_found"
	OutcomeInvalid     = "invalid"
	OutcomeBlocked     = "blocked"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Metrics provides observability for the registration module.
type Metrics struct {
	Claims        *prometheus.CounterVec
	ClaimDuration prometheus.Histogram
	Deletions     *prometheus.CounterVec
	CacheLookups  *prometheus.CounterVec
}

// New registers the registration metrics with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the registration metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Claims: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onutec_claims_total",
			Help: "Slot claims by outcome",
		}, []string{"outcome"}),
		ClaimDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "onutec_claim_duration_seconds",
			Help:    "Duration of claim transactions",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		Deletions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onutec_deletions_total",
			Help: "Deletes by entity and outcome",
		}, []string{"entity", "outcome"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onutec_availability_cache_lookups_total",
			Help: "Availability cache lookups by result (hit or miss)",
		}, []string{"result"}),
	}
}

// ObserveClaim records one claim attempt. Call with time.Now() taken at the start.
func (m *Metrics) ObserveClaim(outcome string, start time.Time) {
	m.Claims.WithLabelValues(outcome).Inc()
	m.ClaimDuration.Observe(time.Since(start).Seconds())
}

// IncrementDeletion records a delete of entity with outcome.
func (m *Metrics) IncrementDeletion(entity, outcome string) {
	m.Deletions.WithLabelValues(entity, outcome).Inc()
}

// RecordCacheLookup counts a cache hit or miss.
func (m *Metrics) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// Package metrics exposes Prometheus instrumentation for catalog traffic,
// detail hydration and collection store mutations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for catalog requests.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Catalog groups every collector the service registers. A nil *Catalog is
// valid and records nothing, so packages can take it as an optional dependency.
type Catalog struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	HydrationSize   prometheus.Histogram
	StoreMutations  *prometheus.CounterVec
	PagesServed     *prometheus.CounterVec
}

// New registers the collectors on the given registerer.
// Pass prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(namespace string, registerer prometheus.Registerer) *Catalog {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Catalog{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "requests_total",
				Help:      "Remote catalog requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "request_duration_seconds",
				Help:      "Remote catalog request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		HydrationSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "hydration_batch_size",
				Help:      "Number of references hydrated per batch",
				Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
			},
		),
		StoreMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "collection",
				Name:      "mutations_total",
				Help:      "Persisted collection store mutations by store and operation",
			},
			[]string{"store", "op"},
		),
		PagesServed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "pages_total",
				Help:      "Pages produced by the fetch engine by strategy",
			},
			[]string{"strategy"},
		),
	}
}

// ObserveRequest records one remote catalog call.
func (m *Catalog) ObserveRequest(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(endpoint, outcome).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// ObserveHydration records the size of one hydration batch.
func (m *Catalog) ObserveHydration(n int) {
	if m == nil {
		return
	}
	m.HydrationSize.Observe(float64(n))
}

// ObserveMutation records one persisted store mutation.
func (m *Catalog) ObserveMutation(store, op string) {
	if m == nil {
		return
	}
	m.StoreMutations.WithLabelValues(store, op).Inc()
}

// ObservePage records one page produced by the given strategy.
func (m *Catalog) ObservePage(strategy string) {
	if m == nil {
		return
	}
	m.PagesServed.WithLabelValues(strategy).Inc()
}

// Handler serves the given gatherer in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

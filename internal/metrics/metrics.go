// Package metrics owns the Prometheus collectors of the service. A nil *Metrics is a valid
// no-op so that components can be built without instrumentation in tests.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "comicvault"

type Metrics struct {
	registry *prometheus.Registry

	cacheLookups    *prometheus.CounterVec
	remoteRequests  *prometheus.CounterVec
	remoteLatency   *prometheus.HistogramVec
	favoriteChanges *prometheus.CounterVec
	batchItems      *prometheus.CounterVec
}

// New builds the collectors and registers them, together with the go and process
// collectors, on a dedicated registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Cache-aside lookups by operation and result (hit, miss)",
			},
			[]string{"operation", "result"},
		),
		remoteRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "remote_requests_total",
				Help:      "Requests sent to the comics catalog API by endpoint and result",
			},
			[]string{"endpoint", "result"},
		),
		remoteLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "remote_request_duration_seconds",
				Help:      "Latency of comics catalog API requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		favoriteChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "favorite_changes_total",
				Help:      "Favorite set changes by action (add, remove)",
			},
			[]string{"action"},
		),
		batchItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batch_items_total",
				Help:      "Issues requested through the batch fetcher by result (ok, failed)",
			},
			[]string{"result"},
		),
	}

	collectors := []prometheus.Collector{
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		m.cacheLookups,
		m.remoteRequests,
		m.remoteLatency,
		m.favoriteChanges,
		m.batchItems,
	}
	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) CacheHit(operation string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(operation, "hit").Inc()
}

func (m *Metrics) CacheMiss(operation string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(operation, "miss").Inc()
}

func (m *Metrics) ObserveRemote(endpoint string, started time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.remoteRequests.WithLabelValues(endpoint, result).Inc()
	m.remoteLatency.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}

func (m *Metrics) FavoriteChanged(action string) {
	if m == nil {
		return
	}
	m.favoriteChanges.WithLabelValues(action).Inc()
}

func (m *Metrics) BatchItems(ok, failed int) {
	if m == nil {
		return
	}
	m.batchItems.WithLabelValues("ok").Add(float64(ok))
	m.batchItems.WithLabelValues("failed").Add(float64(failed))
}

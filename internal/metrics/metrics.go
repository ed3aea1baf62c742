// Package metrics holds the Prometheus instruments of the board backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "taskboard"

// Metrics groups the remote API, sync and store instruments.
type Metrics struct {
	RemoteRequests *prometheus.CounterVec
	RemoteDuration *prometheus.HistogramVec
	SyncPending    prometheus.Gauge
	Mutations      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers every instrument with reg. reg must also be a Gatherer for
// Handler to serve it.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RemoteRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_requests_total",
			Help:      "Requests sent to the remote storage API.",
		}, []string{"method", "collection", "status"}),
		RemoteDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_request_duration_seconds",
			Help:      "Latency of remote storage API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "collection"}),
		SyncPending: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sync_pending_ops",
			Help:      "Remote operations waiting for replay.",
		}),
		Mutations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_mutations_total",
			Help:      "Successful task and contact mutations by operation.",
		}, []string{"op"}),
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// ObserveRemote matches remote.Observer. status 0 is reported as "error".
func (m *Metrics) ObserveRemote(method, collection string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.RemoteRequests.WithLabelValues(method, collection, label).Inc()
	m.RemoteDuration.WithLabelValues(method, collection).Observe(elapsed.Seconds())
}

// Inc counts one successful mutation.
func (m *Metrics) Inc(op string) {
	m.Mutations.WithLabelValues(op).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

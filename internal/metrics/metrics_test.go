package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/metrics"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	next:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			}
		}
	}
	return 0
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRemote(http.MethodGet, "tasks", 200, 20*time.Millisecond)
	m.ObserveRemote(http.MethodGet, "tasks", 200, 30*time.Millisecond)
	m.ObserveRemote(http.MethodPatch, "tasks", 0, time.Second)
	m.Inc("move")
	m.SyncPending.Set(2)

	assert.Equal(t, float64(2), counterValue(t, reg, "taskboard_remote_requests_total",
		map[string]string{"method": "GET", "collection": "tasks", "status": "200"}))
	assert.Equal(t, float64(1), counterValue(t, reg, "taskboard_remote_requests_total",
		map[string]string{"method": "PATCH", "collection": "tasks", "status": "error"}))
	assert.Equal(t, float64(1), counterValue(t, reg, "taskboard_store_mutations_total",
		map[string]string{"op": "move"}))
	assert.Equal(t, float64(2), counterValue(t, reg, "taskboard_sync_pending_ops", nil))

	t.Run("Handler", func(t *testing.T) {
		w := httptest.NewRecorder()
		m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "taskboard_sync_pending_ops 2")
	})
}

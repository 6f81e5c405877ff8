package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheus_Defaults(t *testing.T) {
	p := NewPrometheus(nil, "")

	require.NotNil(t, p)
	assert.Equal(t, prometheus.DefaultRegisterer, p.reg)
	assert.Equal(t, defaultNamespace, p.namespace)
}

func TestPrometheusCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordNotification("turn_start", "sent")
	p.RecordNotification("turn_start", "sent")
	p.RecordNotification("reminder", "failed")
	p.RecordCommand("done", "ok")
	p.RecordMirror("publish", "error")
	p.RecordHTTPRequest("/api/duty", 200, 15*time.Millisecond)
	p.SetCompletedTasks(3, 4)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.notifications.WithLabelValues("turn_start", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.notifications.WithLabelValues("reminder", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.commands.WithLabelValues("done", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.mirrorOps.WithLabelValues("publish", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.httpRequests.WithLabelValues("/api/duty", "200")))
	assert.Equal(t, 3.0, testutil.ToFloat64(p.completedTasks))
	assert.Equal(t, 4.0, testutil.ToFloat64(p.totalTasks))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "test_notifications_total")
	assert.Contains(t, names, "test_http_request_duration_seconds")
	assert.Contains(t, names, "test_duty_completed_tasks")
}

func TestNopMetrics(t *testing.T) {
	m := NewNop()

	require.NotPanics(t, func() {
		m.RecordNotification("completion", "sent")
		m.RecordCommand("", "")
		m.RecordHTTPRequest("/health", 500, -time.Second)
		m.RecordMirror("fetch", "ok")
		m.SetCompletedTasks(0, 0)
	})
}

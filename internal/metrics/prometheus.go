// Package metrics exposes bot activity as Prometheus metrics.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "cleaning_bot"

// PrometheusCollector implements contract.MetricsCollector backed by Prometheus.
// Collectors are registered lazily on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	notifications  *prometheus.CounterVec
	commands       *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpLatency    *prometheus.HistogramVec
	mirrorOps      *prometheus.CounterVec
	completedTasks prometheus.Gauge
	totalTasks     prometheus.Gauge
}

var _ contract.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a collector. A nil reg uses prometheus.DefaultRegisterer
// and an empty namespace defaults to "cleaning_bot".
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = defaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.notifications = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "notifications",
			Name:      "total",
			Help:      "Notification delivery attempts by kind and result.",
		}, []string{"kind", "result"})

		p.commands = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "slack",
			Name:      "commands_total",
			Help:      "Slash commands handled by command and result.",
		}, []string{"command", "result"})

		p.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"})

		p.httpLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds by route.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~2s
		}, []string{"route"})

		p.mirrorOps = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "mirror",
			Name:      "operations_total",
			Help:      "Remote mirror operations by op (publish,fetch,receive) and result.",
		}, []string{"op", "result"})

		p.completedTasks = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "duty",
			Name:      "completed_tasks",
			Help:      "Checklist tasks completed in the current duty week.",
		})

		p.totalTasks = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "duty",
			Name:      "total_tasks",
			Help:      "Checklist tasks in the current duty week.",
		})

		p.reg.MustRegister(p.notifications)
		p.reg.MustRegister(p.commands)
		p.reg.MustRegister(p.httpRequests)
		p.reg.MustRegister(p.httpLatency)
		p.reg.MustRegister(p.mirrorOps)
		p.reg.MustRegister(p.completedTasks)
		p.reg.MustRegister(p.totalTasks)
	})
}

func (p *PrometheusCollector) RecordNotification(kind, result string) {
	p.ensureRegistered()
	p.notifications.WithLabelValues(kind, result).Inc()
}

func (p *PrometheusCollector) RecordCommand(command, result string) {
	p.ensureRegistered()
	p.commands.WithLabelValues(command, result).Inc()
}

func (p *PrometheusCollector) RecordHTTPRequest(route string, status int, duration time.Duration) {
	p.ensureRegistered()
	p.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	p.httpLatency.WithLabelValues(route).Observe(duration.Seconds())
}

func (p *PrometheusCollector) RecordMirror(op, result string) {
	p.ensureRegistered()
	p.mirrorOps.WithLabelValues(op, result).Inc()
}

func (p *PrometheusCollector) SetCompletedTasks(completed, total int) {
	p.ensureRegistered()
	p.completedTasks.Set(float64(completed))
	p.totalTasks.Set(float64(total))
}

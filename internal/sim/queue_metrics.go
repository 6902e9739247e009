package sim

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QueueMetrics holds the queue simulator instruments on a private registry.
type QueueMetrics struct {
	reg       *prometheus.Registry
	enqueued  prometheus.Counter
	persisted prometheus.Counter
	depth     prometheus.Gauge
	busy      prometheus.Gauge
}

// MetricsSnapshot is a point-in-time reading of QueueMetrics.
type MetricsSnapshot struct {
	Enqueued    float64
	Persisted   float64
	QueueDepth  float64
	BusyWorkers float64
}

// NewQueueMetrics registers a fresh set of instruments.
func NewQueueMetrics() *QueueMetrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &QueueMetrics{
		reg: reg,
		enqueued: f.NewCounter(prometheus.CounterOpts{
			Name: "webhook_lab_events_enqueued_total",
			Help: "Total number of events placed on the simulated queue.",
		}),
		persisted: f.NewCounter(prometheus.CounterOpts{
			Name: "webhook_lab_events_persisted_total",
			Help: "Total number of events written to the simulated database.",
		}),
		depth: f.NewGauge(prometheus.GaugeOpts{
			Name: "webhook_lab_queue_depth",
			Help: "Events waiting for a worker.",
		}),
		busy: f.NewGauge(prometheus.GaugeOpts{
			Name: "webhook_lab_busy_workers",
			Help: "Workers currently processing an event.",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *QueueMetrics) Registry() *prometheus.Registry { return m.reg }

// Snapshot gathers the registry into a MetricsSnapshot.
func (m *QueueMetrics) Snapshot() (MetricsSnapshot, error) {
	families, err := m.reg.Gather()
	if err != nil {
		return MetricsSnapshot{}, fmt.Errorf("gather queue metrics: %w", err)
	}
	var snap MetricsSnapshot
	for _, mf := range families {
		if len(mf.GetMetric()) == 0 {
			continue
		}
		metric := mf.GetMetric()[0]
		switch mf.GetName() {
		case "webhook_lab_events_enqueued_total":
			snap.Enqueued = metric.GetCounter().GetValue()
		case "webhook_lab_events_persisted_total":
			snap.Persisted = metric.GetCounter().GetValue()
		case "webhook_lab_queue_depth":
			snap.QueueDepth = metric.GetGauge().GetValue()
		case "webhook_lab_busy_workers":
			snap.BusyWorkers = metric.GetGauge().GetValue()
		}
	}
	return snap, nil
}

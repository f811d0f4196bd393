package node

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts supervisor activity.
type Metrics struct {
	Running       prometheus.Gauge
	Starts        *prometheus.CounterVec
	StartDuration prometheus.Histogram
	StartAttempts prometheus.Counter
	Stops         *prometheus.CounterVec
}

// NewMetrics creates the collectors without registering them.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry registers the metrics with registry, or the default registerer.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Running: factory.NewGauge(prometheus.GaugeOpts{
			Name: "corepc_node_running",
			Help: "The number of daemons currently ready",
		}),
		Starts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "corepc_node_starts_total",
			Help: "Daemon starts by result",
		}, []string{"result"}),
		StartDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "corepc_node_start_duration_seconds",
			Help:    "Time from resolution to readiness",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		StartAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "corepc_node_spawn_attempts_total",
			Help: "Processes spawned, retries included",
		}),
		Stops: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "corepc_node_stops_total",
			Help: "Daemon teardowns by how the process ended",
		}, []string{"how"}),
	}
}

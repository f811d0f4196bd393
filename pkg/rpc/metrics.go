package rpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcome labels.
const (
	statusOK        = "ok"
	statusRPC       = "rpc_error"
	statusTransport = "transport_error"
	statusCodec     = "codec_error"
	statusCanceled  = "canceled"
)

// Metrics holds the Prometheus collectors updated by Client.
type Metrics struct {
	Calls        *prometheus.CounterVec
	CallDuration *prometheus.HistogramVec
	InFlight     prometheus.Gauge
}

// NewMetrics registers the collectors with the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry registers the collectors with registry.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "corepc_rpc_calls_total",
			Help: "JSON-RPC calls by method and outcome",
		}, []string{"method", "status"}),
		CallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "corepc_rpc_call_duration_seconds",
			Help:    "JSON-RPC round trip latency by method",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"method"}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "corepc_rpc_calls_in_flight",
			Help: "JSON-RPC calls waiting for a response",
		}),
	}
}

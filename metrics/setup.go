package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server that
// exposes it.
type Metrics struct {
	// Server serves the /metrics endpoint.
	Server *http.Server

	// Registry is the isolated Prometheus registry for this instance.
	Registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewMetrics builds a Metrics instance with its own registry, the
// vectorgate operation metrics, optional default runtime collectors, and
// an HTTP server serving the registry at cfg.Address.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "vectorgate"
	}

	// All metrics carry a constant service label so dashboards can
	// aggregate across instances.
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": serviceName},
		registry,
	)

	m := &Metrics{Registry: registry}

	m.operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vectorgate_operations_total",
		Help: "Total vector store operations by operation name and outcome",
	}, []string{"operation", "status"})

	m.operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vectorgate_operation_duration_seconds",
		Help:    "Latency of vector store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	wrapped.MustRegister(m.operationsTotal, m.operationDuration)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	return m
}

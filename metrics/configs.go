package metrics

// Config holds the metrics server settings.
type Config struct {
	// Address is the listen address of the /metrics HTTP server,
	// e.g. ":9090".
	Address string `yaml:"address" env:"VECTORGATE_METRICS_ADDRESS"`

	// ServiceName is attached to every metric as the "service" label.
	ServiceName string `yaml:"service_name" env:"VECTORGATE_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go runtime, process and
	// build-info collectors in addition to the operation metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"VECTORGATE_METRICS_DEFAULT_COLLECTORS"`
}

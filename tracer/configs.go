package tracer

// Config holds the tracer settings.
type Config struct {
	// ServiceName identifies this service in trace backends.
	ServiceName string `yaml:"service_name" env:"VECTORGATE_SERVICE_NAME"`

	// AppEnv tags spans with the deployment environment,
	// e.g. "production" or "staging".
	AppEnv string `yaml:"app_env" env:"VECTORGATE_APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. When false, spans
	// are created but never leave the process.
	EnableExport bool `yaml:"enable_export" env:"VECTORGATE_TRACE_EXPORT"`
}

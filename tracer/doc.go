// Package tracer configures OpenTelemetry tracing for vectorgate.
//
// It sets up a TracerProvider with service resource attributes and, when
// export is enabled, an OTLP HTTP exporter (endpoint taken from the
// standard OTEL_EXPORTER_OTLP_* environment variables). The qdrant gateway
// opens a span per operation through StartSpan.
//
// Usage:
//
//	tr := tracer.NewTracer(tracer.Config{ServiceName: "vectorgate", AppEnv: "production"}, log)
//	defer tr.Shutdown(context.Background())
//
//	ctx, span := tr.StartSpan(ctx, "qdrant.search")
//	defer span.End()
package tracer

package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Logger defines the logging operations this package needs. Any
// implementation with these methods works; *logger.Logger satisfies it.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Recorder receives per-operation metrics. *metrics.Metrics satisfies it.
type Recorder interface {
	IncOperation(operation, status string)
	ObserveOperation(start time.Time, operation string)
}

// Spanner opens tracing spans. *tracer.Tracer satisfies it.
type Spanner interface {
	StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span)
}

// Client wraps the official Qdrant Go client and implements
// vectorstore.Service. It is safe for concurrent use; the handle itself
// is the only state it carries.
type Client struct {
	api     *qdrant.Client
	cfg     *Config
	log     Logger
	metrics Recorder
	tracer  Spanner
}

// Params bundles the dependencies of NewClient. Metrics and Tracer are
// optional; a nil Logger falls back to a no-op.
type Params struct {
	Config  *Config
	Logger  Logger
	Metrics Recorder
	Tracer  Spanner
}

// NewClient builds a configured client handle.
//
// No request is made here: authentication is lazy, so an invalid API key
// or unreachable endpoint surfaces on the first operation, not at
// construction. Call Ping for an explicit fail-fast health check.
func NewClient(p Params) (*Client, error) {
	cfg := p.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("qdrant: host cannot be empty")
	}

	port := cfg.Port
	if port == 0 {
		port = 6334
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Host,
		Port:                   port,
		APIKey:                 cfg.APIKey,
		UseTLS:                 cfg.UseTLS,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to initialize client: %w", err)
	}

	log := p.Logger
	if log == nil {
		log = nopLogger{}
	}

	log.Debug("qdrant client created", nil, map[string]interface{}{
		"host":    cfg.Host,
		"port":    port,
		"use_tls": cfg.UseTLS,
	})

	return &Client{
		api:     api,
		cfg:     cfg,
		log:     log,
		metrics: p.Metrics,
		tracer:  p.Tracer,
	}, nil
}

// Ping verifies the availability of the service with a bounded health
// check. It is the explicit counterpart to the lazy construction in
// NewClient: call it at startup when you want a misconfiguration to fail
// fast.
func (c *Client) Ping(ctx context.Context) error {
	timeout := c.cfg.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("qdrant: health check failed: %w", err)
	}

	c.log.Info("qdrant health check passed", nil, map[string]interface{}{
		"title":   resp.GetTitle(),
		"version": resp.GetVersion(),
		"host":    c.cfg.Host,
	})
	return nil
}

// API returns the underlying SDK client for low-level access.
func (c *Client) API() *qdrant.Client {
	return c.api
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.api.Close()
}

// instrument opens a span and starts the latency clock for one operation.
// The returned finish func records the outcome; it must be called exactly
// once.
func (c *Client) instrument(ctx context.Context, operation, collection string) (context.Context, func(err error)) {
	start := time.Now()

	var span trace.Span
	if c.tracer != nil {
		ctx, span = c.tracer.StartSpan(ctx, "qdrant."+operation,
			attribute.String("db.collection", collection),
		)
	}

	return ctx, func(err error) {
		if c.metrics != nil {
			c.metrics.ObserveOperation(start, operation)
			status := "ok"
			if err != nil {
				status = "error"
			}
			c.metrics.IncOperation(operation, status)
		}
		if span != nil {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(otelcodes.Error, err.Error())
			}
			span.End()
		}
	}
}

// nopLogger keeps the client usable when no logger is supplied.
type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}

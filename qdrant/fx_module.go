package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/embedhub/vectorgate/logger"
	"github.com/embedhub/vectorgate/metrics"
	"github.com/embedhub/vectorgate/tracer"
	"github.com/embedhub/vectorgate/vectorstore"
)

// FXModule is an fx.Module that provides and configures the Qdrant client.
// This module registers the client with the Fx dependency injection
// framework, making it available to other components in the application
// both as *Client and as the vectorstore.Service abstraction.
//
// The module:
// 1. Provides the client factory function
// 2. Binds the client to the vectorstore.Service interface
// 3. Binds the sibling logger/metrics/tracer modules, when composed,
//    to this package's Logger/Recorder/Spanner dependencies
// 4. Invokes the lifecycle registration to manage the client's lifecycle
//
// Usage:
//
//	app := fx.New(
//	    qdrant.FXModule,
//	    fx.Provide(func() *qdrant.Config {
//	        return qdrant.DefaultConfig()
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewClientWithDI,
		func(c *Client) vectorstore.Service { return c },
		provideLogger,
		provideRecorder,
		provideSpanner,
	),
	fx.Invoke(RegisterClientLifecycle),
)

// The concrete dependencies stay optional: composing logger.FXModule,
// metrics.FXModule or tracer.FXModule wires the client automatically,
// while an app without them gets a client that logs to a no-op and skips
// instrumentation.

type loggerBinding struct {
	fx.In

	Logger *logger.Logger `optional:"true"`
}

func provideLogger(b loggerBinding) Logger {
	if b.Logger == nil {
		return nil
	}
	return b.Logger
}

type recorderBinding struct {
	fx.In

	Metrics *metrics.Metrics `optional:"true"`
}

func provideRecorder(b recorderBinding) Recorder {
	if b.Metrics == nil {
		return nil
	}
	return b.Metrics
}

type spannerBinding struct {
	fx.In

	Tracer *tracer.Tracer `optional:"true"`
}

func provideSpanner(b spannerBinding) Spanner {
	if b.Tracer == nil {
		return nil
	}
	return b.Tracer
}

// ClientParams groups the dependencies needed to create a Qdrant client.
// Logger, metrics and tracer are optional; the client degrades to no-op
// logging and no instrumentation without them.
type ClientParams struct {
	fx.In

	Config  *Config
	Logger  Logger   `optional:"true"`
	Metrics Recorder `optional:"true"`
	Tracer  Spanner  `optional:"true"`
}

// NewClientWithDI creates a new Qdrant client using dependency injection.
// It delegates to NewClient after unpacking the injected dependencies.
func NewClientWithDI(params ClientParams) (*Client, error) {
	return NewClient(Params{
		Config:  params.Config,
		Logger:  params.Logger,
		Metrics: params.Metrics,
		Tracer:  params.Tracer,
	})
}

// ClientLifecycleParams groups the dependencies needed for client
// lifecycle management.
type ClientLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
}

// RegisterClientLifecycle registers the Qdrant client with the fx
// lifecycle system.
//
// The client itself connects lazily, so the OnStart hook performs the
// first request: a health check that surfaces bad endpoints and rejected
// credentials at startup instead of on the first real operation. OnStop
// closes the underlying connection.
func RegisterClientLifecycle(params ClientLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return params.Client.Ping(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return params.Client.Close()
		},
	})
}

package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/embedhub/vectorgate/logger"
)

// FXModule provides the Tracer and flushes spans on shutdown.
//
// Dependencies required in the container: a tracer.Config and a
// *logger.Logger.
var FXModule = fx.Module("tracer",
	fx.Provide(func(cfg Config, log *logger.Logger) *Tracer {
		return NewTracer(cfg, log)
	}),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts the provider down when the application
// stops, flushing any batched spans.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return t.Shutdown(ctx)
		},
	})
}

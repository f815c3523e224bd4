package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/embedhub/vectorgate/logger"
)

// FXModule provides the Metrics instance and manages the /metrics HTTP
// server with the application lifecycle.
//
// Dependencies required in the container: a metrics.Config and a
// *logger.Logger.
var FXModule = fx.Module("metrics",
	fx.Provide(NewMetrics),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the metrics HTTP server on application
// start and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("metrics server stopped unexpectedly", err, map[string]interface{}{
						"address": m.Server.Addr,
					})
				}
			}()
			log.Info("metrics server listening", nil, map[string]interface{}{
				"address": m.Server.Addr,
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}

package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides the logger to an Fx application and registers its
// lifecycle hooks.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config { return logger.Config{Level: logger.Info} }),
//	    // other modules...
//	)
var FXModule = fx.Module("logger",
	fx.Provide(NewLogger),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes buffered log entries on shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync on stderr returns ENOTTY on some platforms; buffered
			// entries are already gone by then, so the error is dropped.
			_ = client.Zap.Sync()
			return nil
		},
	})
}

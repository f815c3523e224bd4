package apikeys

import (
	"go.uber.org/fx"

	"github.com/embedhub/vectorgate/logger"
)

// FXModule wires the key management client into Fx. Composing
// logger.FXModule alongside binds its logger automatically.
//
// Usage:
//
//	app := fx.New(
//	    apikeys.FXModule,
//	    fx.Provide(func(s *config.Settings) *apikeys.Config {
//	        return apikeys.FromSettings(s)
//	    }),
//	)
var FXModule = fx.Module("apikeys",
	fx.Provide(
		NewClientWithDI,
		provideLogger,
	),
)

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

// KeysParams groups the dependencies needed to create the management
// client.
type KeysParams struct {
	fx.In

	Config *Config
	Logger Logger `optional:"true"`
}

// NewClientWithDI creates the management client using dependency
// injection.
func NewClientWithDI(params KeysParams) (*Client, error) {
	return NewClient(params.Config, params.Logger)
}

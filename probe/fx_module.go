package probe

import (
	"go.uber.org/fx"

	"github.com/embedhub/vectorgate/logger"
)

// FXModule wires the prober into Fx. The application supplies the
// Factory, typically closing over its connection settings:
//
//	fx.Provide(func(s *config.Settings) probe.Factory {
//	    return func(apiKey string) (vectorstore.Service, error) {
//	        return qdrant.NewClient(qdrant.Params{
//	            Config: qdrant.FromSettings(s).WithAPIKey(apiKey),
//	        })
//	    }
//	})
var FXModule = fx.Module("probe",
	fx.Provide(
		NewProberWithDI,
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

// ProberParams groups the dependencies needed to create a Prober.
type ProberParams struct {
	fx.In

	Factory Factory
	Logger  Logger `optional:"true"`
}

// NewProberWithDI creates a Prober using dependency injection.
func NewProberWithDI(params ProberParams) (*Prober, error) {
	return NewProber(params.Factory, params.Logger)
}

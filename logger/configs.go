package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config holds the logger settings.
type Config struct {
	// Level sets the minimum level that gets emitted. Unknown values
	// fall back to info.
	Level string `yaml:"level" env:"VECTORGATE_LOG_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"VECTORGATE_SERVICE_NAME"`
}

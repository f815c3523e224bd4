package qdrant

import (
	"time"

	"github.com/embedhub/vectorgate/config"
)

// Config holds connection and behavior settings for the Qdrant client.
//
// Example (programmatic):
//
//	cfg := qdrant.DefaultConfig()
//	cfg.Host = "qdrant.internal"
//	cfg.APIKey = os.Getenv(config.EnvAPIKey)
//
// Example (builder style):
//
//	cfg := qdrant.FromHost("qdrant.internal").
//	    WithAPIKey(key).
//	    WithTLS(true)
type Config struct {
	// Host is the hostname of the Qdrant server, e.g. "localhost".
	Host string `yaml:"host" env:"VECTORGATE_HOST"`

	// Port is the gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"VECTORGATE_GRPC_PORT"`

	// UseTLS enables transport security.
	UseTLS bool `yaml:"use_tls" env:"VECTORGATE_USE_TLS"`

	// APIKey is the opaque credential attached to every request. The
	// service, not this client, decides what it is allowed to do.
	APIKey string `yaml:"api_key" env:"VECTORGATE_API_KEY"`

	// PingTimeout bounds the explicit health check issued by Ping.
	PingTimeout time.Duration `yaml:"ping_timeout" env:"VECTORGATE_PING_TIMEOUT"`

	// CheckCompatibility enables the SDK's client/server version check
	// on the first request.
	CheckCompatibility bool `yaml:"check_compatibility" env:"VECTORGATE_CHECK_COMPATIBILITY"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Host:        "localhost",
		Port:        6334,
		PingTimeout: 3 * time.Second,
	}
}

// FromHost returns a default config pre-filled with a specific host.
func FromHost(host string) *Config {
	cfg := DefaultConfig()
	cfg.Host = host
	return cfg
}

// FromSettings derives a client config from resolved connection settings.
func FromSettings(s *config.Settings) *Config {
	cfg := DefaultConfig()
	cfg.Host = s.Host
	cfg.Port = s.GRPCPort
	cfg.UseTLS = s.UseTLS
	cfg.APIKey = s.APIKey
	return cfg
}

// Builder-style helpers.

func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithTLS(enabled bool) *Config {
	c.UseTLS = enabled
	return c
}

func (c *Config) WithPingTimeout(d time.Duration) *Config {
	c.PingTimeout = d
	return c
}

func (c *Config) WithCompatibilityCheck(enabled bool) *Config {
	c.CheckCompatibility = enabled
	return c
}

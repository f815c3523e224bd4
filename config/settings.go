package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by MergeEnv.
const (
	EnvHost     = "VECTORGATE_HOST"
	EnvGRPCPort = "VECTORGATE_GRPC_PORT"
	EnvRESTPort = "VECTORGATE_REST_PORT"
	EnvUseTLS   = "VECTORGATE_USE_TLS"
	EnvAPIKey   = "VECTORGATE_API_KEY"
)

// Settings holds everything needed to reach the vector service.
type Settings struct {
	// Host is the hostname of the vector service, e.g. "localhost".
	Host string `json:"host"`

	// GRPCPort is the port of the service's gRPC API. Defaults to 6334.
	GRPCPort int `json:"grpc_port"`

	// RESTPort is the port of the service's REST API, used for API-key
	// administration. Defaults to 6333.
	RESTPort int `json:"rest_port"`

	// UseTLS enables transport security on both APIs.
	UseTLS bool `json:"use_tls"`

	// APIKey is the opaque credential attached to every request.
	// Empty means unauthenticated access.
	APIKey string `json:"api_key"`
}

// fileSettings mirrors Settings with pointer fields so a config file can
// set any subset without clobbering lower-precedence values.
type fileSettings struct {
	Host     *string `json:"host"`
	GRPCPort *int    `json:"grpc_port"`
	RESTPort *int    `json:"rest_port"`
	UseTLS   *bool   `json:"use_tls"`
	APIKey   *string `json:"api_key"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Host:     "localhost",
		GRPCPort: 6334,
		RESTPort: 6333,
	}
}

// Load resolves settings from defaults, then the JSON file at path, then
// the environment. A missing file is not an error when path is empty;
// an explicitly named file must exist.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()

	if path != "" {
		if err := s.MergeFile(path); err != nil {
			return nil, err
		}
	}
	s.MergeEnv()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// MergeFile overlays the JSON file at path onto s. Only fields present in
// the file are applied.
func (s *Settings) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: file %q does not exist: %w", path, err)
		}
		return fmt.Errorf("config: reading %q: %w", path, err)
	}

	var fs fileSettings
	if err := json.Unmarshal(data, &fs); err != nil {
		return fmt.Errorf("config: parsing %q: %w", path, err)
	}

	if fs.Host != nil {
		s.Host = *fs.Host
	}
	if fs.GRPCPort != nil {
		s.GRPCPort = *fs.GRPCPort
	}
	if fs.RESTPort != nil {
		s.RESTPort = *fs.RESTPort
	}
	if fs.UseTLS != nil {
		s.UseTLS = *fs.UseTLS
	}
	if fs.APIKey != nil {
		s.APIKey = *fs.APIKey
	}
	return nil
}

// MergeEnv overlays VECTORGATE_* environment variables onto s. Unset and
// empty variables are ignored; malformed numeric or boolean values are
// ignored rather than guessed at.
func (s *Settings) MergeEnv() {
	if v := os.Getenv(EnvHost); v != "" {
		s.Host = v
	}
	if v := os.Getenv(EnvGRPCPort); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.GRPCPort = n
		}
	}
	if v := os.Getenv(EnvRESTPort); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.RESTPort = n
		}
	}
	if v := os.Getenv(EnvUseTLS); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.UseTLS = b
		}
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		s.APIKey = v
	}
}

// Builder-style helpers for explicit overrides, the highest-precedence
// layer. They mutate and return s for chaining.

func (s *Settings) WithHost(host string) *Settings {
	s.Host = host
	return s
}

func (s *Settings) WithGRPCPort(port int) *Settings {
	s.GRPCPort = port
	return s
}

func (s *Settings) WithRESTPort(port int) *Settings {
	s.RESTPort = port
	return s
}

func (s *Settings) WithTLS(enabled bool) *Settings {
	s.UseTLS = enabled
	return s
}

func (s *Settings) WithAPIKey(key string) *Settings {
	s.APIKey = key
	return s
}

// Validate checks that the resolved settings are usable.
func (s *Settings) Validate() error {
	if s.Host == "" {
		return fmt.Errorf("config: host cannot be empty")
	}
	if s.GRPCPort <= 0 || s.GRPCPort > 65535 {
		return fmt.Errorf("config: grpc port %d out of range", s.GRPCPort)
	}
	if s.RESTPort <= 0 || s.RESTPort > 65535 {
		return fmt.Errorf("config: rest port %d out of range", s.RESTPort)
	}
	return nil
}

// RESTBaseURL returns the scheme://host:port base for the REST API.
func (s *Settings) RESTBaseURL() string {
	scheme := "http"
	if s.UseTLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, s.Host, s.RESTPort)
}

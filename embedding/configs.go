package embedding

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables the config reads.
const (
	EnvEndpoint = "VECTORGATE_EMBEDDING_ENDPOINT"
	EnvToken    = "VECTORGATE_EMBEDDING_TOKEN"
	EnvModel    = "VECTORGATE_EMBEDDING_MODEL"
	EnvTimeout  = "VECTORGATE_EMBEDDING_TIMEOUT_SECONDS"
)

// Config holds the inference connection parameters. Endpoint is the base
// URL of the service root; the provider appends request paths itself.
type Config struct {
	Endpoint     string // base URL of the inference API
	Token        string // bearer token, empty for unsecured endpoints
	Model        string // model identifier sent with each request
	HTTPTimeoutS int    // HTTP timeout in seconds (default 30)
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv(EnvTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	return &Config{
		Endpoint:     os.Getenv(EnvEndpoint),
		Token:        os.Getenv(EnvToken),
		Model:        os.Getenv(EnvModel),
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing %s", EnvEndpoint)
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing %s", EnvModel)
	}
	return nil
}

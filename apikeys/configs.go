package apikeys

import (
	"fmt"
	"strings"
	"time"

	"github.com/embedhub/vectorgate/config"
)

// Config holds the connection parameters for the key management endpoint.
type Config struct {
	// BaseURL is the root of the Qdrant REST API, e.g. "http://localhost:6333".
	BaseURL string

	// AdminKey authenticates management requests. Empty means the
	// instance runs without auth (local development).
	AdminKey string

	// HTTPTimeout bounds each management request. Defaults to 30s.
	HTTPTimeout time.Duration
}

// DefaultConfig returns a config for an unsecured local instance.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "http://localhost:6333",
		HTTPTimeout: 30 * time.Second,
	}
}

// FromSettings derives a management config from resolved connection
// settings, reusing the settings' API key as the admin credential.
func FromSettings(s *config.Settings) *Config {
	return &Config{
		BaseURL:     s.RESTBaseURL(),
		AdminKey:    s.APIKey,
		HTTPTimeout: 30 * time.Second,
	}
}

// Validate ensures required fields are present and normalizes the URL.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("apikeys: missing base URL")
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 30 * time.Second
	}
	return nil
}

package apikeys

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/embedhub/vectorgate/vectorstore"
)

const keysPath = "/api/v1/api-keys"

// Logger matches the subset of logging operations this package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
}

// Client talks to the Qdrant key management endpoint.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	log        Logger
}

// NewClient constructs a management client. A nil logger falls back to a
// no-op.
func NewClient(cfg *Config, log Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("apikeys: config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = nopLogger{}
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		log:        log,
	}, nil
}

// Create mints a new API key. The returned Key carries the secret; it is
// not retrievable afterwards, so the caller must store it.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*Key, error) {
	if req.Name == "" {
		req.Name = "key-" + uuid.New().String()[:8]
	}
	for _, a := range req.Actions {
		if a != ActionRead && a != ActionWrite {
			return nil, &vectorstore.ValidationError{
				Reason: fmt.Sprintf("unknown action %q", a),
			}
		}
	}

	var key Key
	if err := c.doJSON(ctx, http.MethodPost, keysPath, req, &key); err != nil {
		return nil, err
	}

	c.log.Info("api key created", nil, map[string]interface{}{
		"id":          key.ID,
		"name":        key.Name,
		"actions":     key.Actions,
		"collections": key.Collections,
	})
	return &key, nil
}

// List returns the metadata of all keys. Secrets are never included.
func (c *Client) List(ctx context.Context) ([]Key, error) {
	var keys []Key
	if err := c.doJSON(ctx, http.MethodGet, keysPath, nil, &keys); err != nil {
		return nil, err
	}
	c.log.Debug("listed api keys", nil, map[string]interface{}{"count": len(keys)})
	return keys, nil
}

// Delete revokes the key with the given id. Requests against the revoked
// key fail from this point on.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &vectorstore.ValidationError{Reason: "key id cannot be empty"}
	}

	path := keysPath + "/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}

	c.log.Info("api key deleted", nil, map[string]interface{}{"id": id})
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}

package apikeys

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/embedhub/vectorgate/vectorstore"
)

// doJSON sends a management request and decodes the JSON response into
// out when out is non-nil. Error statuses map onto the shared error
// kinds so callers handle rejected credentials uniformly with the data
// plane.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apikeys: encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("apikeys: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.AdminKey != "" {
		req.Header.Set("api-key", c.cfg.AdminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apikeys: http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return statusToError(method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("apikeys: decode response: %w", err)
		}
	}
	return nil
}

func statusToError(method, path string, resp *http.Response) error {
	msg := readErrorBody(resp)
	operation := method + " " + path

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &vectorstore.AuthorizationError{
			Operation: operation,
			Err:       fmt.Errorf("http %d: %s", resp.StatusCode, msg),
		}
	case http.StatusNotFound:
		return &vectorstore.NotFoundError{
			Err: fmt.Errorf("http %d: %s", resp.StatusCode, msg),
		}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &vectorstore.ValidationError{
			Reason: msg,
			Err:    fmt.Errorf("http %d", resp.StatusCode),
		}
	default:
		return fmt.Errorf("apikeys: %s failed: http %d: %s", operation, resp.StatusCode, msg)
	}
}

// readErrorBody extracts a short diagnostic from an error response.
func readErrorBody(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(data) == 0 {
		return resp.Status
	}

	// The service wraps errors as {"status":{"error":"..."}} on most
	// endpoints; fall back to the raw body when it doesn't.
	var envelope struct {
		Status struct {
			Error string `json:"error"`
		} `json:"status"`
	}
	if json.Unmarshal(data, &envelope) == nil && envelope.Status.Error != "" {
		return envelope.Status.Error
	}
	return strings.TrimSpace(string(data))
}

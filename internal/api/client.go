// Package api is the HTTP client for the Journal & Life Tracker REST API.
//
// Every method is one request/response round trip; there are no retries and
// no caching. Missing records surface as ErrNotFound, other non-2xx codes
// as *StatusError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to one server. Safe for concurrent use.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a client for the given base URL (without the /api suffix).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/") + "/api",
		http: &http.Client{Timeout: timeout},
	}
}

// Ping probes connectivity via the API root.
func (c *Client) Ping(ctx context.Context) error {
	return wrapErr("ping", c.do(ctx, http.MethodGet, "/", nil, nil))
}

// do runs one JSON round trip. A nil out discards the response body; a JSON
// null body with a non-nil out maps to ErrNotFound (the server answers null
// for a missing journal date).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &StatusError{Code: resp.StatusCode, Detail: errorDetail(data)}
	}

	if out == nil {
		return nil
	}
	if isJSONNull(data) {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errorDetail extracts the server's {"detail": ...} message, if any.
func errorDetail(data []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

func isJSONNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

// Package apiclient is the console's fetch layer: a thin client for the
// authoritative repair-shop REST API. The backend owns all data; the
// console only reads and mutates through these calls.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"repair-console/internal/auth"
	"repair-console/internal/config"
)

type Client struct {
	baseURL string
	http    *http.Client
	tokens  *auth.TokenStore
}

func New(cfg *config.Config, tokens *auth.TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.APITimeout()},
		tokens:  tokens,
	}
}

// Page carries one server page of results plus the backend's page cursors,
// which the UI reflects as Previous/Next controls.
type Page[T any] struct {
	Items    []T    `json:"results"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Count    int    `json:"count"`
}

// Response envelopes used by the backend.
type dataEnvelope[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error"`
}

type listEnvelope[T any] struct {
	Results  []T    `json:"results"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Count    int    `json:"count"`
}

type reportEnvelope struct {
	Report  json.RawMessage `json:"report"`
	Type    string          `json:"type"`
	Success bool            `json:"success"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode >= 400 {
		// Error bodies still use the {data, error} envelope when present.
		var env dataEnvelope[json.RawMessage]
		if json.Unmarshal(raw, &env) == nil && env.Error != "" {
			return nil, fmt.Errorf("%s %s: %s", method, path, env.Error)
		}
		return nil, fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	return raw, nil
}

// getData fetches a single-object endpoint using the {data, error} envelope.
func getData[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return decodeData[T](c.do(ctx, http.MethodGet, path, query, nil))
}

func postData[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return decodeData[T](c.do(ctx, http.MethodPost, path, nil, body))
}

func putData[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return decodeData[T](c.do(ctx, http.MethodPut, path, nil, body))
}

func decodeData[T any](raw []byte, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	var env dataEnvelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	if env.Error != "" {
		return zero, fmt.Errorf("backend: %s", env.Error)
	}
	return env.Data, nil
}

// getList fetches a paginated endpoint using the {results, next, previous}
// envelope.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) (Page[T], error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return Page[T]{}, err
	}
	var env listEnvelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return Page[T]{}, fmt.Errorf("decode response: %w", err)
	}
	if env.Results == nil {
		env.Results = []T{}
	}
	return Page[T]{Items: env.Results, Next: env.Next, Previous: env.Previous, Count: env.Count}, nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// Ping reports whether the backend is reachable; used by health checks and
// the monitoring dashboard.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil, nil)
	return err
}

// Package strapi wraps the remote content API that owns every entity.
// All requests follow the {data, meta} envelope convention; write
// bodies are wrapped as {data: <fields>}. Failures surface immediately
// with the upstream status and body; there are no retries and no
// timeout policy beyond the transport default.
package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// APIError carries a non-2xx upstream response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("strapi: status %d: %s", e.Status, e.Body)
}

// Meta holds the optional pagination block on list responses.
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination mirrors the content API pagination metadata.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type envelope[T any] struct {
	Data T     `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Client performs HTTP calls against a configured base URL.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets a bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient overrides the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient constructs a client for the content API.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("strapi: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("strapi: %s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("strapi: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return raw, nil
}

func encodeBody(attrs any) (io.Reader, error) {
	payload, err := json.Marshal(map[string]any{"data": attrs})
	if err != nil {
		return nil, fmt.Errorf("strapi: encode body: %w", err)
	}
	return bytes.NewReader(payload), nil
}

// GetOne fetches a single entity and unwraps the envelope.
func GetOne[T any](ctx context.Context, c *Client, path string, params *Params) (T, error) {
	var env envelope[T]
	raw, err := c.do(ctx, http.MethodGet, path, params.values(), nil)
	if err != nil {
		return env.Data, err
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return env.Data, fmt.Errorf("strapi: decode %s: %w", path, err)
	}
	return env.Data, nil
}

// GetList fetches a collection, returning pagination metadata when present.
func GetList[T any](ctx context.Context, c *Client, path string, params *Params) ([]T, *Pagination, error) {
	var env envelope[[]T]
	raw, err := c.do(ctx, http.MethodGet, path, params.values(), nil)
	if err != nil {
		return nil, nil, err
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, fmt.Errorf("strapi: decode %s: %w", path, err)
	}
	var pg *Pagination
	if env.Meta != nil {
		pg = env.Meta.Pagination
	}
	return env.Data, pg, nil
}

// Create POSTs wrapped attributes and returns the created entity.
func Create[T any](ctx context.Context, c *Client, path string, attrs any) (T, error) {
	var env envelope[T]
	body, err := encodeBody(attrs)
	if err != nil {
		return env.Data, err
	}
	raw, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return env.Data, err
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return env.Data, fmt.Errorf("strapi: decode %s: %w", path, err)
	}
	return env.Data, nil
}

// Update PUTs wrapped attributes and returns the updated entity.
func Update[T any](ctx context.Context, c *Client, path string, attrs any) (T, error) {
	var env envelope[T]
	body, err := encodeBody(attrs)
	if err != nil {
		return env.Data, err
	}
	raw, err := c.do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return env.Data, err
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return env.Data, fmt.Errorf("strapi: decode %s: %w", path, err)
	}
	return env.Data, nil
}

// Action POSTs to a custom endpoint with an empty body. The result is
// decoded from the envelope when the endpoint uses one, otherwise from
// the raw response.
func Action[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	raw, err := c.do(ctx, http.MethodPost, path, nil, nil)
	if err != nil {
		return out, err
	}
	if len(raw) == 0 {
		return out, nil
	}
	var probe struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil && len(probe.Data) > 0 {
		raw = probe.Data
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("strapi: decode %s: %w", path, err)
	}
	return out, nil
}

// GetRaw fetches an endpoint that does not use the envelope.
func GetRaw[T any](ctx context.Context, c *Client, path string, params *Params) (T, error) {
	var out T
	raw, err := c.do(ctx, http.MethodGet, path, params.values(), nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("strapi: decode %s: %w", path, err)
	}
	return out, nil
}

// Delete removes an entity.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

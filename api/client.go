// Package api is the HTTP+JSON client for the pizza backend. Every
// network interaction in the application goes through it: it owns the
// base URL, request timeouts, bearer-token attachment and the forced
// logout on expired credentials.
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

type Client struct {
	baseURL string
	http    *http.Client

	// Wired once during startup, before any request is made.
	tokens         TokenSource
	onUnauthorized func()
}

// NewClient builds a client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{baseURL: strings.TrimRight(baseURL, "/")}
	c.http = &http.Client{
		Timeout:   timeout,
		Transport: &authTransport{base: http.DefaultTransport, client: c},
	}
	return c
}

// SetTokenSource wires the session store in as the credential holder.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// HandleUnauthorized registers the forced-logout hook fired on any 401.
func (c *Client) HandleUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one request/response round trip. Expected rejections come
// back as *Error with the backend's message; fallback covers responses
// without a usable payload.
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return newError(resp.StatusCode, data, fallback)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any, fallback string) error {
	return c.do(ctx, http.MethodGet, path, nil, out, fallback)
}

func (c *Client) post(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPost, path, body, out, fallback)
}

func (c *Client) put(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPut, path, body, out, fallback)
}

func (c *Client) patch(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPatch, path, body, out, fallback)
}

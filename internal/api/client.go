// Package api implements the HTTP client for the ShowSphere booking API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// the booking API serializes amounts as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do issues a request and decodes the JSON response into out. Non-2xx
// responses are returned as *Error so callers can branch on the status code.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}

	return nil
}

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/handiism/picsum-downloader/internal/errs"
)

const (
	// DefaultTimeout bounds every request, including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies picsum-dl to the remote service.
	DefaultUserAgent = "picsum-dl/0.1.0"
)

// Client wraps HTTP operations with a fixed timeout and User-Agent.
//
// Client provides:
//   - Configured User-Agent header on every request
//   - Timeout handling (30s unless overridden)
//   - Typed errors: transport failures are errs.KindNetwork, non-2xx
//     responses are errs.KindAPI carrying the status code
//
// Example usage:
//
//	client := NewClient()
//
//	// Fetch raw bytes
//	resp, err := client.Get(ctx, "https://picsum.photos/200/300")
//
//	// Decode a JSON document
//	var info model.ImageRecord
//	err = client.GetJSON(ctx, "https://picsum.photos/id/0/info", &info)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTransport replaces the underlying round tripper. Tests use it to
// count or fail requests without a network.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - 30 second timeout
//   - "picsum-dl/<version>" User-Agent header
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Get performs a GET request and returns the fully read response.
//
// Returns an error if:
//   - The request cannot be built or completed (errs.KindNetwork)
//   - The response status is not 2xx (errs.KindAPI, Status set)
//   - Reading the body fails (errs.KindNetwork)
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Network("GET "+url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Network("GET "+url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errs.APIStatus("GET "+url, resp.StatusCode,
			fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Network("read body "+url, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// GetJSON performs a GET request and decodes the JSON body into v.
//
// A body that does not decode is reported as errs.KindAPI: the service
// answered, just not with what was expected.
//
// Example:
//
//	var images []model.ImageRecord
//	err := client.GetJSON(ctx, "https://picsum.photos/v2/list?page=1&limit=30", &images)
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return &errs.Error{Kind: errs.KindAPI, Op: "decode " + url, Msg: "malformed JSON payload", Err: err}
	}
	return nil
}

// Timeout returns the configured per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// UserAgent returns the configured User-Agent header value.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// Package httpapi implements core.API over the remote notes REST service.
//
// A Client is an explicit object built with a base URL and a list of
// RequestHooks. Hooks run on every outgoing request in order and are how the
// bearer token and request IDs get attached; nothing is configured globally.
//
//	c, err := httpapi.New("http://localhost:3000/",
//		httpapi.WithHook(httpapi.BearerFromStorage(store)),
//	)
//	if err != nil {
//		return err
//	}
//	notes, err := c.ListNotes(ctx)
//
// Non-2xx answers are returned as *Error, which keeps the status code and
// the server-provided message (if the body carried one).
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aretw0/notely/pkg/core"
)

// DefaultTimeout bounds every request made by a Client.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is kept in memory.
const maxErrorBody = 64 << 10

// RequestHook decorates an outgoing request before it is sent.
// Returning an error aborts the request.
type RequestHook func(req *http.Request) error

// Client provides typed access to the remote notes API.
// Client instances are safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	hooks      []RequestHook
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHook appends a request hook.
func WithHook(h RequestHook) Option {
	return func(c *Client) {
		c.hooks = append(c.hooks, h)
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. The installed http.Client is
// copied first, so a client passed to WithHTTPClient (http.DefaultClient
// included) is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithLogger sets the logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the API rooted at baseURL.
// Paths are resolved relative to baseURL, so a trailing slash is optional.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c, nil
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// resolve joins an already-escaped relative path (e.g. "notes/1") onto the base URL.
func (c *Client) resolve(path string) string {
	return c.baseURL.String() + strings.TrimPrefix(path, "/")
}

// doRequest performs an HTTP request with JSON headers and all hooks applied.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, hook := range c.hooks {
		if err := hook(req); err != nil {
			return nil, fmt.Errorf("request hook failed: %w", err)
		}
	}

	c.logger.Debug("api request", "method", method, "path", req.URL.Path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("api response", "method", method, "path", req.URL.Path, "status", resp.StatusCode)
	return resp, nil
}

// readResponse returns the body of a successful response, or an *Error.
func readResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newError(resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// decodeResponse decodes a successful JSON response into target.
// A nil target discards the body.
func decodeResponse(resp *http.Response, target any) error {
	body, err := readResponse(resp)
	if err != nil {
		return err
	}
	if target == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
	}
	return nil
}

var _ core.API = (*Client)(nil)

// Package client implements the HTTP client for the GUID lifecycle API.
//
// Endpoints with the mock:// scheme are served by the in-process simulator
// instead of the network; everything else is ordinary HTTP(S).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guidtrack/guidctl/pkg/guid"
	"github.com/guidtrack/guidctl/pkg/logging"
	"github.com/guidtrack/guidctl/pkg/mockapi"
)

// ErrMissingScheme is returned by New for endpoint URLs without a scheme.
var ErrMissingScheme = errors.New("http scheme needs to be provided, e.g. https://<host> or http://<host>")

// Client provides the GUID lifecycle operations. Every method performs a
// single request with no retries.
type Client interface {
	// Create asks the server to mint a GUID for the user.
	Create(ctx context.Context, user string) (*Response, error)
	// CreateWithID creates (or updates) the given GUID. An empty expire is
	// omitted from the request.
	CreateWithID(ctx context.Context, id, user, expire string) (*Response, error)
	// Read fetches the record for a GUID.
	Read(ctx context.Context, id string) (*Response, error)
	// Update sets a new expire time for a GUID.
	Update(ctx context.Context, id, expire string) (*Response, error)
	// Delete removes a GUID.
	Delete(ctx context.Context, id string) (*Response, error)
}

// Response is a completed 2xx exchange. Failed statuses are reported as
// *APIError instead.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Record decodes the response body into the API resource shape.
func (r *Response) Record() (*guid.Record, error) {
	var rec guid.Record
	if err := json.Unmarshal(r.Body, &rec); err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}
	return &rec, nil
}

// APIError is a non-2xx response from the API. Status carries the full
// status line, which for simulated faults includes the diagnostic reason.
type APIError struct {
	StatusCode int
	Status     string
	Method     string
	URL        string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed: %s (%s %s)", e.Status, e.Method, e.URL)
}

// guidClient implements Client over net/http.
type guidClient struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

var _ Client = (*guidClient)(nil)

// Option configures a client.
type Option func(*guidClient)

// WithTimeout sets the HTTP timeout for the client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *guidClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *guidClient) {
		c.httpClient = hc
	}
}

// WithTransport sets the transport of the underlying HTTP client. It also
// suppresses the automatic simulator attachment for mock:// endpoints.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *guidClient) {
		c.httpClient.Transport = rt
	}
}

// WithLogger sets the debug logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *guidClient) {
		c.log = log
	}
}

// New creates a client for the endpoint. The URL must carry a scheme; when
// the scheme is mockapi.Scheme the client is wired to the in-process
// simulator bound to the endpoint's host, and no request reaches the
// network.
func New(baseURL string, opts ...Option) (Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" {
		return nil, ErrMissingScheme
	}

	c := &guidClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if u.Scheme == mockapi.Scheme && c.httpClient.Transport == nil {
		c.log.Debug("endpoint is simulated, requests will not reach the network", "host", u.Host)
		c.httpClient.Transport = mockapi.New(u.Host, mockapi.WithLogger(c.log))
	}
	return c, nil
}

// Create asks the server to mint a GUID for the user.
func (c *guidClient) Create(ctx context.Context, user string) (*Response, error) {
	payload := map[string]string{"user": user}
	return c.post(ctx, "/guid", payload)
}

// CreateWithID creates or updates the given GUID.
func (c *guidClient) CreateWithID(ctx context.Context, id, user, expire string) (*Response, error) {
	payload := map[string]string{"user": user}
	if expire != "" {
		payload["expire"] = expire
	}
	return c.post(ctx, "/guid/"+id, payload)
}

// Read fetches the record for a GUID.
func (c *guidClient) Read(ctx context.Context, id string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/guid/"+id, nil)
}

// Update sets a new expire time for a GUID.
func (c *guidClient) Update(ctx context.Context, id, expire string) (*Response, error) {
	return c.post(ctx, "/guid/"+id, map[string]string{"expire": expire})
}

// Delete removes a GUID.
func (c *guidClient) Delete(ctx context.Context, id string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/guid/"+id, nil)
}

func (c *guidClient) post(ctx context.Context, path string, payload map[string]string) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *guidClient) do(ctx context.Context, method, path string, body []byte) (*Response, error) {
	fullURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "url", fullURL, "error", err)
		return nil, fmt.Errorf("sending %s %s: %w", method, fullURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.log.Debug("request completed",
		"method", method,
		"url", fullURL,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Method:     method,
			URL:        fullURL,
			Body:       data,
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       data,
	}, nil
}

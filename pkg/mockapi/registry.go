package mockapi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/guidtrack/guidctl/internal/routing"
	"github.com/guidtrack/guidctl/pkg/logging"
)

// Scheme marks a URL as a simulated endpoint.
const Scheme = "mock"

var (
	// ErrNotIntercepted reports a request the registry has no route for.
	// It signals a programming or configuration error: an intercepted
	// request must never silently fall through to the network.
	ErrNotIntercepted = errors.New("no simulated route registered for request")

	// ErrMissingGUID reports a read or delete against the bare /guid path.
	ErrMissingGUID = errors.New("request path carries no guid")
)

// synthesizer produces a simulated response from the request's id segment
// and raw body. Synthesizers are pure functions: identical input yields
// byte-identical output.
type synthesizer func(id string, body []byte) (*synthesized, error)

// synthesized is one simulated response before it is packed into an
// *http.Response.
type synthesized struct {
	status int
	reason string
	body   []byte
}

// route binds an HTTP method to its synthesizer. The path shape is shared
// by all routes and parsed by routing.ExtractGUID.
type route struct {
	method  string
	pattern string
	handle  synthesizer
}

// Registry is the simulator's route table. It implements http.RoundTripper
// so it can be mounted as the transport of an ordinary http.Client; the
// response travels back through the exact same path real traffic would.
//
// A Registry holds no mutable state after construction and is safe for
// concurrent use.
type Registry struct {
	host   string
	routes []route
	log    *slog.Logger
}

var _ http.RoundTripper = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the operational logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// New constructs a Registry bound to the given simulated host. Requests to
// a different host are not intercepted and fail with ErrNotIntercepted.
// An empty host matches any host under the mock scheme.
func New(host string, opts ...Option) *Registry {
	r := &Registry{
		host: host,
		routes: []route{
			{method: http.MethodGet, pattern: "/guid/{guid}", handle: synthesizeRead},
			{method: http.MethodPost, pattern: "/guid[/{guid}]", handle: synthesizeCreateUpdate},
			{method: http.MethodDelete, pattern: "/guid/{guid}", handle: synthesizeDelete},
		},
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Client returns an http.Client that resolves every request through the
// registry. Convenient for tests and for callers that do not need to
// customize the client further.
func (r *Registry) Client() *http.Client {
	return &http.Client{Transport: r}
}

// RoundTrip intercepts the request and synthesizes its response.
func (r *Registry) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != Scheme {
		return nil, fmt.Errorf("scheme %q is not simulated: %w", req.URL.Scheme, ErrNotIntercepted)
	}
	if r.host != "" && req.URL.Host != r.host {
		return nil, fmt.Errorf("host %q is not the simulated host %q: %w", req.URL.Host, r.host, ErrNotIntercepted)
	}

	id, err := routing.ExtractGUID(req.URL.Path)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", req.URL.Path, ErrNotIntercepted)
	}

	rt, ok := r.match(req.Method)
	if !ok {
		return nil, fmt.Errorf("method %s: %w", req.Method, ErrNotIntercepted)
	}

	var body []byte
	if req.Body != nil {
		body, err = io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading intercepted request body: %w", err)
		}
	}

	r.log.Debug("request intercepted",
		"method", req.Method,
		"path", req.URL.Path,
		"pattern", rt.pattern,
		"guid", id)

	resp, err := rt.handle(id, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	r.log.Debug("response synthesized",
		"status", resp.status,
		"reason", resp.reason,
		"bytes", len(resp.body))

	return newResponse(req, resp), nil
}

// match selects the route for a method. The table is ordered, but methods
// are distinct so at most one route can match.
func (r *Registry) match(method string) (route, bool) {
	for _, rt := range r.routes {
		if rt.method == method {
			return rt, true
		}
	}
	return route{}, false
}

// newResponse packs a synthesized response into an *http.Response carrying
// the status line a real server would have sent.
func newResponse(req *http.Request, s *synthesized) *http.Response {
	resp := &http.Response{
		Status:     fmt.Sprintf("%d %s", s.status, s.reason),
		StatusCode: s.status,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header),
		Body:       http.NoBody,
		Request:    req,
	}
	if len(s.body) > 0 {
		resp.Header.Set("Content-Type", "application/json")
		resp.Body = io.NopCloser(bytes.NewReader(s.body))
		resp.ContentLength = int64(len(s.body))
	}
	return resp
}

package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/as3d12/instaboard/client/internal/api"
	"golang.org/x/time/rate"
)

// DefaultEndpoint is the public random-user directory.
const DefaultEndpoint = "https://randomuser.me/api/"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client fetches batches of raw user records from the directory endpoint.
// It is stateless between calls and safe for concurrent use.
type Client struct {
	endpoint  string
	http      *http.Client
	limiter   *rate.Limiter // nil means unpaced
	userAgent string

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given endpoint.
// Additional options can be provided via functional arguments.
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		panic("endpoint cannot be empty")
	}

	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	if c.userAgent != "" {
		c.wrapTransportWithUserAgent()
	}

	return c
}

// wrapTransportWithUserAgent installs the User-Agent header on every request.
func (c *Client) wrapTransportWithUserAgent() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &userAgentTransport{
		base:      baseTransport,
		userAgent: c.userAgent,
	}
}

// userAgentTransport wraps an http.RoundTripper to set the User-Agent header.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(cloned)
}

// Endpoint returns the configured directory endpoint.
func (c *Client) Endpoint() string { return c.endpoint }

// FetchUsers requests exactly count records in a single attempt. Failures
// other than a non-positive count are *NetworkError values; the batch is
// returned as received, unnormalized.
func (c *Client) FetchUsers(ctx context.Context, count int) ([]RawUser, error) {
	start := time.Now()
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			observeFetch(start, err)
			return nil, newPacingError(err)
		}
	}
	users, err := api.FetchUsers(ctx, c.http, c.endpoint, count)
	observeFetch(start, err)
	return users, err
}

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

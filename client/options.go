package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Option configures a Client during construction in New.
//
// Options are applied in order before the User-Agent wrapper is installed, so
// transport-related options (like debug logging) sit underneath it.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. Later options such as
// WithHTTPTimeout and WithDebugLogging modify the supplied client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it dumps full
// response bodies, which contain personal data.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, already := c.http.Transport.(*debugTransport); !already {
				c.http.Transport = &debugTransport{base: c.http.Transport}
			}
		}
		return nil
	}
}

// WithRateLimit paces requests to at most r per second with the given burst.
// A zero or infinite r disables pacing. Waiting honours the request context.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(c *Client) error {
		if r < 0 {
			return fmt.Errorf("rate limit must be >= 0")
		}
		if r == 0 || r == rate.Inf {
			c.limiter = nil
			return nil
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(r, burst)
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

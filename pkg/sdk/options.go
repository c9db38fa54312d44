package sdk

import (
	"net/http"
	"time"
)

type options struct {
	httpClient *http.Client
	timeout    time.Duration
}

func defaultOptions() options {
	// No client-imposed deadline: uploads and reviews run a full analysis
	// server-side and take as long as they take. Every request still
	// honors its context.
	return options{timeout: 0}
}

// Option configures the SDK client.
type Option func(*options)

// WithTimeout sets a per-call timeout. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

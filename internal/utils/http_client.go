package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient].
type HTTPClientOptions struct {
	// BaseURL resolves relative request URLs. Absolute URLs bypass it.
	BaseURL string
	// Timeout bounds a single request; zero means no client-side limit.
	Timeout time.Duration
	// WithCredentials keeps a cookie jar so cookies set by the server are
	// sent back. When false the client keeps no cookies.
	WithCredentials bool
	// Logger receives resty's own warnings and errors. Nil keeps resty's
	// default logger.
	Logger resty.Logger
}

// NewHTTPClient creates and returns a new HTTPClient that speaks JSON.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "http://localhost:5001/api"})
//	resp, err := client.R().Get("/docks")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if !opts.WithCredentials {
		client.SetCookieJar(nil)
	}
	if opts.Logger != nil {
		client.SetLogger(opts.Logger)
	}

	return &HTTPClient{Client: client}
}

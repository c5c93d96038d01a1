package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-port-ops/internal/config"
	"github.com/MKhiriev/go-port-ops/internal/endpoints"
	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/session"
	"github.com/MKhiriev/go-port-ops/internal/utils"
)

// Client is the single shared API client of the application. It is safe for
// concurrent use; each request reads its own token snapshot.
type Client struct {
	http      *utils.HTTPClient
	endpoints *endpoints.Registry
	session   *session.Session

	requestMiddlewares  []RequestMiddleware
	responseMiddlewares []ResponseMiddleware

	logger *logger.Logger
}

// Option customises a [Client] at construction.
type Option func(*Client)

// WithRequestMiddlewares appends mws after the default [AttachToken].
func WithRequestMiddlewares(mws ...RequestMiddleware) Option {
	return func(c *Client) {
		c.requestMiddlewares = append(c.requestMiddlewares, mws...)
	}
}

// WithResponseMiddlewares appends mws after the default [HandleUnauthorized].
func WithResponseMiddlewares(mws ...ResponseMiddleware) Option {
	return func(c *Client) {
		c.responseMiddlewares = append(c.responseMiddlewares, mws...)
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.SetTransport(rt)
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.http.SetHeader("User-Agent", ua)
		}
	}
}

// NewClient builds the shared client: base URL from cfg.APIURL (default
// http://localhost:5001/api), JSON content type, request timeout and cookie
// jar per cfg, with [AttachToken] and [HandleUnauthorized] wired in.
func NewClient(cfg config.ClientAdapter, sess *session.Session, log *logger.Logger, opts ...Option) *Client {
	registry := endpoints.New(cfg.APIURL)

	c := &Client{
		http: utils.NewHTTPClient(utils.HTTPClientOptions{
			BaseURL:         registry.BaseURL,
			Timeout:         cfg.RequestTimeout,
			WithCredentials: cfg.WithCredentials,
			Logger:          log,
		}),
		endpoints:           registry,
		session:             sess,
		requestMiddlewares:  []RequestMiddleware{AttachToken(sess)},
		responseMiddlewares: []ResponseMiddleware{HandleUnauthorized(sess, log)},
		logger:              log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoints implements [API].
func (c *Client) Endpoints() *endpoints.Registry {
	return c.endpoints
}

// Session returns the session the client attaches tokens from.
func (c *Client) Session() *session.Session {
	return c.session
}

// Do implements [API]. Errors are never swallowed and requests are never
// retried.
func (c *Client) Do(ctx context.Context, method, url string, body, result any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	for _, mw := range c.requestMiddlewares {
		if err := mw(ctx, req); err != nil {
			return fmt.Errorf("%s %s: %w", method, url, err)
		}
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("url", url).Msg("request failed")
		err = fmt.Errorf("%s %s: %w", method, url, err)
	} else {
		err = mapHTTPError(resp)
	}

	for _, mw := range c.responseMiddlewares {
		err = mw(ctx, resp, err)
	}
	if err != nil {
		return err
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrDecodingResponse, method, url, err)
	}

	return nil
}

func (c *Client) Get(ctx context.Context, url string, result any) error {
	return c.Do(ctx, http.MethodGet, url, nil, result)
}

func (c *Client) Post(ctx context.Context, url string, body, result any) error {
	return c.Do(ctx, http.MethodPost, url, body, result)
}

func (c *Client) Put(ctx context.Context, url string, body, result any) error {
	return c.Do(ctx, http.MethodPut, url, body, result)
}

func (c *Client) Patch(ctx context.Context, url string, body, result any) error {
	return c.Do(ctx, http.MethodPatch, url, body, result)
}

func (c *Client) Delete(ctx context.Context, url string, result any) error {
	return c.Do(ctx, http.MethodDelete, url, nil, result)
}

// CloseIdleConnections drops keep-alive connections held by the transport.
func (c *Client) CloseIdleConnections() {
	c.http.GetClient().CloseIdleConnections()
}

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/internal/config"
	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/service"
	"github.com/MKhiriev/go-port-ops/internal/session"
	"github.com/MKhiriev/go-port-ops/internal/store"
	"github.com/MKhiriev/go-port-ops/internal/tui"
	"github.com/MKhiriev/go-port-ops/models"
)

// App is one configured client instance.
type App struct {
	Services *service.ClientServices
	Session  *session.Session
	TUI      *tui.TUI

	api      *adapter.Client
	storages *store.ClientStorages
	logger   *logger.Logger
}

// Option customises [NewApp].
type Option func(*appOptions)

type appOptions struct {
	tokens         store.TokenStorage
	adapterOptions []adapter.Option
}

// WithTokenStorage uses tokens instead of the backend named by the config.
func WithTokenStorage(tokens store.TokenStorage) Option {
	return func(o *appOptions) {
		o.tokens = tokens
	}
}

// WithAdapterOptions passes opts to the shared API client.
func WithAdapterOptions(opts ...adapter.Option) Option {
	return func(o *appOptions) {
		o.adapterOptions = append(o.adapterOptions, opts...)
	}
}

// NewApp opens the configured token storage and builds the client stack on
// top of it. nav receives the login route whenever the session is torn down.
// The caller must Close the app.
func NewApp(ctx context.Context, cfg *config.ClientConfig, nav session.Navigator, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil client config")
	}

	var o appOptions
	for _, opt := range opts {
		opt(&o)
	}

	storages := &store.ClientStorages{Tokens: o.tokens}
	if o.tokens == nil {
		var err error
		storages, err = store.NewClientStorages(ctx, cfg.Session.Store, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("create token storage: %w", err)
		}
	}

	sess := session.New(storages.Tokens, nav,
		session.WithLoginRoute(cfg.Session.LoginRoute),
		session.WithLogger(log),
	)
	adapterOpts := append([]adapter.Option{adapter.WithUserAgent(buildInfo.UserAgent("portctl"))}, o.adapterOptions...)
	api := adapter.NewClient(cfg.Adapter, sess, log, adapterOpts...)
	services := service.NewClientServices(api, sess)

	return &App{
		Services: services,
		Session:  sess,
		TUI:      tui.New(services.Auth, buildInfo, log),
		api:      api,
		storages: storages,
		logger:   log,
	}, nil
}

// API returns the shared API client.
func (a *App) API() *adapter.Client {
	return a.api
}

// Close releases idle connections and the token storage.
func (a *App) Close() error {
	a.api.CloseIdleConnections()
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("error closing token storage")
		return err
	}
	return nil
}

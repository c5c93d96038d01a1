package handler

import (
	"github.com/MKhiriev/go-port-ops/internal/config"
	"github.com/MKhiriev/go-port-ops/internal/handler/http"
	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/stubapi"
	"github.com/MKhiriev/go-port-ops/models"
)

// Handlers groups the transports of the stub API. Only REST is served.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the REST handler over backend.
func NewHandlers(backend *stubapi.Backend, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	if cfg.HTTPAddress == "" {
		return nil, ErrNoAddress
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating port api handlers")

	return &Handlers{
		HTTP: http.NewHandler(backend, buildInfo, logger),
	}, nil
}

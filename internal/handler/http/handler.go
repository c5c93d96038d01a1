package http

import (
	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/stubapi"
	"github.com/MKhiriev/go-port-ops/models"
)

type Handler struct {
	backend   *stubapi.Backend
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(backend *stubapi.Backend, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backend:   backend,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-port-ops/internal/config"
	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/stubapi"
	"github.com/MKhiriev/go-port-ops/models"
)

func TestNewHandlers(t *testing.T) {
	backend := stubapi.NewBackend(config.App{}, logger.Nop())

	handlers, err := NewHandlers(backend, models.AppBuildInfo{}, config.Server{HTTPAddress: "localhost:5001"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)

	_, err = NewHandlers(backend, models.AppBuildInfo{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoAddress)

	_, err = NewHandlers(nil, models.AppBuildInfo{}, config.Server{HTTPAddress: "localhost:5001"}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoBackend)
}

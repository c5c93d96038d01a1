package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/internal/session"
	"github.com/MKhiriev/go-port-ops/models"
)

// ClientServices groups the resource services built over one shared client.
type ClientServices struct {
	Auth      AuthService
	Docks     DockService
	Ships     ShipService
	Berthings BerthingService
	Users     UserService
}

func NewClientServices(api adapter.API, sess *session.Session) *ClientServices {
	return &ClientServices{
		Auth:      NewClientAuthService(api, sess),
		Docks:     NewClientDockService(api),
		Ships:     NewClientShipService(api),
		Berthings: NewClientBerthingService(api),
		Users:     NewClientUserService(api),
	}
}

// Overview fetches docks, ships and current berthings concurrently. The
// first failure cancels the remaining requests and is returned.
func (s *ClientServices) Overview(ctx context.Context) (models.Overview, error) {
	var overview models.Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docks, err := s.Docks.List(gctx)
		overview.Docks = docks
		return err
	})
	g.Go(func() error {
		ships, err := s.Ships.List(gctx)
		overview.Ships = ships
		return err
	})
	g.Go(func() error {
		current, err := s.Berthings.Current(gctx)
		overview.CurrentBerthings = current
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Overview{}, fmt.Errorf("overview: %w", err)
	}

	return overview, nil
}

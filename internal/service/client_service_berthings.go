package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/models"
)

type clientBerthingService struct {
	api adapter.API
}

func NewClientBerthingService(api adapter.API) BerthingService {
	return &clientBerthingService{api: api}
}

func (b *clientBerthingService) List(ctx context.Context) ([]models.Berthing, error) {
	return fetchList[models.Berthing](ctx, b.api, b.api.Endpoints().Berthings.Base, "list berthings")
}

func (b *clientBerthingService) Current(ctx context.Context) ([]models.Berthing, error) {
	return fetchList[models.Berthing](ctx, b.api, b.api.Endpoints().Berthings.Current, "list current berthings")
}

func (b *clientBerthingService) MyRequests(ctx context.Context) ([]models.Berthing, error) {
	return fetchList[models.Berthing](ctx, b.api, b.api.Endpoints().Berthings.MyRequests, "list my berthing requests")
}

func (b *clientBerthingService) ByShip(ctx context.Context, shipID string) ([]models.Berthing, error) {
	shipID, err := requireID(shipID)
	if err != nil {
		return nil, err
	}
	return fetchList[models.Berthing](ctx, b.api, b.api.Endpoints().Berthings.ByShip(shipID), "list berthings by ship")
}

func (b *clientBerthingService) ByDock(ctx context.Context, dockID string) ([]models.Berthing, error) {
	dockID, err := requireID(dockID)
	if err != nil {
		return nil, err
	}
	return fetchList[models.Berthing](ctx, b.api, b.api.Endpoints().Berthings.ByDock(dockID), "list berthings by dock")
}

func (b *clientBerthingService) Get(ctx context.Context, id string) (models.Berthing, error) {
	id, err := requireID(id)
	if err != nil {
		return models.Berthing{}, err
	}
	return send[models.Berthing](ctx, b.api, http.MethodGet, b.api.Endpoints().Berthings.ByID(id), nil, "get berthing")
}

func (b *clientBerthingService) Request(ctx context.Context, berthing models.Berthing) (models.Berthing, error) {
	if berthing.Ship.IsZero() || berthing.Dock.IsZero() {
		return models.Berthing{}, fmt.Errorf("request berthing: ship and dock: %w", ErrEmptyID)
	}
	berthing.ID = ""
	return send[models.Berthing](ctx, b.api, http.MethodPost, b.api.Endpoints().Berthings.Base, berthing, "request berthing")
}

func (b *clientBerthingService) Update(ctx context.Context, id string, berthing models.Berthing) (models.Berthing, error) {
	id, err := requireID(id)
	if err != nil {
		return models.Berthing{}, err
	}
	return send[models.Berthing](ctx, b.api, http.MethodPut, b.api.Endpoints().Berthings.ByID(id), berthing, "update berthing")
}

func (b *clientBerthingService) SetStatus(ctx context.Context, id string, update models.BerthingStatusUpdate) (models.Berthing, error) {
	id, err := requireID(id)
	if err != nil {
		return models.Berthing{}, err
	}
	if !update.Status.Valid() {
		return models.Berthing{}, fmt.Errorf("%w: %q", ErrInvalidBerthingStatus, update.Status)
	}
	return send[models.Berthing](ctx, b.api, http.MethodPatch, b.api.Endpoints().Berthings.Status(id), update, "set berthing status")
}

func (b *clientBerthingService) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return remove(ctx, b.api, b.api.Endpoints().Berthings.ByID(id), "delete berthing")
}

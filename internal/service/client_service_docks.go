package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/models"
)

type clientDockService struct {
	api adapter.API
}

func NewClientDockService(api adapter.API) DockService {
	return &clientDockService{api: api}
}

func (d *clientDockService) List(ctx context.Context) ([]models.Dock, error) {
	return fetchList[models.Dock](ctx, d.api, d.api.Endpoints().Docks.Base, "list docks")
}

func (d *clientDockService) Get(ctx context.Context, id string) (models.Dock, error) {
	id, err := requireID(id)
	if err != nil {
		return models.Dock{}, err
	}
	return send[models.Dock](ctx, d.api, http.MethodGet, d.api.Endpoints().Docks.ByID(id), nil, "get dock")
}

func (d *clientDockService) Create(ctx context.Context, dock models.Dock) (models.Dock, error) {
	dock.ID = ""
	return send[models.Dock](ctx, d.api, http.MethodPost, d.api.Endpoints().Docks.Base, dock, "create dock")
}

func (d *clientDockService) Update(ctx context.Context, id string, dock models.Dock) (models.Dock, error) {
	id, err := requireID(id)
	if err != nil {
		return models.Dock{}, err
	}
	return send[models.Dock](ctx, d.api, http.MethodPut, d.api.Endpoints().Docks.ByID(id), dock, "update dock")
}

func (d *clientDockService) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return remove(ctx, d.api, d.api.Endpoints().Docks.ByID(id), "delete dock")
}

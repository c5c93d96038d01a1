package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/models"
)

type clientShipService struct {
	api adapter.API
}

func NewClientShipService(api adapter.API) ShipService {
	return &clientShipService{api: api}
}

func (s *clientShipService) List(ctx context.Context) ([]models.Ship, error) {
	return fetchList[models.Ship](ctx, s.api, s.api.Endpoints().Ships.Base, "list ships")
}

// Search queries the search endpoint; criteria travel as query parameters.
func (s *clientShipService) Search(ctx context.Context, query models.ShipSearch) ([]models.Ship, error) {
	params := query.Params()
	if len(params) == 0 {
		return nil, ErrEmptySearchQuery
	}

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}

	return fetchList[models.Ship](ctx, s.api, s.api.Endpoints().Ships.Search+"?"+values.Encode(), "search ships")
}

func (s *clientShipService) Get(ctx context.Context, id string) (models.Ship, error) {
	id, err := requireID(id)
	if err != nil {
		return models.Ship{}, err
	}
	return send[models.Ship](ctx, s.api, http.MethodGet, s.api.Endpoints().Ships.ByID(id), nil, "get ship")
}

func (s *clientShipService) Create(ctx context.Context, ship models.Ship) (models.Ship, error) {
	ship.ID = ""
	return send[models.Ship](ctx, s.api, http.MethodPost, s.api.Endpoints().Ships.Base, ship, "create ship")
}

func (s *clientShipService) Update(ctx context.Context, id string, ship models.Ship) (models.Ship, error) {
	id, err := requireID(id)
	if err != nil {
		return models.Ship{}, err
	}
	return send[models.Ship](ctx, s.api, http.MethodPut, s.api.Endpoints().Ships.ByID(id), ship, "update ship")
}

func (s *clientShipService) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return remove(ctx, s.api, s.api.Endpoints().Ships.ByID(id), "delete ship")
}

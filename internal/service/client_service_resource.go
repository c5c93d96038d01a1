package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
)

// fetchList GETs url and decodes a JSON array. A null or empty body yields
// an empty, non-nil slice.
func fetchList[T any](ctx context.Context, api adapter.API, url, op string) ([]T, error) {
	var items []T
	if err := api.Do(ctx, http.MethodGet, url, nil, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// send performs method on url with body and decodes the answer into a T.
func send[T any](ctx context.Context, api adapter.API, method, url string, body any, op string) (T, error) {
	var out T
	if err := api.Do(ctx, method, url, body, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func remove(ctx context.Context, api adapter.API, url, op string) error {
	if err := api.Do(ctx, http.MethodDelete, url, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrEmptyID
	}
	return id, nil
}

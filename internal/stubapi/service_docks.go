package stubapi

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-port-ops/models"
)

func (b *Backend) ListDocks(ctx context.Context) []models.Dock {
	return b.docks.list(nil)
}

func (b *Backend) GetDock(ctx context.Context, id string) (models.Dock, error) {
	dock, ok := b.docks.get(id)
	if !ok {
		return models.Dock{}, ErrNotFound
	}
	return dock, nil
}

// CreateDock stores dock under a fresh identifier. A new dock is available
// unless a status is given.
func (b *Backend) CreateDock(ctx context.Context, dock models.Dock) (models.Dock, error) {
	dock.Name = strings.TrimSpace(dock.Name)
	if dock.Name == "" {
		return models.Dock{}, ErrInvalidDataProvided
	}
	if dock.Status == "" {
		dock.Status = models.DockAvailable
	}

	now := b.timestamp()
	dock.ID = b.ids.Generate()
	dock.CreatedAt, dock.UpdatedAt = now, now

	b.docks.put(dock.ID, dock)
	return dock, nil
}

// UpdateDock replaces the stored dock, keeping its identifier and creation
// time.
func (b *Backend) UpdateDock(ctx context.Context, id string, dock models.Dock) (models.Dock, error) {
	return b.docks.update(id, func(stored *models.Dock) error {
		dock.ID, dock.CreatedAt = stored.ID, stored.CreatedAt
		if strings.TrimSpace(dock.Name) == "" {
			dock.Name = stored.Name
		}
		if dock.Status == "" {
			dock.Status = stored.Status
		}
		dock.UpdatedAt = b.timestamp()
		*stored = dock
		return nil
	})
}

func (b *Backend) DeleteDock(ctx context.Context, id string) error {
	if !b.docks.delete(id) {
		return ErrNotFound
	}
	return nil
}

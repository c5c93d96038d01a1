package stubapi

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-port-ops/models"
)

func (b *Backend) ListShips(ctx context.Context) []models.Ship {
	return b.ships.list(nil)
}

// SearchShips matches Query case-insensitively against the name and IMO
// number. Type must match exactly and Flag case-insensitively. Empty
// criteria match everything.
func (b *Backend) SearchShips(ctx context.Context, search models.ShipSearch) []models.Ship {
	query := strings.ToLower(strings.TrimSpace(search.Query))

	return b.ships.list(func(s models.Ship) bool {
		if query != "" &&
			!strings.Contains(strings.ToLower(s.Name), query) &&
			!strings.Contains(strings.ToLower(s.IMONumber), query) {
			return false
		}
		if search.Type != "" && s.Type != search.Type {
			return false
		}
		if search.Flag != "" && !strings.EqualFold(s.Flag, search.Flag) {
			return false
		}
		return true
	})
}

func (b *Backend) GetShip(ctx context.Context, id string) (models.Ship, error) {
	ship, ok := b.ships.get(id)
	if !ok {
		return models.Ship{}, ErrNotFound
	}
	return ship, nil
}

// CreateShip stores ship owned by ownerID unless the payload names an owner.
func (b *Backend) CreateShip(ctx context.Context, ownerID string, ship models.Ship) (models.Ship, error) {
	ship.Name = strings.TrimSpace(ship.Name)
	if ship.Name == "" {
		return models.Ship{}, ErrInvalidDataProvided
	}
	if ship.Owner.IsZero() {
		ship.Owner = models.RefTo(ownerID)
	}

	now := b.timestamp()
	ship.ID = b.ids.Generate()
	ship.CreatedAt, ship.UpdatedAt = now, now

	b.ships.put(ship.ID, ship)
	return ship, nil
}

// UpdateShip replaces the stored ship, keeping its identifier, owner and
// creation time.
func (b *Backend) UpdateShip(ctx context.Context, id string, ship models.Ship) (models.Ship, error) {
	return b.ships.update(id, func(stored *models.Ship) error {
		ship.ID, ship.CreatedAt, ship.Owner = stored.ID, stored.CreatedAt, stored.Owner
		if strings.TrimSpace(ship.Name) == "" {
			ship.Name = stored.Name
		}
		ship.UpdatedAt = b.timestamp()
		*stored = ship
		return nil
	})
}

func (b *Backend) DeleteShip(ctx context.Context, id string) error {
	if !b.ships.delete(id) {
		return ErrNotFound
	}
	return nil
}

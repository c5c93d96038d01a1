package stubapi

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/models"
)

func (b *Backend) ListBerthings(ctx context.Context) []models.Berthing {
	return b.berthings.list(nil)
}

// CurrentBerthings lists active berthings and approved ones whose window
// contains the current time.
func (b *Backend) CurrentBerthings(ctx context.Context) []models.Berthing {
	now := b.now()
	return b.berthings.list(func(br models.Berthing) bool {
		switch br.Status {
		case models.BerthingActive:
			return true
		case models.BerthingApproved:
			return !br.ArrivalTime.After(now) && (br.DepartureTime.IsZero() || now.Before(br.DepartureTime))
		default:
			return false
		}
	})
}

func (b *Backend) BerthingsRequestedBy(ctx context.Context, userID string) []models.Berthing {
	return b.berthings.list(func(br models.Berthing) bool {
		return br.RequestedBy.ID == userID
	})
}

func (b *Backend) BerthingsByShip(ctx context.Context, shipID string) []models.Berthing {
	return b.berthings.list(func(br models.Berthing) bool {
		return br.Ship.ID == shipID
	})
}

func (b *Backend) BerthingsByDock(ctx context.Context, dockID string) []models.Berthing {
	return b.berthings.list(func(br models.Berthing) bool {
		return br.Dock.ID == dockID
	})
}

func (b *Backend) GetBerthing(ctx context.Context, id string) (models.Berthing, error) {
	br, ok := b.berthings.get(id)
	if !ok {
		return models.Berthing{}, ErrNotFound
	}
	return br, nil
}

// RequestBerthing files a pending berthing for userID. The referenced ship
// and dock must exist.
func (b *Backend) RequestBerthing(ctx context.Context, userID string, br models.Berthing) (models.Berthing, error) {
	if err := b.checkRefs(br); err != nil {
		logger.FromContext(ctx).Err(err).Msg("berthing request rejected")
		return models.Berthing{}, err
	}

	now := b.timestamp()
	br.ID = b.ids.Generate()
	br.RequestedBy = models.RefTo(userID)
	br.Status = models.BerthingPending
	br.CreatedAt, br.UpdatedAt = now, now

	b.berthings.put(br.ID, br)
	return br, nil
}

// UpdateBerthing replaces the stored berthing. Identifier, requester, status
// and creation time are kept; status changes go through SetBerthingStatus.
func (b *Backend) UpdateBerthing(ctx context.Context, id string, br models.Berthing) (models.Berthing, error) {
	return b.berthings.update(id, func(stored *models.Berthing) error {
		if br.Ship.IsZero() {
			br.Ship = stored.Ship
		}
		if br.Dock.IsZero() {
			br.Dock = stored.Dock
		}
		if err := b.checkRefs(br); err != nil {
			return err
		}
		br.ID, br.CreatedAt = stored.ID, stored.CreatedAt
		br.RequestedBy, br.Status = stored.RequestedBy, stored.Status
		br.UpdatedAt = b.timestamp()
		*stored = br
		return nil
	})
}

func (b *Backend) SetBerthingStatus(ctx context.Context, id string, update models.BerthingStatusUpdate) (models.Berthing, error) {
	if !update.Status.Valid() {
		return models.Berthing{}, ErrInvalidStatus
	}

	br, err := b.berthings.update(id, func(stored *models.Berthing) error {
		stored.Status = update.Status
		if update.Reason != "" {
			stored.Notes = update.Reason
		}
		stored.UpdatedAt = b.timestamp()
		return nil
	})
	if err != nil {
		return models.Berthing{}, err
	}

	logger.FromContext(ctx).Info().
		Str("berthing_id", id).
		Str("status", string(update.Status)).
		Msg("berthing status changed")
	return br, nil
}

func (b *Backend) DeleteBerthing(ctx context.Context, id string) error {
	if !b.berthings.delete(id) {
		return ErrNotFound
	}
	return nil
}

func (b *Backend) checkRefs(br models.Berthing) error {
	if br.Ship.IsZero() || br.Dock.IsZero() {
		return fmt.Errorf("%w: ship and dock are required", ErrInvalidDataProvided)
	}
	if _, ok := b.ships.get(br.Ship.ID); !ok {
		return fmt.Errorf("%w: unknown ship %s", ErrInvalidDataProvided, br.Ship.ID)
	}
	if _, ok := b.docks.get(br.Dock.ID); !ok {
		return fmt.Errorf("%w: unknown dock %s", ErrInvalidDataProvided, br.Dock.ID)
	}
	return nil
}

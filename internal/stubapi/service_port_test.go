package stubapi

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-port-ops/models"
)

func TestDocks_CRUD(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	assert.NotNil(t, b.ListDocks(ctx))
	assert.Empty(t, b.ListDocks(ctx))

	_, err := b.CreateDock(ctx, models.Dock{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	north, err := b.CreateDock(ctx, models.Dock{Name: "North Pier", Length: 300})
	require.NoError(t, err)
	assert.Equal(t, models.DockAvailable, north.Status)

	south, err := b.CreateDock(ctx, models.Dock{Name: "South Pier", Status: models.DockMaintenance})
	require.NoError(t, err)

	docks := b.ListDocks(ctx)
	require.Len(t, docks, 2)
	assert.Equal(t, north.ID, docks[0].ID, "insertion order is kept")

	updated, err := b.UpdateDock(ctx, north.ID, models.Dock{Length: 320})
	require.NoError(t, err)
	assert.Equal(t, north.ID, updated.ID)
	assert.Equal(t, "North Pier", updated.Name)
	assert.Equal(t, models.DockAvailable, updated.Status)
	assert.Equal(t, 320.0, updated.Length)
	assert.Equal(t, north.CreatedAt, updated.CreatedAt)

	require.NoError(t, b.DeleteDock(ctx, south.ID))
	assert.ErrorIs(t, b.DeleteDock(ctx, south.ID), ErrNotFound)

	_, err = b.GetDock(ctx, south.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = b.UpdateDock(ctx, south.ID, models.Dock{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShips_SearchAndOwner(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	maersk, err := b.CreateShip(ctx, "owner-1", models.Ship{Name: "Maersk Alabama", IMONumber: "9164263", Type: models.ShipContainer, Flag: "US"})
	require.NoError(t, err)
	assert.Equal(t, "owner-1", maersk.Owner.ID)

	_, err = b.CreateShip(ctx, "owner-1", models.Ship{Name: "Ever Given", IMONumber: "9811000", Type: models.ShipContainer, Flag: "PA"})
	require.NoError(t, err)

	_, err = b.CreateShip(ctx, "owner-2", models.Ship{Name: "Seawise", Type: models.ShipTanker, Flag: "us"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		search models.ShipSearch
		want   []string
	}{
		{"empty matches all", models.ShipSearch{}, []string{"Maersk Alabama", "Ever Given", "Seawise"}},
		{"name substring", models.ShipSearch{Query: "ever"}, []string{"Ever Given"}},
		{"imo substring", models.ShipSearch{Query: "91642"}, []string{"Maersk Alabama"}},
		{"type", models.ShipSearch{Type: models.ShipTanker}, []string{"Seawise"}},
		{"flag case-insensitive", models.ShipSearch{Flag: "US"}, []string{"Maersk Alabama", "Seawise"}},
		{"combined", models.ShipSearch{Type: models.ShipContainer, Flag: "us"}, []string{"Maersk Alabama"}},
		{"no match", models.ShipSearch{Query: "titanic"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := []string{}
			for _, s := range b.SearchShips(ctx, tt.search) {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	updated, err := b.UpdateShip(ctx, maersk.ID, models.Ship{Draft: 12.5, Owner: models.RefTo("thief")})
	require.NoError(t, err)
	assert.Equal(t, "owner-1", updated.Owner.ID, "owner is kept on update")
	assert.Equal(t, "Maersk Alabama", updated.Name)
}

func TestBerthings_Lifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBackend(t, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	dock, err := b.CreateDock(ctx, models.Dock{Name: "North Pier"})
	require.NoError(t, err)
	ship, err := b.CreateShip(ctx, "agent", models.Ship{Name: "Ever Given"})
	require.NoError(t, err)

	_, err = b.RequestBerthing(ctx, "agent", models.Berthing{Ship: models.RefTo(ship.ID)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = b.RequestBerthing(ctx, "agent", models.Berthing{Ship: models.RefTo("ghost"), Dock: models.RefTo(dock.ID)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	br, err := b.RequestBerthing(ctx, "agent", models.Berthing{
		Ship:          models.RefTo(ship.ID),
		Dock:          models.RefTo(dock.ID),
		ArrivalTime:   now.Add(-time.Hour),
		DepartureTime: now.Add(time.Hour),
		Status:        models.BerthingActive,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BerthingPending, br.Status, "new requests are always pending")
	assert.Equal(t, "agent", br.RequestedBy.ID)

	assert.Empty(t, b.CurrentBerthings(ctx))
	assert.Len(t, b.BerthingsRequestedBy(ctx, "agent"), 1)
	assert.Empty(t, b.BerthingsRequestedBy(ctx, "someone-else"))
	assert.Len(t, b.BerthingsByShip(ctx, ship.ID), 1)
	assert.Len(t, b.BerthingsByDock(ctx, dock.ID), 1)

	_, err = b.SetBerthingStatus(ctx, br.ID, models.BerthingStatusUpdate{Status: "docked"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	approved, err := b.SetBerthingStatus(ctx, br.ID, models.BerthingStatusUpdate{Status: models.BerthingApproved, Reason: "slot free"})
	require.NoError(t, err)
	assert.Equal(t, models.BerthingApproved, approved.Status)
	assert.Equal(t, "slot free", approved.Notes)

	current := b.CurrentBerthings(ctx)
	require.Len(t, current, 1, "approved berthing inside its window is current")

	updated, err := b.UpdateBerthing(ctx, br.ID, models.Berthing{Purpose: "unloading", Status: models.BerthingCancelled})
	require.NoError(t, err)
	assert.Equal(t, models.BerthingApproved, updated.Status, "status changes only through SetBerthingStatus")
	assert.Equal(t, ship.ID, updated.Ship.ID)
	assert.Equal(t, "unloading", updated.Purpose)

	require.NoError(t, b.DeleteBerthing(ctx, br.ID))
	assert.ErrorIs(t, b.DeleteBerthing(ctx, br.ID), ErrNotFound)
}

func TestCurrentBerthings_Window(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBackend(t, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	dock, _ := b.CreateDock(ctx, models.Dock{Name: "D"})
	ship, _ := b.CreateShip(ctx, "agent", models.Ship{Name: "S"})

	file := func(arrival, departure time.Time, status models.BerthingStatus) {
		br, err := b.RequestBerthing(ctx, "agent", models.Berthing{
			Ship: models.RefTo(ship.ID), Dock: models.RefTo(dock.ID),
			ArrivalTime: arrival, DepartureTime: departure,
		})
		require.NoError(t, err)
		_, err = b.SetBerthingStatus(ctx, br.ID, models.BerthingStatusUpdate{Status: status})
		require.NoError(t, err)
	}

	file(now.Add(time.Hour), now.Add(2*time.Hour), models.BerthingApproved)
	file(now.Add(-2*time.Hour), now.Add(-time.Hour), models.BerthingApproved)
	file(now.Add(-time.Hour), time.Time{}, models.BerthingApproved)
	file(now.Add(time.Hour), now.Add(2*time.Hour), models.BerthingActive)
	file(now.Add(-time.Hour), now.Add(time.Hour), models.BerthingCompleted)

	assert.Len(t, b.CurrentBerthings(ctx), 2)
}

type sequenceIDs struct{ n int }

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func TestWithIDGenerator(t *testing.T) {
	b := newTestBackend(t, WithIDGenerator(&sequenceIDs{}))
	ctx := context.Background()

	dock, err := b.CreateDock(ctx, models.Dock{Name: "East Pier"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", dock.ID)

	got, err := b.GetDock(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "East Pier", got.Name)
}

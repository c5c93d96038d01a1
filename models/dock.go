package models

import "time"

// DockStatus is the operational state of a dock.
type DockStatus string

const (
	DockAvailable   DockStatus = "available"
	DockOccupied    DockStatus = "occupied"
	DockMaintenance DockStatus = "maintenance"
)

// Dock is a berth location inside the port that ships can be assigned to.
type Dock struct {
	// ID is the server-assigned document identifier.
	ID string `json:"_id,omitempty"`

	// Name is the human-readable dock name, e.g. "North Pier 3".
	Name string `json:"name"`

	// Code is the short dock code used on schedules.
	Code string `json:"code,omitempty"`

	// Location describes where the dock is inside the port.
	Location string `json:"location,omitempty"`

	// Length is the usable berth length in meters.
	Length float64 `json:"length,omitempty"`

	// Depth is the water depth alongside the dock in meters.
	Depth float64 `json:"depth,omitempty"`

	// Capacity is the number of vessels the dock can host at once.
	Capacity int `json:"capacity,omitempty"`

	Status DockStatus `json:"status,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

package models

import "time"

// BerthingStatus is the lifecycle state of a berthing request.
type BerthingStatus string

const (
	BerthingPending   BerthingStatus = "pending"
	BerthingApproved  BerthingStatus = "approved"
	BerthingRejected  BerthingStatus = "rejected"
	BerthingActive    BerthingStatus = "active"
	BerthingCompleted BerthingStatus = "completed"
	BerthingCancelled BerthingStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s BerthingStatus) Valid() bool {
	switch s {
	case BerthingPending, BerthingApproved, BerthingRejected,
		BerthingActive, BerthingCompleted, BerthingCancelled:
		return true
	default:
		return false
	}
}

// Berthing is a request to berth a ship at a dock for a time window.
type Berthing struct {
	// ID is the server-assigned document identifier.
	ID string `json:"_id,omitempty"`

	Ship Ref `json:"ship,omitzero"`
	Dock Ref `json:"dock,omitzero"`

	// RequestedBy references the user that filed the request.
	RequestedBy Ref `json:"requestedBy,omitzero"`

	ArrivalTime   time.Time `json:"arrivalTime,omitzero"`
	DepartureTime time.Time `json:"departureTime,omitzero"`

	Status BerthingStatus `json:"status,omitempty"`

	// Purpose is the declared reason for the call, e.g. "unloading".
	Purpose string `json:"purpose,omitempty"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// BerthingStatusUpdate is the payload of the berthing status endpoint.
type BerthingStatusUpdate struct {
	Status BerthingStatus `json:"status"`
	Reason string         `json:"reason,omitempty"`
}

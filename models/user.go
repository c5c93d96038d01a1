package models

import "time"

// Role is the access role of a user account.
type Role string

const (
	RoleAdmin         Role = "admin"
	RolePortAuthority Role = "port_authority"
	RoleShipAgent     Role = "ship_agent"
)

// User is an account of the port-operations service.
type User struct {
	// ID is the server-assigned document identifier.
	ID string `json:"_id,omitempty"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`

	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// ProfileUpdate carries the user-editable profile fields. Empty fields are
// left unchanged by the server.
type ProfileUpdate struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// ChangePasswordRequest is the payload of the change-password endpoint.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

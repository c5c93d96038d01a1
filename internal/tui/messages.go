package tui

import "github.com/MKhiriev/go-port-ops/models"

// NavigateTo switches the active page of [RootModel].
type NavigateTo struct {
	Page string
}

// LoginResult is produced by the login command.
type LoginResult struct {
	User models.User
	Err  error
}

// RegisterResult is produced by the register command.
type RegisterResult struct {
	User models.User
	Err  error
}

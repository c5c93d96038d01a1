// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package endpoints is the registry of port-operations API URLs.
//
// Every URL the client requests is built here so that call sites never
// hardcode paths. Fixed operations are plain string fields, operations that
// need an identifier are pure methods. Nothing in this package performs I/O.
package endpoints

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is used when no API base URL override is configured.
const DefaultBaseURL = "http://localhost:5001/api"

// Registry groups the endpoints of every API resource under one base URL.
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	// BaseURL is the resolved API root without a trailing slash.
	BaseURL string

	Auth      AuthEndpoints
	Docks     DockEndpoints
	Ships     ShipEndpoints
	Berthings BerthingEndpoints
	Users     UserEndpoints
}

// New builds a Registry rooted at baseURL. An empty or blank baseURL falls
// back to [DefaultBaseURL]; trailing slashes are dropped.
func New(baseURL string) *Registry {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	return &Registry{
		BaseURL:   base,
		Auth:      newAuthEndpoints(base + "/auth"),
		Docks:     newDockEndpoints(base + "/docks"),
		Ships:     newShipEndpoints(base + "/ships"),
		Berthings: newBerthingEndpoints(base + "/berthings"),
		Users:     newUserEndpoints(base + "/users"),
	}
}

// AuthEndpoints are the authentication operations.
type AuthEndpoints struct {
	Login          string
	Register       string
	ForgotPassword string
	ResetPassword  string
	RefreshToken   string
	Me             string
}

func newAuthEndpoints(base string) AuthEndpoints {
	return AuthEndpoints{
		Login:          base + "/login",
		Register:       base + "/register",
		ForgotPassword: base + "/forgot-password",
		ResetPassword:  base + "/reset-password",
		RefreshToken:   base + "/refresh-token",
		Me:             base + "/me",
	}
}

// DockEndpoints are the dock operations. Base lists and creates docks.
type DockEndpoints struct {
	Base string
}

func newDockEndpoints(base string) DockEndpoints {
	return DockEndpoints{Base: base}
}

// ByID addresses a single dock for get, update and delete.
func (e DockEndpoints) ByID(id string) string {
	return join(e.Base, id)
}

// ShipEndpoints are the ship operations. Base lists and creates ships.
type ShipEndpoints struct {
	Base   string
	Search string
}

func newShipEndpoints(base string) ShipEndpoints {
	return ShipEndpoints{
		Base:   base,
		Search: base + "/search",
	}
}

// ByID addresses a single ship for get, update and delete.
func (e ShipEndpoints) ByID(id string) string {
	return join(e.Base, id)
}

// BerthingEndpoints are the berthing request operations. Base lists all
// requests and files new ones.
type BerthingEndpoints struct {
	Base string

	// Current lists berthings in effect right now.
	Current string

	// MyRequests lists the requests filed by the authenticated user.
	MyRequests string
}

func newBerthingEndpoints(base string) BerthingEndpoints {
	return BerthingEndpoints{
		Base:       base,
		Current:    base + "/current",
		MyRequests: base + "/my-requests",
	}
}

// ByID addresses a single berthing for get, update and delete.
func (e BerthingEndpoints) ByID(id string) string {
	return join(e.Base, id)
}

// ByShip lists the berthings booked for a ship.
func (e BerthingEndpoints) ByShip(shipID string) string {
	return join(e.Base+"/ship", shipID)
}

// ByDock lists the berthings booked at a dock.
func (e BerthingEndpoints) ByDock(dockID string) string {
	return join(e.Base+"/dock", dockID)
}

// Status changes the status of a berthing request.
func (e BerthingEndpoints) Status(id string) string {
	return join(e.Base, id) + "/status"
}

// UserEndpoints are the user and profile operations. Base lists users.
type UserEndpoints struct {
	Base           string
	Profile        string
	ChangePassword string
}

func newUserEndpoints(base string) UserEndpoints {
	return UserEndpoints{
		Base:           base,
		Profile:        base + "/profile",
		ChangePassword: base + "/change-password",
	}
}

// ByID addresses a single user.
func (e UserEndpoints) ByID(id string) string {
	return join(e.Base, id)
}

func join(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

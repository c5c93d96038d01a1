package service

import (
	"context"

	"github.com/MKhiriev/go-port-ops/internal/session"
	"github.com/MKhiriev/go-port-ops/models"
)

// AuthService covers the authentication endpoints and the local session.
type AuthService interface {
	// Login exchanges credentials for a token and stores it, moving the
	// session to Authenticated.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Register creates an account; the returned token is stored as for Login.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// ForgotPassword asks the server to mail a reset link. Returns the
	// server's acknowledgement message.
	ForgotPassword(ctx context.Context, email string) (string, error)

	// ResetPassword sets a new password with the token from the reset link.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error)

	// RefreshToken trades the current token for a fresh one and stores it.
	// It is never called automatically.
	RefreshToken(ctx context.Context) error

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// Logout clears the token and navigates to the login route.
	Logout(ctx context.Context) error

	// State reports the current session state.
	State(ctx context.Context) session.State
}

// DockService manages docks.
type DockService interface {
	List(ctx context.Context) ([]models.Dock, error)
	Get(ctx context.Context, id string) (models.Dock, error)
	Create(ctx context.Context, dock models.Dock) (models.Dock, error)
	Update(ctx context.Context, id string, dock models.Dock) (models.Dock, error)
	Delete(ctx context.Context, id string) error
}

// ShipService manages ships.
type ShipService interface {
	List(ctx context.Context) ([]models.Ship, error)
	Search(ctx context.Context, query models.ShipSearch) ([]models.Ship, error)
	Get(ctx context.Context, id string) (models.Ship, error)
	Create(ctx context.Context, ship models.Ship) (models.Ship, error)
	Update(ctx context.Context, id string, ship models.Ship) (models.Ship, error)
	Delete(ctx context.Context, id string) error
}

// BerthingService manages berthing requests and their views.
type BerthingService interface {
	List(ctx context.Context) ([]models.Berthing, error)
	// Current lists berthings occupying a dock right now.
	Current(ctx context.Context) ([]models.Berthing, error)
	// MyRequests lists berthings requested by the signed-in user.
	MyRequests(ctx context.Context) ([]models.Berthing, error)
	ByShip(ctx context.Context, shipID string) ([]models.Berthing, error)
	ByDock(ctx context.Context, dockID string) ([]models.Berthing, error)
	Get(ctx context.Context, id string) (models.Berthing, error)
	// Request files a new berthing request.
	Request(ctx context.Context, berthing models.Berthing) (models.Berthing, error)
	Update(ctx context.Context, id string, berthing models.Berthing) (models.Berthing, error)
	SetStatus(ctx context.Context, id string, update models.BerthingStatusUpdate) (models.Berthing, error)
	Delete(ctx context.Context, id string) error
}

// UserService manages user accounts and the caller's own profile.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Profile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error)
	Delete(ctx context.Context, id string) error
}

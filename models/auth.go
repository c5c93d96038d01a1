package models

// LoginRequest is the payload of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload of the register endpoint.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
	Company  string `json:"company,omitempty"`
}

// AuthResponse is returned by login, register and refresh-token.
type AuthResponse struct {
	// Token is the bearer token for subsequent requests.
	Token string `json:"token"`

	// User is the authenticated account. Refresh responses may omit it.
	User User `json:"user"`
}

// ForgotPasswordRequest asks the server to send a reset link to Email.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest sets a new password using the token from the reset
// link.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// MessageResponse is the generic acknowledgement body of the API.
type MessageResponse struct {
	Message string `json:"message"`
}

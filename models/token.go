package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by session tokens. The subject is the user
// identifier.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// GetUserID returns the subject claim.
func (c *Claims) GetUserID() (string, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting user ID from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting user ID from token: empty subject")
	}
	return sub, nil
}

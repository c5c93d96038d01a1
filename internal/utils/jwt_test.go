package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-port-ops/models"
)

func testUser() models.User {
	return models.User{ID: "u-123", Email: "agent@port.test", Role: models.RoleShipAgent}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	signed, err := GenerateJWTToken("test-issuer", testUser(), time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if strings.Count(signed, ".") != 2 {
		t.Fatalf("expected compact JWT, got %q", signed)
	}

	claims, err := ParseClaimsUnverified(signed)
	if err != nil {
		t.Fatalf("expected claims, got error: %v", err)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "u-123" {
		t.Errorf("expected subject 'u-123', got %s", claims.Subject)
	}
	if claims.Email != "agent@port.test" || claims.Role != models.RoleShipAgent {
		t.Errorf("unexpected custom claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected jti to be set")
	}
}

func TestGenerateJWTToken_UniquePerCall(t *testing.T) {
	a, _ := GenerateJWTToken("iss", testUser(), time.Hour, "key")
	b, _ := GenerateJWTToken("iss", testUser(), time.Hour, "key")

	if a == b {
		t.Fatal("expected two tokens issued in the same second to differ")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUser(), time.Hour, "key"},
		{"zero duration", "iss", testUser(), 0, "key"},
		{"empty key", "iss", testUser(), time.Hour, ""},
		{"user without id", "iss", models.User{Email: "x@y"}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.user, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	signed, _ := GenerateJWTToken("test-issuer", testUser(), 5*time.Minute, "secret-key")

	claims, err := ValidateAndParseJWTToken(signed, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	userID, _ := claims.GetUserID()
	if userID != "u-123" {
		t.Errorf("expected userID u-123, got %s", userID)
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, _ := GenerateJWTToken("test-issuer", testUser(), time.Hour, "secret-key")
	expired, _ := GenerateJWTToken("test-issuer", testUser(), -time.Minute, "secret-key")

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid, "other-key", "test-issuer"},
		{"wrong issuer", valid, "secret-key", "other-issuer"},
		{"expired", expired, "secret-key", "test-issuer"},
		{"garbage", "not.a.jwt", "secret-key", "test-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseClaimsUnverified_Garbage(t *testing.T) {
	if _, err := ParseClaimsUnverified("garbage"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

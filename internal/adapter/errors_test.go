package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message field", body: `{"message":"Dock not found"}`, want: "Dock not found"},
		{name: "error field", body: `{"error":"invalid id"}`, want: "invalid id"},
		{name: "json without message", body: `{"code":42}`, want: ""},
		{name: "plain text", body: "  upstream down \n", want: "upstream down"},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serverMessage([]byte(tt.body)))
		})
	}
}

func TestResponseError(t *testing.T) {
	err := &ResponseError{
		Method:     "GET",
		URL:        "http://localhost:5001/api/docks/x",
		StatusCode: 404,
		Message:    "Dock not found",
		err:        ErrNotFound,
	}

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "GET http://localhost:5001/api/docks/x: 404 not found: Dock not found", err.Error())

	err.Message = ""
	assert.Equal(t, "GET http://localhost:5001/api/docks/x: 404 not found", err.Error())

	err.Body = []byte("raw")
	assert.Equal(t, "GET http://localhost:5001/api/docks/x: 404 not found: raw", err.Error())
}

func TestNewResponseError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: 400, want: ErrBadRequest},
		{status: 401, want: ErrUnauthorized},
		{status: 403, want: ErrForbidden},
		{status: 404, want: ErrNotFound},
		{status: 409, want: ErrConflict},
		{status: 500, want: ErrInternalServerError},
		{status: 502, want: ErrBadGateway},
		{status: 418, want: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		err := NewResponseError(tt.status, "msg")
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
		assert.Equal(t, tt.status, err.StatusCode)
	}
}

func TestNewResponseError_NoRequestPrefix(t *testing.T) {
	assert.Equal(t, "401 client unauthorized", NewResponseError(401, "").Error())
	assert.Equal(t, "409 conflict: Email already exists", NewResponseError(409, "Email already exists").Error())
}

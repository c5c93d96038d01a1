package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by [*ResponseError], one per HTTP status the API is
// known to answer with.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrDecodingResponse is returned when a 2xx body cannot be decoded into the
// requested result.
var ErrDecodingResponse = errors.New("error decoding response")

// ResponseError is a non-2xx API response.
type ResponseError struct {
	Method     string
	URL        string
	StatusCode int
	// Message is the server's "message" (or "error") field, if the body had one.
	Message string
	Body    []byte

	err error
}

func (e *ResponseError) Error() string {
	s := fmt.Sprintf("%d %s", e.StatusCode, e.err)
	if e.Method != "" {
		s = fmt.Sprintf("%s %s: %s", e.Method, e.URL, s)
	}

	msg := e.Message
	if msg == "" {
		msg = string(e.Body)
	}
	if msg == "" {
		return s
	}
	return s + ": " + msg
}

func (e *ResponseError) Unwrap() error {
	return e.err
}

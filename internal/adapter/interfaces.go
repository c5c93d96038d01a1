// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the shared authenticated HTTP client every resource
// service of the port-operations API talks through.
//
// The client attaches the stored bearer token to outgoing requests and, when
// the API answers 401, tears the session down (clears the token, navigates to
// the login route) before handing the original error back to the caller.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401) and
// [errors.As] with [*ResponseError] for the status and server message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-port-ops/internal/endpoints"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_mock.go -package=mock

// API is the transport the resource services are written against.
type API interface {
	// Endpoints returns the registry the client was built with.
	Endpoints() *endpoints.Registry

	// Do sends body (JSON-encoded unless nil) with method to url and decodes
	// a 2xx response body into result (skipped when result is nil or the body
	// is empty). Non-2xx responses come back as [*ResponseError].
	Do(ctx context.Context, method, url string, body, result any) error
}

package service

import "errors"

// Validation errors returned before any request is sent.
var (
	// ErrEmptyID is returned when a resource identifier is blank.
	ErrEmptyID = errors.New("empty resource id")

	// ErrEmptyCredentials is returned when an email or password is blank.
	ErrEmptyCredentials = errors.New("email and password are required")

	// ErrEmptySearchQuery is returned by ship search without any criteria.
	ErrEmptySearchQuery = errors.New("empty search query")

	// ErrInvalidBerthingStatus is returned for a status the API does not know.
	ErrInvalidBerthingStatus = errors.New("invalid berthing status")

	// ErrNoTokenIssued is returned when an auth response carries no token.
	ErrNoTokenIssued = errors.New("server issued no token")

	// ErrNotAuthenticated is returned by calls that need a stored token when
	// there is none.
	ErrNotAuthenticated = errors.New("not authenticated")
)

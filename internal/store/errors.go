package store

import "errors"

// Sentinel errors returned by token storages. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrTokenNotFound is returned by Load when no session token is stored.
	ErrTokenNotFound = errors.New("session token not found")

	// ErrUnknownStore is returned when the configured backend name is not
	// one of memory, sqlite, keyring or redis.
	ErrUnknownStore = errors.New("unknown token store")
)

// Low-level storage operation errors. These are wrapped by backend methods
// when the underlying driver call fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("error executing sql statement")

	// ErrKeyringUnavailable is returned when the OS keyring cannot be opened.
	ErrKeyringUnavailable = errors.New("keyring unavailable")
)

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [StubConfig.validate] when required configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a malformed API URL or a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates an unknown token store or an empty
	// login route.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates that the selected token store lacks
	// its connection settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid stub server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates missing token issuing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

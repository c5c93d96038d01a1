// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the settings of the shared API HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds session-handling settings: where the token lives and
	// where the client is sent when the session expires.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds the connection settings of every token storage backend
	// and of the stub API account database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network settings of the stub API server.
	Server Server `envPrefix:"SERVER_"`

	// App holds token issuing settings of the stub API server.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter configures the shared API HTTP client.
type Adapter struct {
	// APIURL is the API base URL every endpoint is built from.
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "15s"). Unset by
	// default, which leaves requests to the transport defaults.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// WithCredentials keeps a cookie jar so that cookies issued by the API
	// are sent back on every request. A pointer so that an explicit false
	// survives merging.
	// Env: ADAPTER_WITH_CREDENTIALS
	WithCredentials *bool `env:"WITH_CREDENTIALS"`
}

// Session configures session handling.
type Session struct {
	// Store selects the token storage backend: memory, sqlite, keyring or
	// redis.
	// Env: SESSION_STORE
	Store string `env:"STORE"`

	// LoginRoute is the route the client is sent to on session expiry.
	// Env: SESSION_LOGIN_ROUTE
	LoginRoute string `env:"LOGIN_ROUTE"`
}

// Storage groups the settings of every token storage backend.
type Storage struct {
	DB      DB      `envPrefix:"DB_"`
	Redis   Redis   `envPrefix:"REDIS_"`
	Keyring Keyring `envPrefix:"KEYRING_"`

	// Postgres is read by the stub API server only.
	Postgres Postgres `envPrefix:"POSTGRES_"`
}

// DB holds the SQLite settings of the sqlite token store.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Postgres holds the account database of the stub API server.
type Postgres struct {
	// DSN is a PostgreSQL connection string. Empty keeps accounts in memory.
	// Env: STORAGE_POSTGRES_DSN
	DSN string `env:"DSN"`
}

// Redis holds the settings of the redis token store.
type Redis struct {
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
	// Prefix is prepended to the token key.
	// Env: STORAGE_REDIS_PREFIX
	Prefix string `env:"PREFIX"`
}

// Keyring holds the settings of the OS keyring token store.
type Keyring struct {
	// Backend is auto, system or file.
	// Env: STORAGE_KEYRING_BACKEND
	Backend string `env:"BACKEND"`
	// Dir is the directory of the encrypted file backend.
	// Env: STORAGE_KEYRING_DIR
	Dir string `env:"DIR"`
	// Password unlocks the encrypted file backend without a prompt.
	// Env: STORAGE_KEYRING_PASSWORD
	Password string `env:"PASSWORD"`
}

// Server holds network settings of the stub API server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// App holds token issuing settings of the stub API server.
type App struct {
	// TokenSignKey signs and verifies issued JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued JWTs.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued JWT stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Flags are read from the already parsed flag set fs; a nil fs skips the
// flag layer.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}

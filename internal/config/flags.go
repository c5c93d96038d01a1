package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names shared by the client and the stub server.
const (
	FlagConfig = "config"

	FlagAPIURL          = "api-url"
	FlagRequestTimeout  = "request-timeout"
	FlagWithCredentials = "with-credentials"
	FlagStore           = "store"
	FlagLoginRoute      = "login-route"
	FlagDSN             = "dsn"
	FlagRedisAddr       = "redis-addr"
	FlagRedisDB         = "redis-db"
	FlagRedisPrefix     = "redis-prefix"
	FlagKeyringBackend  = "keyring-backend"
	FlagKeyringDir      = "keyring-dir"

	FlagAddress       = "address"
	FlagTokenSignKey  = "token-sign-key"
	FlagTokenIssuer   = "token-issuer"
	FlagTokenDuration = "token-duration"
	FlagPostgresDSN   = "postgres-dsn"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterClientFlags registers the portctl flags on fs. Values are read back
// by [GetClientConfig] only for flags the user actually set.
//
// Flags:
//
//	-c/--config json file path with configs
//	--api-url API base URL
//	--request-timeout request timeout (e.g., "15s")
//	--with-credentials keep cookies between requests
//	--store token storage backend (memory, sqlite, keyring, redis)
//	--login-route route opened when the session expires
//	--dsn SQLite token database path
//	--redis-addr, --redis-db, --redis-prefix redis token store settings
//	--keyring-backend, --keyring-dir keyring token store settings
func RegisterClientFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagAPIURL, "", "API base URL")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 15s, 1m)")
	fs.Bool(FlagWithCredentials, true, "Keep cookies issued by the API")
	fs.String(FlagStore, "", "Token storage backend: memory, sqlite, keyring, redis")
	fs.String(FlagLoginRoute, "", "Route opened when the session expires")
	fs.String(FlagDSN, "", "SQLite token database path")
	fs.String(FlagRedisAddr, "", "Redis address host:port")
	fs.Int(FlagRedisDB, 0, "Redis database number")
	fs.String(FlagRedisPrefix, "", "Redis key prefix")
	fs.String(FlagKeyringBackend, "", "Keyring backend: auto, system, file")
	fs.String(FlagKeyringDir, "", "Directory of the file keyring backend")
}

// RegisterStubFlags registers the stub API server flags on fs.
//
// Flags:
//
//	-c/--config json file path with configs
//	-a/--address server address in format [host]:[port]
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--token-sign-key token signing key
//	--token-issuer token issuer name
//	--token-duration token duration (e.g., "1h", "30m")
//	--postgres-dsn PostgreSQL DSN of the account database
func RegisterStubFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.VarP(&NetAddress{}, FlagAddress, "a", "Net address host:port")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.String(FlagTokenSignKey, "", "Token signing key")
	fs.String(FlagTokenIssuer, "", "Token issuer")
	fs.Duration(FlagTokenDuration, 0, "Token duration (e.g., 1h, 30m)")
	fs.String(FlagPostgresDSN, "", "PostgreSQL DSN of the account database (empty keeps accounts in memory)")
}

// parseFlags collects the flags of fs that were explicitly set into a config
// layer. Flags that were not registered on fs are ignored.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var errs []error

	fs.Visit(func(f *pflag.Flag) {
		if err := applyFlag(cfg, fs, f.Name); err != nil {
			errs = append(errs, fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("error getting flag configs: %w", errors.Join(errs...))
	}

	return cfg, nil
}

func applyFlag(cfg *StructuredConfig, fs *pflag.FlagSet, name string) error {
	var err error

	switch name {
	case FlagConfig:
		cfg.JSONFilePath, err = fs.GetString(name)
	case FlagAPIURL:
		cfg.Adapter.APIURL, err = fs.GetString(name)
	case FlagRequestTimeout:
		timeout, getErr := fs.GetDuration(name)
		cfg.Adapter.RequestTimeout, cfg.Server.RequestTimeout, err = timeout, timeout, getErr
	case FlagWithCredentials:
		var v bool
		v, err = fs.GetBool(name)
		cfg.Adapter.WithCredentials = &v
	case FlagStore:
		cfg.Session.Store, err = fs.GetString(name)
	case FlagLoginRoute:
		cfg.Session.LoginRoute, err = fs.GetString(name)
	case FlagDSN:
		cfg.Storage.DB.DSN, err = fs.GetString(name)
	case FlagRedisAddr:
		cfg.Storage.Redis.Addr, err = fs.GetString(name)
	case FlagRedisDB:
		cfg.Storage.Redis.DB, err = fs.GetInt(name)
	case FlagRedisPrefix:
		cfg.Storage.Redis.Prefix, err = fs.GetString(name)
	case FlagKeyringBackend:
		cfg.Storage.Keyring.Backend, err = fs.GetString(name)
	case FlagKeyringDir:
		cfg.Storage.Keyring.Dir, err = fs.GetString(name)
	case FlagAddress:
		cfg.Server.HTTPAddress = fs.Lookup(name).Value.String()
	case FlagTokenSignKey:
		cfg.App.TokenSignKey, err = fs.GetString(name)
	case FlagTokenIssuer:
		cfg.App.TokenIssuer, err = fs.GetString(name)
	case FlagTokenDuration:
		cfg.App.TokenDuration, err = fs.GetDuration(name)
	case FlagPostgresDSN:
		cfg.Storage.Postgres.DSN, err = fs.GetString(name)
	}

	return err
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type names the value kind in pflag usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}

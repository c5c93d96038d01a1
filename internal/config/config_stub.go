package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// StubConfig configures the stub port-operations API server.
type StubConfig struct {
	Server Server
	App    App
	// Postgres selects the account database. An empty DSN keeps accounts in
	// memory.
	Postgres Postgres
}

// GetStubConfig builds and validates the stub server view of the merged
// structured configuration.
func GetStubConfig(fs *pflag.FlagSet) (*StubConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubConfig{
		Server:   cfg.Server,
		App:      cfg.App,
		Postgres: cfg.Storage.Postgres,
	}

	return stubCfg, stubCfg.validate()
}

// RequestTimeout returns the server read/write timeout.
func (cfg *StubConfig) RequestTimeout() time.Duration {
	return cfg.Server.RequestTimeout
}

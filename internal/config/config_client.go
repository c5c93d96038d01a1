package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientAdapter holds settings used by the shared API HTTP client.
type ClientAdapter struct {
	// APIURL is the base URL the endpoint registry is built from.
	APIURL string
	// RequestTimeout bounds outbound client requests. Zero leaves them to
	// the transport defaults.
	RequestTimeout time.Duration
	// WithCredentials keeps cookies issued by the API between requests.
	WithCredentials bool
}

// ClientSession selects the token store and the login route.
type ClientSession struct {
	Store      string
	LoginRoute string
}

// ClientStorage groups token store backend settings.
type ClientStorage struct {
	DB      DB
	Redis   Redis
	Keyring Keyring
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains API transport settings.
	Adapter ClientAdapter
	// Session contains session handling settings.
	Session ClientSession
	// Storage contains token store settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()

	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	withCredentials := true
	if cfg.Adapter.WithCredentials != nil {
		withCredentials = *cfg.Adapter.WithCredentials
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			APIURL:          cfg.Adapter.APIURL,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			WithCredentials: withCredentials,
		},
		Session: ClientSession{
			Store:      cfg.Session.Store,
			LoginRoute: cfg.Session.LoginRoute,
		},
		Storage: ClientStorage{
			DB:      cfg.Storage.DB,
			Redis:   cfg.Storage.Redis,
			Keyring: cfg.Storage.Keyring,
		},
	}
}

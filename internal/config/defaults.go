package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-port-ops/internal/endpoints"
)

// Supported token storage backends.
const (
	StoreMemory  = "memory"
	StoreSQLite  = "sqlite"
	StoreKeyring = "keyring"
	StoreRedis   = "redis"
)

const appDirName = "go-port-ops"

func defaultConfig() *StructuredConfig {
	withCredentials := true

	return &StructuredConfig{
		Adapter: Adapter{
			APIURL:          endpoints.DefaultBaseURL,
			RequestTimeout:  0,
			WithCredentials: &withCredentials,
		},
		Session: Session{
			Store:      StoreSQLite,
			LoginRoute: "/login",
		},
		Storage: Storage{
			DB:      DB{DSN: filepath.Join(defaultDataDir(), "session.db")},
			Redis:   Redis{Addr: "localhost:6379", Prefix: "portops:"},
			Keyring: Keyring{Backend: "auto", Dir: filepath.Join(defaultDataDir(), "keyring")},
		},
		Server: Server{
			HTTPAddress:    "localhost:5001",
			RequestTimeout: 30 * time.Second,
		},
		App: App{
			TokenIssuer:   "go-port-ops-stub",
			TokenDuration: time.Hour,
		},
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(os.TempDir(), appDirName)
}

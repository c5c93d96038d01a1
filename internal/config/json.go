package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	Adapter struct {
		APIURL          string   `json:"api_url"`
		RequestTimeout  Duration `json:"request_timeout"`
		WithCredentials *bool    `json:"with_credentials"`
	} `json:"adapter,omitempty"`

	Session struct {
		Store      string `json:"store"`
		LoginRoute string `json:"login_route"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
			Prefix   string `json:"prefix"`
		} `json:"redis,omitempty"`

		Keyring struct {
			Backend  string `json:"backend"`
			Dir      string `json:"dir"`
			Password string `json:"password"`
		} `json:"keyring,omitempty"`

		Postgres struct {
			DSN string `json:"dsn"`
		} `json:"postgres,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			APIURL:          jsonCfg.Adapter.APIURL,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			WithCredentials: jsonCfg.Adapter.WithCredentials,
		},
		Session: Session{
			Store:      jsonCfg.Session.Store,
			LoginRoute: jsonCfg.Session.LoginRoute,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
				Prefix:   jsonCfg.Storage.Redis.Prefix,
			},
			Keyring: Keyring{
				Backend:  jsonCfg.Storage.Keyring.Backend,
				Dir:      jsonCfg.Storage.Keyring.Dir,
				Password: jsonCfg.Storage.Keyring.Password,
			},
			Postgres: Postgres{DSN: jsonCfg.Storage.Postgres.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

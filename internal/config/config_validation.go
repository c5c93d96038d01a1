// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.Session.LoginRoute, "/") {
		return ErrInvalidSessionConfigs
	}

	switch cfg.Session.Store {
	case StoreMemory:
	case StoreSQLite:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case StoreRedis:
		if cfg.Storage.Redis.Addr == "" {
			return ErrInvalidStorageConfigs
		}
	case StoreKeyring:
		if cfg.Storage.Keyring.Backend == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidSessionConfigs
	}

	return nil
}

func (cfg *StubConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

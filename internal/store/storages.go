package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-port-ops/internal/config"
	"github.com/MKhiriev/go-port-ops/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Tokens is the storage selected by the session store setting.
	Tokens TokenStorage

	closers []io.Closer
}

// NewClientStorages initialises the token storage named by store using the
// supplied backend settings. For sqlite it opens (creating if needed) the
// database file and runs pending migrations; for redis it pings the server.
func NewClientStorages(ctx context.Context, store string, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("store", store).Msg("creating new storages...")

	switch store {
	case config.StoreMemory:
		return &ClientStorages{Tokens: NewMemoryTokenStorage()}, nil

	case config.StoreSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &ClientStorages{
			Tokens:  NewSQLiteTokenStorage(db, logger),
			closers: []io.Closer{db},
		}, nil

	case config.StoreKeyring:
		tokens, err := NewKeyringTokenStorage(cfg.Keyring)
		if err != nil {
			return nil, err
		}
		return &ClientStorages{Tokens: tokens}, nil

	case config.StoreRedis:
		tokens, client, err := NewRedisTokenStorage(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &ClientStorages{
			Tokens:  tokens,
			closers: []io.Closer{client},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStore, store)
}

// Close releases connections held by the storages.
func (s *ClientStorages) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

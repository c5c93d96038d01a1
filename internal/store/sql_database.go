package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/migrations"
)

// DB is a SQLite connection holding the session_tokens table.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the session token schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return fmt.Errorf("migrate session token store: %w", err)
	}

	if len(applied) > 0 {
		db.logger.Info().Ints64("versions", applied).Msg("applied session token store migrations")
	}
	return nil
}

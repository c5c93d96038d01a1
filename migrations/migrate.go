// Package migrations holds the database schemas of the module: the session
// token table of the client-side SQLite store and the accounts table of the
// stub API's optional PostgreSQL store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

//go:embed postgres/*.sql
var embedPostgresMigrations embed.FS

// Migrate applies every pending migration to the SQLite database db and
// returns the versions it applied. Running it on an up to date schema is a
// no-op.
func Migrate(ctx context.Context, db *sql.DB) ([]int64, error) {
	return migrate(ctx, goose.DialectSQLite3, db, embedMigrations)
}

// MigratePostgres is [Migrate] for the stub API account database.
func MigratePostgres(ctx context.Context, db *sql.DB) ([]int64, error) {
	sub, err := fs.Sub(embedPostgresMigrations, "postgres")
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return migrate(ctx, goose.DialectPostgres, db, sub)
}

func migrate(ctx context.Context, dialect goose.Dialect, db *sql.DB, fsys fs.FS) ([]int64, error) {
	if db == nil {
		return nil, errors.New("migration error: db is nil")
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

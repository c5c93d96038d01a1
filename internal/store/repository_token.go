package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-port-ops/internal/logger"
)

type sqliteTokenStorage struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteTokenStorage returns a [TokenStorage] backed by the session_tokens
// table of db. The schema must already be migrated.
func NewSQLiteTokenStorage(db *DB, logger *logger.Logger) TokenStorage {
	return &sqliteTokenStorage{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteTokenStorage) Load(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadTokenQuery(TokenKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteTokenStorage.Load").
			Msg("failed to query session token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

func (s *sqliteTokenStorage) Save(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveTokenQuery(TokenKey, token, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteTokenStorage.Save").
			Msg("failed to upsert session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStorage) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTokenQuery(TokenKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteTokenStorage.Delete").
			Msg("failed to delete session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

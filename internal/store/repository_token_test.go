package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-port-ops/internal/config"
	"github.com/MKhiriev/go-port-ops/internal/logger"
)

func newMockTokenStorage(t *testing.T) (*sqliteTokenStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteTokenStorage(&DB{DB: db, logger: logger.Nop()}, logger.Nop()).(*sqliteTokenStorage)
	s.now = func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) }
	return s, mock
}

func TestSQLiteTokenStorage_Load(t *testing.T) {
	s, mock := newMockTokenStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token FROM session_tokens WHERE name = ?")).
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("abc123"))

	token, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStorage_Load_NotFound(t *testing.T) {
	s, mock := newMockTokenStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token FROM session_tokens")).
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"token"}))

	token, err := s.Load(context.Background())

	assert.ErrorIs(t, err, ErrTokenNotFound)
	assert.Empty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStorage_Load_QueryError(t *testing.T) {
	s, mock := newMockTokenStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token FROM session_tokens")).
		WillReturnError(sql.ErrConnDone)

	_, err := s.Load(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NotErrorIs(t, err, ErrTokenNotFound)
}

func TestSQLiteTokenStorage_Save(t *testing.T) {
	s, mock := newMockTokenStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session_tokens (name,token,updated_at) VALUES (?,?,?) ON CONFLICT (name)")).
		WithArgs("token", "abc123", time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Save(context.Background(), "abc123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStorage_Save_ExecError(t *testing.T) {
	s, mock := newMockTokenStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session_tokens")).
		WillReturnError(assert.AnError)

	err := s.Save(context.Background(), "abc123")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSQLiteTokenStorage_Delete(t *testing.T) {
	s, mock := newMockTokenStorage(t)

	// zero affected rows is still success
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session_tokens WHERE name = ?")).
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStorage_RealDatabase(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "session.db")

	storages, err := NewClientStorages(ctx, config.StoreSQLite, config.ClientStorage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	tokens := storages.Tokens

	_, err = tokens.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, tokens.Save(ctx, "first"))
	require.NoError(t, tokens.Save(ctx, "second"))

	token, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, tokens.Delete(ctx))
	require.NoError(t, tokens.Delete(ctx))

	_, err = tokens.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn      string
		wantPath string
		wantDSN  string
	}{
		{"/tmp/session.db", "/tmp/session.db", "/tmp/session.db?" + sqliteParams},
		{"file:/tmp/session.db", "/tmp/session.db", "file:/tmp/session.db?" + sqliteParams},
		{"/tmp/session.db?_busy_timeout=100", "/tmp/session.db", "/tmp/session.db?_busy_timeout=100"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			path, dsn := sqliteDSN(tt.dsn)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestNewConnectSQLite_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens", "session.db")

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

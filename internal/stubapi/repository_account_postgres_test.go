package stubapi

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/models"
)

var accountRowColumns = []string{
	"id", "name", "email", "role", "phone", "company", "password_hash", "created_at", "updated_at",
}

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func newMockAccounts(t *testing.T) (*postgresAccounts, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return newPostgresAccounts(db, logger.Nop()), mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testAccount() account {
	return account{
		user: models.User{
			ID: "u1", Name: "Alice", Email: "alice@port.test", Role: models.RoleShipAgent,
			Company: "Harbour Ltd", CreatedAt: testNow, UpdatedAt: testNow,
		},
		passwordHash: []byte("hash"),
	}
}

func accountRows(accs ...account) *sqlmock.Rows {
	rows := sqlmock.NewRows(accountRowColumns)
	for _, acc := range accs {
		u := acc.user
		rows.AddRow(u.ID, u.Name, u.Email, string(u.Role), u.Phone, u.Company, acc.passwordHash, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func TestPostgresAccounts_Create(t *testing.T) {
	repo, mock, _ := newMockAccounts(t)
	acc := testAccount()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs("u1", "Alice", "alice@port.test", "ship_agent", "", "Harbour Ltd", []byte("hash"), testNow, testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.createAccount(context.Background(), acc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAccounts_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
		wantMsg string
	}{
		{name: "unique violation", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrEmailAlreadyExists},
		{name: "other constraint", dbErr: pgError(pgerrcode.NotNullViolation), wantMsg: "unexpected DB error"},
		{name: "network", dbErr: errors.New("connection reset by peer"), wantMsg: "unexpected DB error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newMockAccounts(t)

			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
				WillReturnError(tt.dbErr)

			err := repo.createAccount(context.Background(), testAccount())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.Contains(t, err.Error(), tt.wantMsg)
				assert.ErrorIs(t, err, tt.dbErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresAccounts_AccountByEmail(t *testing.T) {
	repo, mock, _ := newMockAccounts(t)
	want := testAccount()

	mock.ExpectQuery(regexp.QuoteMeta(selectAccountColumns + " WHERE email = $1")).
		WithArgs("alice@port.test").
		WillReturnRows(accountRows(want))

	got, err := repo.accountByEmail(context.Background(), "alice@port.test")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAccounts_AccountByID_NotFound(t *testing.T) {
	repo, mock, _ := newMockAccounts(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectAccountColumns + " WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(accountRows())

	_, err := repo.accountByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAccounts_List(t *testing.T) {
	repo, mock, _ := newMockAccounts(t)
	first := testAccount()
	second := testAccount()
	second.user.ID, second.user.Email = "u2", "bob@port.test"

	mock.ExpectQuery(regexp.QuoteMeta(selectAccountColumns + " ORDER BY created_at, id")).
		WillReturnRows(accountRows(first, second))

	got, err := repo.listAccounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []account{first, second}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAccounts_List_Empty(t *testing.T) {
	repo, mock, _ := newMockAccounts(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectAccountColumns)).
		WillReturnRows(accountRows())

	got, err := repo.listAccounts(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPostgresAccounts_Update(t *testing.T) {
	repo, mock, _ := newMockAccounts(t)
	later := testNow.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectAccountColumns + " WHERE id = $1 FOR UPDATE")).
		WithArgs("u1").
		WillReturnRows(accountRows(testAccount()))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET name = $1, phone = $2, company = $3, password_hash = $4, updated_at = $5 WHERE id = $6")).
		WithArgs("Alice", "+31 10 000", "Harbour Ltd", []byte("hash"), later, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.updateAccount(context.Background(), "u1", func(acc *account) error {
		acc.user.Phone = "+31 10 000"
		acc.user.UpdatedAt = later
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "+31 10 000", got.user.Phone)
	assert.Equal(t, later, got.user.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAccounts_Update_RollsBack(t *testing.T) {
	errRejected := errors.New("rejected")

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		fn      func(*account) error
		wantErr error
	}{
		{
			name:    "missing account",
			rows:    accountRows(),
			fn:      func(*account) error { return nil },
			wantErr: ErrNotFound,
		},
		{
			name:    "mutation fails",
			rows:    accountRows(testAccount()),
			fn:      func(*account) error { return errRejected },
			wantErr: errRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newMockAccounts(t)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
				WithArgs("u1").
				WillReturnRows(tt.rows)
			mock.ExpectRollback()

			_, err := repo.updateAccount(context.Background(), "u1", tt.fn)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresAccounts_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newMockAccounts(t)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE id = $1")).
				WithArgs("u1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.deleteAccount(context.Background(), "u1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBackend_WithPostgres_RegisterDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := newTestBackend(t, WithPostgres(db), WithClock(func() time.Time { return testNow }), WithIDGenerator(&sequenceIDs{}))
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs("id-1", "Alice", "alice@port.test", "ship_agent", "", "", sqlmock.AnyArg(), testNow, testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs("id-2", "", "alice@port.test", "ship_agent", "", "", sqlmock.AnyArg(), testNow, testNow).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	user, err := b.Register(ctx, models.RegisterRequest{Name: "Alice", Email: "Alice@port.test", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)

	_, err = b.Register(ctx, models.RegisterRequest{Email: "alice@port.test", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackend_WithPostgres_Login(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := newTestBackend(t, WithPostgres(db))
	ctx := context.Background()

	stored := testAccount()
	stored.passwordHash, err = bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(selectAccountColumns + " WHERE email = $1")).
		WithArgs("alice@port.test").
		WillReturnRows(accountRows(stored))
	mock.ExpectQuery(regexp.QuoteMeta(selectAccountColumns + " WHERE email = $1")).
		WithArgs("nobody@port.test").
		WillReturnRows(accountRows())
	mock.ExpectQuery(regexp.QuoteMeta(selectAccountColumns + " WHERE email = $1")).
		WithArgs("alice@port.test").
		WillReturnError(errors.New("connection reset by peer"))

	user, err := b.Login(ctx, models.LoginRequest{Email: "alice@port.test", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, stored.user, user)

	_, err = b.Login(ctx, models.LoginRequest{Email: "nobody@port.test", Password: "secret"})
	assert.ErrorIs(t, err, ErrWrongCredentials)

	_, err = b.Login(ctx, models.LoginRequest{Email: "alice@port.test", Password: "secret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongCredentials, "store failures are not reported as bad credentials")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountError(t *testing.T) {
	assert.ErrorIs(t, accountError(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, accountError(pgError(pgerrcode.NoDataFound)), ErrNotFound)
	assert.ErrorIs(t, accountError(pgError(pgerrcode.UniqueViolation)), ErrEmailAlreadyExists)

	err := accountError(pgError(pgerrcode.SerializationFailure))
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

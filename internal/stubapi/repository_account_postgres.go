package stubapi

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/models"
)

// postgresAccounts is the accountRepository over the "accounts" table. The
// unique index on email decides registration races.
type postgresAccounts struct {
	db     *sql.DB
	logger *logger.Logger
}

func newPostgresAccounts(db *sql.DB, logger *logger.Logger) *postgresAccounts {
	logger.Debug().Msg("creating postgres account repository")
	return &postgresAccounts{
		db:     db,
		logger: logger,
	}
}

func (r *postgresAccounts) createAccount(ctx context.Context, acc account) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAccountQuery(acc)
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postgresAccounts.createAccount").Msg("error inserting account")
		return accountError(err)
	}

	return nil
}

func (r *postgresAccounts) accountByID(ctx context.Context, id string) (account, error) {
	query, args, err := buildAccountByIDQuery(id)
	if err != nil {
		return account{}, fmt.Errorf("error building sql query: %w", err)
	}

	return r.queryAccount(ctx, "*postgresAccounts.accountByID", query, args)
}

func (r *postgresAccounts) accountByEmail(ctx context.Context, email string) (account, error) {
	query, args, err := buildAccountByEmailQuery(email)
	if err != nil {
		return account{}, fmt.Errorf("error building sql query: %w", err)
	}

	return r.queryAccount(ctx, "*postgresAccounts.accountByEmail", query, args)
}

func (r *postgresAccounts) queryAccount(ctx context.Context, fn, query string, args []any) (account, error) {
	acc, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error querying account")
		}
		return account{}, accountError(err)
	}

	return acc, nil
}

func (r *postgresAccounts) listAccounts(ctx context.Context) ([]account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postgresAccounts.listAccounts").Msg("error querying accounts")
		return nil, accountError(err)
	}
	defer rows.Close()

	accounts := make([]account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			log.Err(err).Str("func", "*postgresAccounts.listAccounts").Msg("error scanning account")
			return nil, accountError(err)
		}
		accounts = append(accounts, acc)
	}
	if err = rows.Err(); err != nil {
		return nil, accountError(err)
	}

	return accounts, nil
}

func (r *postgresAccounts) updateAccount(ctx context.Context, id string, fn func(*account) error) (account, error) {
	log := logger.FromContext(ctx)

	lockQuery, lockArgs, err := buildLockAccountQuery(id)
	if err != nil {
		return account{}, fmt.Errorf("error building sql query: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postgresAccounts.updateAccount").Msg("error starting transaction")
		return account{}, accountError(err)
	}
	defer func() { _ = tx.Rollback() }()

	acc, err := scanAccount(tx.QueryRowContext(ctx, lockQuery, lockArgs...))
	if err != nil {
		return account{}, accountError(err)
	}

	if err = fn(&acc); err != nil {
		return account{}, err
	}

	query, args, err := buildUpdateAccountQuery(acc)
	if err != nil {
		return account{}, fmt.Errorf("error building sql query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postgresAccounts.updateAccount").Msg("error updating account")
		return account{}, accountError(err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postgresAccounts.updateAccount").Msg("error committing transaction")
		return account{}, accountError(err)
	}

	return acc, nil
}

func (r *postgresAccounts) deleteAccount(ctx context.Context, id string) error {
	query, args, err := buildDeleteAccountQuery(id)
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresAccounts.deleteAccount").Msg("error deleting account")
		return accountError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return accountError(err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (account, error) {
	var (
		acc  account
		role string
	)
	u := &acc.user
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.Phone, &u.Company, &acc.passwordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return account{}, err
	}
	u.Role = models.Role(role)
	u.CreatedAt, u.UpdatedAt = u.CreatedAt.UTC(), u.UpdatedAt.UTC()

	return acc, nil
}

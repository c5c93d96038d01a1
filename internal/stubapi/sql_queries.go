package stubapi

import (
	sq "github.com/Masterminds/squirrel"
)

const accountsTable = "accounts"

// psql is the statement builder for PostgreSQL: "$n" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var accountColumns = []string{
	"id", "name", "email", "role", "phone", "company", "password_hash", "created_at", "updated_at",
}

func buildCreateAccountQuery(acc account) (string, []any, error) {
	u := acc.user
	return psql.
		Insert(accountsTable).
		Columns(accountColumns...).
		Values(u.ID, u.Name, u.Email, string(u.Role), u.Phone, u.Company, acc.passwordHash, u.CreatedAt, u.UpdatedAt).
		ToSql()
}

func buildAccountByIDQuery(id string) (string, []any, error) {
	return psql.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildLockAccountQuery selects the account row and locks it until the end of
// the transaction.
func buildLockAccountQuery(id string) (string, []any, error) {
	return psql.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
}

func buildAccountByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildListAccountsQuery() (string, []any, error) {
	return psql.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("created_at", "id").
		ToSql()
}

// buildUpdateAccountQuery writes the mutable fields of acc. Email, role and
// created_at never change after registration.
func buildUpdateAccountQuery(acc account) (string, []any, error) {
	u := acc.user
	return psql.
		Update(accountsTable).
		Set("name", u.Name).
		Set("phone", u.Phone).
		Set("company", u.Company).
		Set("password_hash", acc.passwordHash).
		Set("updated_at", u.UpdatedAt).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
}

func buildDeleteAccountQuery(id string) (string, []any, error) {
	return psql.
		Delete(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

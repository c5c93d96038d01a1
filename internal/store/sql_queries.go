// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const tokensTable = "session_tokens"

// psql is the statement builder for SQLite: "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildLoadTokenQuery(name string) (string, []any, error) {
	return psql.
		Select("token").
		From(tokensTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildSaveTokenQuery(name, token string, at time.Time) (string, []any, error) {
	return psql.
		Insert(tokensTable).
		Columns("name", "token", "updated_at").
		Values(name, token, at).
		Suffix("ON CONFLICT (name) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteTokenQuery(name string) (string, []any, error) {
	return psql.
		Delete(tokensTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

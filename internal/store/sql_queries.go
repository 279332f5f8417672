// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	cookieHostsTable = "cookie_hosts"
	credentialsTable = "credentials"
)

// sqlite uses "?" placeholders
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectCookieHostQuery(host string) (string, []any, error) {
	query, args, err := sqlBuilder.
		Select("payload").
		From(cookieHostsTable).
		Where(sq.Eq{"host": host}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectCookieHostsQuery() (string, []any, error) {
	query, args, err := sqlBuilder.
		Select("host").
		From(cookieHostsTable).
		OrderBy("host").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpsertCookieHostQuery(host string, payload []byte) (string, []any, error) {
	query, args, err := sqlBuilder.
		Insert(cookieHostsTable).
		Columns("host", "payload").
		Values(host, string(payload)).
		Suffix("ON CONFLICT(host) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteCookieHostsQuery deletes the given hosts, or every host when
// none is given.
func buildDeleteCookieHostsQuery(hosts ...string) (string, []any, error) {
	builder := sqlBuilder.Delete(cookieHostsTable)
	if len(hosts) > 0 {
		builder = builder.Where(sq.Eq{"host": hosts})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectCredentialsQuery(keys []string) (string, []any, error) {
	query, args, err := sqlBuilder.
		Select("key", "value").
		From(credentialsTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpsertCredentialQuery(key string, value []byte) (string, []any, error) {
	query, args, err := sqlBuilder.
		Insert(credentialsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteCredentialsQuery(keys []string) (string, []any, error) {
	query, args, err := sqlBuilder.
		Delete(credentialsTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectCookieHostQuery(t *testing.T) {
	query, args, err := buildSelectCookieHostQuery("www.wanandroid.com")
	require.NoError(t, err)

	assert.Equal(t, "SELECT payload FROM cookie_hosts WHERE host = ?", query)
	assert.Equal(t, []any{"www.wanandroid.com"}, args)
}

func Test_buildSelectCookieHostsQuery(t *testing.T) {
	query, args, err := buildSelectCookieHostsQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT host FROM cookie_hosts ORDER BY host", query)
	assert.Empty(t, args)
}

func Test_buildUpsertCookieHostQuery(t *testing.T) {
	query, args, err := buildUpsertCookieHostQuery("h", []byte(`[]`))
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO cookie_hosts (host,payload) VALUES (?,?)")
	assert.Contains(t, query, "ON CONFLICT(host) DO UPDATE")
	assert.Equal(t, []any{"h", "[]"}, args)
}

func Test_buildDeleteCookieHostsQuery(t *testing.T) {
	tests := []struct {
		name      string
		hosts     []string
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "all hosts",
			wantQuery: "DELETE FROM cookie_hosts",
		},
		{
			name:      "single host",
			hosts:     []string{"a"},
			wantQuery: "DELETE FROM cookie_hosts WHERE host IN (?)",
			wantArgs:  []any{"a"},
		},
		{
			// squirrel generates IN (?,?) for a slice.
			name:      "several hosts",
			hosts:     []string{"a", "b"},
			wantQuery: "DELETE FROM cookie_hosts WHERE host IN (?,?)",
			wantArgs:  []any{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildDeleteCookieHostsQuery(tt.hosts...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildCredentialQueries(t *testing.T) {
	keys := []string{KeyAuthToken, KeyUserID}

	query, args, err := buildSelectCredentialsQuery(keys)
	require.NoError(t, err)
	assert.Equal(t, "SELECT key, value FROM credentials WHERE key IN (?,?)", query)
	assert.Equal(t, []any{KeyAuthToken, KeyUserID}, args)

	query, args, err = buildUpsertCredentialQuery(KeyAuthToken, []byte("blob"))
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO credentials (key,value) VALUES (?,?)")
	assert.Equal(t, []any{KeyAuthToken, []byte("blob")}, args)

	query, args, err = buildDeleteCredentialsQuery(keys)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM credentials WHERE key IN (?,?)", query)
	assert.Len(t, args, 2)
}

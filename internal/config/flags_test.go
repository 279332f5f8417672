package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBaseURL_Set tests the Set and String methods of BaseURL
func TestBaseURL_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    string
	}{
		{
			name:     "https host",
			input:    "https://www.wanandroid.com",
			expected: "https://www.wanandroid.com",
		},
		{
			name:     "trailing slash trimmed",
			input:    "http://localhost:8080/",
			expected: "http://localhost:8080",
		},
		{
			name:        "missing scheme",
			input:       "localhost:8080",
			expectError: true,
		},
		{
			name:        "unsupported scheme",
			input:       "ftp://example.com",
			expectError: true,
		},
		{
			name:        "no host",
			input:       "https://",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u BaseURL
			err := u.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, "", u.String())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, u.String())
		})
	}
}

// TestIntList_Set tests parsing of comma separated codes
func TestIntList_Set(t *testing.T) {
	var l IntList
	require.NoError(t, l.Set("-1001, -1002,,7"))
	assert.Equal(t, IntList{-1001, -1002, 7}, l)
	assert.Equal(t, "-1001,-1002,7", l.String())

	assert.Error(t, l.Set("x"))
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "https://api.example.com",
		"-d", "file:flags.db",
		"-config", "/etc/client.json",
		"-u", "alice",
		"-p", "pw1",
		"-credential-key", "key",
		"-credential-salt", "salt",
		"-request-timeout", "20s",
		"-unauthorized-codes", "-1001,-1",
		"-max-pages", "4",
		"-log", "/tmp/c.log",
		"-follow",
	}

	cfg, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.Address)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []int{-1001, -1}, cfg.Adapter.UnauthorizedCodes)
	assert.Equal(t, "file:flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/client.json", cfg.JSONFilePath)
	assert.Equal(t, "alice", cfg.App.Username)
	assert.Equal(t, "pw1", cfg.App.Password)
	assert.Equal(t, "key", cfg.App.CredentialKey)
	assert.Equal(t, "salt", cfg.App.CredentialSalt)
	assert.Equal(t, "/tmp/c.log", cfg.App.LogPath)
	assert.True(t, cfg.App.Follow)
	assert.Equal(t, 4, cfg.Paging.MaxPages)
}

func TestParseFlags_ServerFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-listen", ":9090",
		"-token-sign-key", "k",
		"-token-ttl", "30s",
		"-users", "alice:pw1, bob:pw2,",
		"-status-401",
		"-page-size", "5",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "k", cfg.Server.TokenSignKey)
	assert.Equal(t, 30*time.Second, cfg.Server.TokenTTL)
	assert.Equal(t, []string{"alice:pw1", "bob:pw2"}, cfg.Server.Users)
	assert.True(t, cfg.Server.Status401)
	assert.Equal(t, 5, cfg.Server.PageSize)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Adapter.Address)
	assert.Nil(t, cfg.Adapter.UnauthorizedCodes)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "", cfg.JSONFilePath)
}

func TestParseFlags_InvalidValue(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "not a url"})
	require.Error(t, err)

	_, err = ParseFlags([]string{"-unknown"})
	require.Error(t, err)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetServerConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultServerAddress, cfg.Address)
	assert.Equal(t, DefaultTokenTTL, cfg.TokenTTL)
	assert.Equal(t, DefaultServerPageSize, cfg.PageSize)
	assert.Equal(t, []Account{{Username: "alice", Password: "pw1"}}, cfg.Accounts)
	assert.False(t, cfg.Status401)
}

func TestGetServerConfig_EnvOverrides(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_USERS":      "bob:pw2,carol:pw3",
		"SERVER_TOKEN_TTL":  "2s",
		"SERVER_STATUS_401": "true",
	})

	cfg, err := GetServerConfig([]string{"-users", "dave:pw4"})
	require.NoError(t, err)

	assert.Equal(t, []Account{
		{Username: "bob", Password: "pw2"},
		{Username: "carol", Password: "pw3"},
	}, cfg.Accounts)
	assert.Equal(t, 2*time.Second, cfg.TokenTTL)
	assert.True(t, cfg.Status401)
}

func TestParseAccounts(t *testing.T) {
	tests := []struct {
		name    string
		users   []string
		want    []Account
		wantErr bool
	}{
		{name: "empty", users: nil, want: []Account{}},
		{name: "password with colon", users: []string{"a:b:c"}, want: []Account{{Username: "a", Password: "b:c"}}},
		{name: "missing password", users: []string{"alice:"}, wantErr: true},
		{name: "no separator", users: []string{"alice"}, wantErr: true},
		{name: "duplicate", users: []string{"a:1", "a:2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAccounts(tt.users)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidServerConfigs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		cfg, err := newServerConfig(defaultConfig())
		require.NoError(t, err)
		return cfg
	}

	assert.NoError(t, valid().validate())

	for name, mutate := range map[string]func(*ServerConfig){
		"no address":  func(c *ServerConfig) { c.Address = "" },
		"no sign key": func(c *ServerConfig) { c.TokenSignKey = "" },
		"zero ttl":    func(c *ServerConfig) { c.TokenTTL = 0 },
		"no accounts": func(c *ServerConfig) { c.Accounts = nil },
		"zero page":   func(c *ServerConfig) { c.PageSize = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.ErrorIs(t, c.validate(), ErrInvalidServerConfigs)
		})
	}
}

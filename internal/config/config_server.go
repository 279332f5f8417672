package config

import (
	"fmt"
	"strings"
	"time"
)

// Account is a seeded stub server account.
type Account struct {
	Username string
	Password string
}

// ServerConfig is the stub content server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Address      string
	TokenSignKey string
	TokenTTL     time.Duration
	// Accounts keep the configured order; user ids are assigned from it.
	Accounts  []Account
	Status401 bool
	PageSize  int
}

// GetServerConfig builds and validates the stub server config view.
// args are the command-line arguments without the program name.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg, err := newServerConfig(cfg)
	if err != nil {
		return nil, err
	}

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	accounts, err := parseAccounts(cfg.Server.Users)
	if err != nil {
		return nil, err
	}

	return &ServerConfig{
		Address:      cfg.Server.Address,
		TokenSignKey: cfg.Server.TokenSignKey,
		TokenTTL:     cfg.Server.TokenTTL,
		Accounts:     accounts,
		Status401:    cfg.Server.Status401,
		PageSize:     cfg.Server.PageSize,
	}, nil
}

func parseAccounts(users []string) ([]Account, error) {
	accounts := make([]Account, 0, len(users))
	seen := make(map[string]struct{}, len(users))
	for _, entry := range users {
		username, password, ok := strings.Cut(entry, ":")
		if !ok || username == "" || password == "" {
			return nil, fmt.Errorf("%w: account %q is not username:password", ErrInvalidServerConfigs, entry)
		}
		if _, dup := seen[username]; dup {
			return nil, fmt.Errorf("%w: duplicate account %q", ErrInvalidServerConfigs, username)
		}
		seen[username] = struct{}{}
		accounts = append(accounts, Account{Username: username, Password: password})
	}
	return accounts, nil
}

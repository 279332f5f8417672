// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the invariants every merged configuration must satisfy,
// whatever view is later derived from it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Paging.FirstPage < 0 || cfg.Paging.MaxPages < 0 {
		return ErrInvalidPagingConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.CookiePruneInterval <= 0 || cfg.Workers.ProfileRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.CredentialKey == "" || cfg.App.CredentialSalt == "" {
		return ErrInvalidAppConfigs
	}
	// a half-configured start-up login is a typo rather than a choice
	if (cfg.App.Username == "") != (cfg.App.Password == "") {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Address == "" || cfg.TokenSignKey == "" || cfg.TokenTTL <= 0 || cfg.PageSize <= 0 {
		return ErrInvalidServerConfigs
	}
	if len(cfg.Accounts) == 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

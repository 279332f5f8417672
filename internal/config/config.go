// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the feed
// client. It is populated by merging environment variables, command-line
// flags, an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credential-store secrets, optional start-up credentials and
	// the log destination.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the REST backend address and the transport behaviour.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Paging holds the cursor conventions of paginated lists.
	Paging Paging `envPrefix:"PAGING_"`

	// Workers holds the intervals of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the settings of the stub content server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// CredentialKey is the secret the credential-store encryption key is
	// derived from. Must be kept confidential.
	// Env: APP_CREDENTIAL_KEY
	CredentialKey string `env:"CREDENTIAL_KEY"`

	// CredentialSalt is the salt of the key derivation.
	// Env: APP_CREDENTIAL_SALT
	CredentialSalt string `env:"CREDENTIAL_SALT"`

	// Username and Password are optional. When both are set and no session
	// is persisted, the client logs in at start-up.
	// Env: APP_USERNAME, APP_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// LogPath is the file the client logs to. Empty means a "logs" file next
	// to the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// Follow keeps the client running with its background jobs after the
	// feed walk, until interrupted.
	// Env: APP_FOLLOW
	Follow bool `env:"FOLLOW"`
}

// Storage groups the storage backends.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, e.g. "file:feed.db?_foreign_keys=on".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the outbound REST client.
type Adapter struct {
	// Address is the base URL of the backend, e.g. "https://www.wanandroid.com".
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request, the silent re-login
	// included.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UnauthorizedCodes are envelope errorCode values treated like HTTP 401.
	// Env: ADAPTER_UNAUTHORIZED_CODES (comma separated)
	UnauthorizedCodes []int `env:"UNAUTHORIZED_CODES" envSeparator:","`
}

// Paging holds list cursor settings.
type Paging struct {
	// FirstPage is the cursor of the first page of the article feeds.
	// Env: PAGING_FIRST_PAGE
	FirstPage int `env:"FIRST_PAGE"`

	// MaxPages caps how many pages the CLI walks through. Zero means until
	// the server reports the last page.
	// Env: PAGING_MAX_PAGES
	MaxPages int `env:"MAX_PAGES"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// CookiePruneInterval is how often expired cookies are swept.
	// Env: WORKERS_COOKIE_PRUNE_INTERVAL
	CookiePruneInterval time.Duration `env:"COOKIE_PRUNE_INTERVAL"`

	// ProfileRefreshInterval is how often the user profile is re-hydrated
	// while logged in.
	// Env: WORKERS_PROFILE_REFRESH_INTERVAL
	ProfileRefreshInterval time.Duration `env:"PROFILE_REFRESH_INTERVAL"`
}

// Server holds settings of the stub content server used for local runs and
// end-to-end tests of the client.
type Server struct {
	// Address is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// TokenSignKey is the HMAC secret the issued tokens are signed with.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenTTL is how long an issued token is accepted. Short values
	// exercise the silent re-login of the client.
	// Env: SERVER_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// Users are the seeded accounts, each "username:password".
	// Env: SERVER_USERS (comma separated)
	Users []string `env:"USERS" envSeparator:","`

	// Status401 rejects stale tokens with HTTP 401 instead of the -1001
	// envelope.
	// Env: SERVER_STATUS_401
	Status401 bool `env:"STATUS_401"`

	// PageSize is the number of items per list page.
	// Env: SERVER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Default values applied to fields no source has set.
const (
	DefaultAdapterAddress         = "https://www.wanandroid.com"
	DefaultRequestTimeout         = 15 * time.Second
	DefaultUnauthorizedCode       = -1001
	DefaultDSN                    = "file:feed-client.db?_foreign_keys=on"
	DefaultCredentialSalt         = "go-feed-client"
	DefaultCookiePruneInterval    = 10 * time.Minute
	DefaultProfileRefreshInterval = 5 * time.Minute

	DefaultServerAddress  = "localhost:8080"
	DefaultTokenSignKey   = "stub-sign-key"
	DefaultTokenTTL       = 10 * time.Minute
	DefaultServerUser     = "alice:pw1"
	DefaultServerPageSize = 20
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CredentialSalt: DefaultCredentialSalt,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			Address:           DefaultAdapterAddress,
			RequestTimeout:    DefaultRequestTimeout,
			UnauthorizedCodes: []int{DefaultUnauthorizedCode},
		},
		Workers: Workers{
			CookiePruneInterval:    DefaultCookiePruneInterval,
			ProfileRefreshInterval: DefaultProfileRefreshInterval,
		},
		Server: Server{
			Address:      DefaultServerAddress,
			TokenSignKey: DefaultTokenSignKey,
			TokenTTL:     DefaultTokenTTL,
			Users:        []string{DefaultServerUser},
			PageSize:     DefaultServerPageSize,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first source that sets it wins, in this order:
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}

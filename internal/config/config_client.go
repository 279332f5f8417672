package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// CredentialKey and CredentialSalt feed the credential-store key
	// derivation.
	CredentialKey  string
	CredentialSalt string
	// Username and Password are the optional start-up credentials.
	Username string
	Password string
	// LogPath is the client log file.
	LogPath string
	// Follow keeps the client running after the feed walk.
	Follow bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the backend base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// UnauthorizedCodes are envelope codes routed like HTTP 401.
	UnauthorizedCodes []int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientPaging contains list paging settings.
type ClientPaging struct {
	FirstPage int
	MaxPages  int
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	CookiePruneInterval    time.Duration
	ProfileRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Paging  ClientPaging
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			CredentialKey:  cfg.App.CredentialKey,
			CredentialSalt: cfg.App.CredentialSalt,
			Username:       cfg.App.Username,
			Password:       cfg.App.Password,
			LogPath:        cfg.App.LogPath,
			Follow:         cfg.App.Follow,
		},
		Adapter: ClientAdapter{
			BaseURL:           cfg.Adapter.Address,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			UnauthorizedCodes: cfg.Adapter.UnauthorizedCodes,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Paging: ClientPaging{
			FirstPage: cfg.Paging.FirstPage,
			MaxPages:  cfg.Paging.MaxPages,
		},
		Workers: ClientWorkers{
			CookiePruneInterval:    cfg.Workers.CookiePruneInterval,
			ProfileRefreshInterval: cfg.Workers.ProfileRefreshInterval,
		},
	}
}

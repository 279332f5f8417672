package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		CredentialKey  string `json:"credential_key"`
		CredentialSalt string `json:"credential_salt"`
		Username       string `json:"username"`
		Password       string `json:"password"`
		LogPath        string `json:"log_path"`
		Follow         bool   `json:"follow"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		Address           string   `json:"address"`
		RequestTimeout    Duration `json:"request_timeout"`
		UnauthorizedCodes []int    `json:"unauthorized_codes"`
	} `json:"adapter,omitempty"`

	Paging struct {
		FirstPage int `json:"first_page"`
		MaxPages  int `json:"max_pages"`
	} `json:"paging,omitempty"`

	Workers struct {
		CookiePruneInterval    Duration `json:"cookie_prune_interval"`
		ProfileRefreshInterval Duration `json:"profile_refresh_interval"`
	} `json:"workers,omitempty"`

	Server struct {
		Address      string   `json:"address"`
		TokenSignKey string   `json:"token_sign_key"`
		TokenTTL     Duration `json:"token_ttl"`
		Users        []string `json:"users"`
		Status401    bool     `json:"status_401"`
		PageSize     int      `json:"page_size"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			CredentialKey:  jsonCfg.App.CredentialKey,
			CredentialSalt: jsonCfg.App.CredentialSalt,
			Username:       jsonCfg.App.Username,
			Password:       jsonCfg.App.Password,
			LogPath:        jsonCfg.App.LogPath,
			Follow:         jsonCfg.App.Follow,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			Address:           jsonCfg.Adapter.Address,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			UnauthorizedCodes: jsonCfg.Adapter.UnauthorizedCodes,
		},
		Paging: Paging{
			FirstPage: jsonCfg.Paging.FirstPage,
			MaxPages:  jsonCfg.Paging.MaxPages,
		},
		Workers: Workers{
			CookiePruneInterval:    time.Duration(jsonCfg.Workers.CookiePruneInterval),
			ProfileRefreshInterval: time.Duration(jsonCfg.Workers.ProfileRefreshInterval),
		},
		Server: Server{
			Address:      jsonCfg.Server.Address,
			TokenSignKey: jsonCfg.Server.TokenSignKey,
			TokenTTL:     time.Duration(jsonCfg.Server.TokenTTL),
			Users:        jsonCfg.Server.Users,
			Status401:    jsonCfg.Server.Status401,
			PageSize:     jsonCfg.Server.PageSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

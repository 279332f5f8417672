package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BaseURL holds a validated http(s) base URL. It implements the flag.Value
// interface.
type BaseURL struct {
	URL *url.URL
}

// IntList is a comma separated list of integers. It implements the
// flag.Value interface.
type IntList []int

// ParseFlags parses the configuration flags in args.
//
// Flags:
//
//	-a backend base URL, e.g. https://www.wanandroid.com
//	-d database DSN
//	-c/-config json file path with configs
//	-u login username
//	-p login password
//	-credential-key credential store secret
//	-credential-salt credential store salt
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-unauthorized-codes envelope codes treated as 401, e.g. "-1001,-1002"
//	-max-pages pages to walk through
//	-log log file path
//	-follow keep running after the feed walk
//	-listen stub server listen address host:port
//	-token-sign-key stub server token signing key
//	-token-ttl stub server token lifetime (e.g., "30s", "10m")
//	-users stub server accounts, e.g. "alice:pw1,bob:pw2"
//	-status-401 stub server rejects stale tokens with HTTP 401
//	-page-size stub server list page size
func ParseFlags(args []string) (*StructuredConfig, error) {
	var baseURL BaseURL
	var unauthorizedCodes IntList
	var databaseDSN string
	var jsonConfigPath string
	var username, password string
	var credentialKey, credentialSalt string
	var requestTimeout time.Duration
	var maxPages int
	var logPath string
	var follow bool
	var listenAddress, tokenSignKey, users string
	var tokenTTL time.Duration
	var status401 bool
	var pageSize int

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&baseURL, "a", "Backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&username, "u", "", "Login username")
	fs.StringVar(&password, "p", "", "Login password")
	fs.StringVar(&credentialKey, "credential-key", "", "Credential store secret")
	fs.StringVar(&credentialSalt, "credential-salt", "", "Credential store salt")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.Var(&unauthorizedCodes, "unauthorized-codes", "Envelope codes treated as unauthorized")
	fs.IntVar(&maxPages, "max-pages", 0, "Pages to walk through")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.BoolVar(&follow, "follow", false, "Keep running after the feed walk")
	fs.StringVar(&listenAddress, "listen", "", "Stub server listen address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Stub server token signing key")
	fs.DurationVar(&tokenTTL, "token-ttl", 0, "Stub server token lifetime (e.g., 30s, 10m)")
	fs.StringVar(&users, "users", "", "Stub server accounts username:password, comma separated")
	fs.BoolVar(&status401, "status-401", false, "Stub server rejects stale tokens with HTTP 401")
	fs.IntVar(&pageSize, "page-size", 0, "Stub server list page size")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			CredentialKey:  credentialKey,
			CredentialSalt: credentialSalt,
			Username:       username,
			Password:       password,
			LogPath:        logPath,
			Follow:         follow,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			Address:           baseURL.String(),
			RequestTimeout:    requestTimeout,
			UnauthorizedCodes: unauthorizedCodes,
		},
		Paging: Paging{
			MaxPages: maxPages,
		},
		Server: Server{
			Address:      listenAddress,
			TokenSignKey: tokenSignKey,
			TokenTTL:     tokenTTL,
			Users:        splitList(users),
			Status401:    status401,
			PageSize:     pageSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the URL without a trailing slash, or "" when unset.
func (u *BaseURL) String() string {
	if u.URL == nil {
		return ""
	}

	return strings.TrimRight(u.URL.String(), "/")
}

// Set parses s as an absolute http or https URL.
func (u *BaseURL) Set(s string) error {
	parsed, err := url.Parse(s)
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("need an http or https URL")
	}

	if parsed.Host == "" {
		return errors.New("URL has no host")
	}

	u.URL = parsed
	return nil
}

// String joins the list with commas.
func (l *IntList) String() string {
	parts := make([]string, 0, len(*l))
	for _, v := range *l {
		parts = append(parts, strconv.Itoa(v))
	}

	return strings.Join(parts, ",")
}

// Set parses a comma separated list of integers, replacing the list.
func (l *IntList) Set(s string) error {
	var out IntList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		v, err := strconv.Atoi(part)
		if err != nil {
			return err
		}
		out = append(out, v)
	}

	*l = out
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package adapter

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/models"
)

// CookieJar implements [http.CookieJar] on top of a [CookieStore].
//
// Cookies are stored under the request host. The http.CookieJar interface
// has no error returns, so storage failures are logged and the request goes
// on without cookies.
type CookieJar struct {
	store  CookieStore
	clock  clockwork.Clock
	logger *logger.Logger
}

var _ http.CookieJar = (*CookieJar)(nil)

// NewCookieJar builds a jar backed by store. clock turns Max-Age into an
// absolute expiry.
func NewCookieJar(store CookieStore, clock clockwork.Clock, log *logger.Logger) *CookieJar {
	return &CookieJar{store: store, clock: clock, logger: log}
}

// SetCookies replaces the cookies stored for u's host with cookies.
func (j *CookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	if len(cookies) == 0 {
		return
	}

	host := canonicalHost(u)
	now := j.clock.Now()

	records := make([]models.CookieRecord, 0, len(cookies))
	for _, c := range cookies {
		if c.Name == "" {
			continue
		}
		records = append(records, toRecord(c, host, defaultPath(u.Path), now))
	}

	if err := j.store.SaveFromResponse(context.Background(), host, records); err != nil {
		j.logger.Err(err).
			Str("func", "CookieJar.SetCookies").
			Str("host", host).
			Msg("error saving cookies")
	}
}

// Cookies returns the cookies to send in a request to u.
func (j *CookieJar) Cookies(u *url.URL) []*http.Cookie {
	host := canonicalHost(u)

	records, err := j.store.LoadForRequest(context.Background(), host)
	if err != nil {
		j.logger.Err(err).
			Str("func", "CookieJar.Cookies").
			Str("host", host).
			Msg("error loading cookies")
		return nil
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	secure := u.Scheme == "https"

	var cookies []*http.Cookie
	for _, r := range records {
		if r.Secure && !secure {
			continue
		}
		if !pathMatch(path, r.Path) {
			continue
		}
		if !r.HostOnly && !domainMatch(host, r.Domain) {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: r.Name, Value: r.Value})
	}
	return cookies
}

// CookieHeader renders the Cookie header value for u. It is used when a
// request is rebuilt outside the http.Client that would normally add it.
func (j *CookieJar) CookieHeader(u *url.URL) string {
	cookies := j.Cookies(u)
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}

// toRecord converts a Set-Cookie into its stored form. Max-Age takes
// precedence over Expires; a negative Max-Age yields a record that is
// already expired so the store drops it.
func toRecord(c *http.Cookie, host, defPath string, now time.Time) models.CookieRecord {
	r := models.CookieRecord{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   strings.TrimPrefix(strings.ToLower(c.Domain), "."),
		Path:     c.Path,
		Secure:   c.Secure,
		HTTPOnly: c.HttpOnly,
	}

	if r.Domain == "" {
		r.Domain = host
		r.HostOnly = true
	}
	if r.Path == "" || !strings.HasPrefix(r.Path, "/") {
		r.Path = defPath
	}

	switch {
	case c.MaxAge < 0:
		r.Persistent = true
		r.ExpiresAt = now
	case c.MaxAge > 0:
		r.Persistent = true
		r.ExpiresAt = now.Add(time.Duration(c.MaxAge) * time.Second)
	case !c.Expires.IsZero():
		r.Persistent = true
		r.ExpiresAt = c.Expires
	}

	return r
}

func canonicalHost(u *url.URL) string {
	return strings.ToLower(u.Hostname())
}

// defaultPath is the directory of the request path.
func defaultPath(path string) string {
	if path == "" || path[0] != '/' {
		return "/"
	}
	i := strings.LastIndex(path, "/")
	if i == 0 {
		return "/"
	}
	return path[:i]
}

func pathMatch(requestPath, cookiePath string) bool {
	if cookiePath == "" || requestPath == cookiePath {
		return true
	}
	if !strings.HasPrefix(requestPath, cookiePath) {
		return false
	}
	return strings.HasSuffix(cookiePath, "/") || requestPath[len(cookiePath)] == '/'
}

func domainMatch(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

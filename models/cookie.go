package models

import "time"

// CookieRecord is the persisted form of a single cookie received from the
// server. Records are stored per request host.
type CookieRecord struct {
	Name  string `json:"name"`
	Value string `json:"value"`

	// Domain is the cookie domain without a leading dot.
	Domain string `json:"domain"`
	Path   string `json:"path"`

	// ExpiresAt is the absolute expiry. It is only meaningful when
	// Persistent is set; session cookies live until the jar is cleared.
	ExpiresAt  time.Time `json:"expires_at"`
	Persistent bool      `json:"persistent"`

	Secure   bool `json:"secure"`
	HTTPOnly bool `json:"http_only"`

	// HostOnly is set when the response carried no Domain attribute, so the
	// cookie must only be sent back to the exact host.
	HostOnly bool `json:"host_only"`
}

// Expired reports whether the record must no longer be sent at now.
func (c CookieRecord) Expired(now time.Time) bool {
	return c.Persistent && !c.ExpiresAt.After(now)
}

// Pair returns the "name=value" form used in a Cookie request header.
func (c CookieRecord) Pair() string {
	return c.Name + "=" + c.Value
}

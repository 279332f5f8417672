package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-feed-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialStore is the credential persistence the services depend on.
// [store.AuthTokenStore] implements it.
type CredentialStore interface {
	// Save persists the whole bundle atomically.
	Save(ctx context.Context, c models.Credential) error

	// Clear removes the whole bundle atomically.
	Clear(ctx context.Context) error

	// IsLoggedIn reads through storage.
	IsLoggedIn(ctx context.Context) (bool, error)

	// PeekCredential returns the in-memory snapshot without I/O.
	PeekCredential() models.Credential

	// PeekToken returns the cached token without I/O.
	PeekToken() string

	// Generation changes every time the bundle is saved or cleared.
	Generation() uint64
}

// CookieCleaner is the cookie persistence the services depend on.
// [store.PersistentCookieStore] implements it.
type CookieCleaner interface {
	ClearAllCookies(ctx context.Context) error
	PruneExpired(ctx context.Context) (int, error)
}

// CookieHeaderSource renders the Cookie header for a URL.
// [adapter.CookieJar] implements it.
type CookieHeaderSource interface {
	CookieHeader(u *url.URL) string
}

// AuthFailureListener is notified when authentication cannot be recovered.
type AuthFailureListener interface {
	OnUnauthorized()
}

// LoginObserver is notified after a successful login, including a silent
// re-login.
type LoginObserver interface {
	OnLoginSuccess(result models.LoginResult)
}

// SessionListener receives both notifications. [SessionManager] implements
// it.
type SessionListener interface {
	AuthFailureListener
	LoginObserver
}

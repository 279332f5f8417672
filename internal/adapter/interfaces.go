// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer of the feed client.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the REST API. Every response arrives in an envelope
// ({errorCode, errorMsg, data}); a non-zero errorCode surfaces as a
// [*DomainError], while HTTP statuses are mapped to the sentinel values in
// errors.go by mapHTTPError so callers can use [errors.Is].
//
// Two pieces plug into the underlying net/http client: [CookieJar] bridges
// the persistent cookie store into http.CookieJar, and [RefreshTransport]
// detects authentication failures, asks a [TokenRefresher] for a new token
// and replays the request once.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-feed-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the content server.
type ServerAdapter interface {
	// Login authenticates with username and password. The returned result
	// always carries a token: taken from the payload, the Authorization
	// response header or the session cookie, in that order. Login never
	// goes through the refresh path.
	Login(ctx context.Context, username, password string) (models.LoginResult, error)

	// Logout ends the server-side session.
	Logout(ctx context.Context) error

	// UserInfo fetches the full profile of the logged-in user.
	UserInfo(ctx context.Context) (models.UserInfo, error)

	// Articles returns a page of the home feed. Pages start at 0.
	Articles(ctx context.Context, page int) (models.PageBean[models.Article], error)

	// SquareArticles returns a page of articles shared by users. Pages
	// start at 0.
	SquareArticles(ctx context.Context, page int) (models.PageBean[models.Article], error)

	// Favorites returns a page of the user's favourite articles. Pages
	// start at 0.
	Favorites(ctx context.Context, page int) (models.PageBean[models.Article], error)

	// ReadMessages returns a page of already read messages. Pages start
	// at 1.
	ReadMessages(ctx context.Context, page int) (models.PageBean[models.Message], error)
}

// TokenSource gives synchronous access to the current bearer token.
type TokenSource interface {
	PeekToken() string
}

// TokenRefresher is consulted by [RefreshTransport] when a request fails
// authentication.
type TokenRefresher interface {
	// CanRefresh reports whether re-authentication is possible at all.
	CanRefresh() bool

	// RefreshToken obtains a new token. failedToken is the token the
	// rejected request carried; if the current token already differs, the
	// refresh has happened elsewhere and nothing is done.
	RefreshToken(ctx context.Context, failedToken string) error

	// RebuildRequest returns a copy of req carrying the current
	// credentials.
	RebuildRequest(req *http.Request) (*http.Request, error)

	// ReportFailure records that authentication for failedToken could not be
	// recovered.
	ReportFailure(failedToken string, cause error)
}

// CookieStore is the persistence behind [CookieJar].
type CookieStore interface {
	LoadForRequest(ctx context.Context, host string) ([]models.CookieRecord, error)
	SaveFromResponse(ctx context.Context, host string, cookies []models.CookieRecord) error
}

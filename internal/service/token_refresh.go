// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-feed-client/internal/adapter"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/utils"
	"github.com/MKhiriev/go-feed-client/models"
)

const refreshFlightKey = "token-refresh"

// TokenRefreshCoordinator re-authenticates with the stored username and
// password when the server rejects the current token. It implements
// [adapter.TokenRefresher].
//
// Every concurrent failure joins one re-login call. Outcomes are tied to the
// credential generation they were observed for: once re-login failed for a
// generation, later failures of the same generation give up without another
// network call, and the session listener is told about the failure only once.
type TokenRefreshCoordinator struct {
	adapter adapter.ServerAdapter
	tokens  CredentialStore
	cookies CookieHeaderSource
	session SessionListener
	logger  *logger.Logger

	flight singleflight.Group

	mu                 sync.Mutex
	failedGeneration   uint64
	hasFailed          bool
	reportedGeneration uint64
	hasReported        bool
}

var _ adapter.TokenRefresher = (*TokenRefreshCoordinator)(nil)

// NewTokenRefreshCoordinator builds a coordinator. cookies may be nil when
// the client runs without a cookie jar.
func NewTokenRefreshCoordinator(
	serverAdapter adapter.ServerAdapter,
	tokens CredentialStore,
	cookies CookieHeaderSource,
	session SessionListener,
	log *logger.Logger,
) *TokenRefreshCoordinator {
	return &TokenRefreshCoordinator{
		adapter: serverAdapter,
		tokens:  tokens,
		cookies: cookies,
		session: session,
		logger:  log,
	}
}

// CanRefresh implements [adapter.TokenRefresher].
func (c *TokenRefreshCoordinator) CanRefresh() bool {
	return c.tokens.PeekCredential().CanRelogin()
}

// RefreshToken implements [adapter.TokenRefresher]. The re-login runs
// detached from ctx cancellation so that one impatient caller cannot fail
// the others; the client timeout still bounds it.
func (c *TokenRefreshCoordinator) RefreshToken(ctx context.Context, failedToken string) error {
	_, err, shared := c.flight.Do(refreshFlightKey, func() (any, error) {
		return nil, c.refresh(context.WithoutCancel(ctx), failedToken)
	})

	c.logger.Debug().
		Str("func", "TokenRefreshCoordinator.RefreshToken").
		Bool("shared", shared).
		Err(err).
		Msg("refresh finished")

	return err
}

func (c *TokenRefreshCoordinator) refresh(ctx context.Context, failedToken string) error {
	cred := c.tokens.PeekCredential()
	generation := c.tokens.Generation()

	if cred.Token != failedToken {
		if !cred.IsLoggedIn() {
			return ErrNotLoggedIn
		}
		// An earlier flight already replaced the token.
		return nil
	}
	if !cred.CanRelogin() {
		return ErrNoStoredCredentials
	}
	if c.failedFor(generation) {
		return ErrRefreshFailed
	}

	result, err := c.adapter.Login(ctx, cred.Username, cred.Password)
	if err != nil {
		c.markFailed(generation)
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	renewed := models.Credential{
		Token:    result.Token,
		UserID:   result.UserIDString(),
		Username: cred.Username,
		Password: cred.Password,
	}
	if err = c.tokens.Save(ctx, renewed); err != nil {
		c.markFailed(generation)
		return fmt.Errorf("%w: %w: %w", ErrRefreshFailed, ErrSavingCredential, err)
	}

	c.logger.Info().
		Str("func", "TokenRefreshCoordinator.refresh").
		Str("user_id", renewed.UserID).
		Msg("session renewed")

	c.session.OnLoginSuccess(result)
	return nil
}

// RebuildRequest implements [adapter.TokenRefresher]. The copy carries the
// current token and cookies, and a fresh body.
func (c *TokenRefreshCoordinator) RebuildRequest(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())

	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, ErrBodyNotReplayable
		}
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBodyNotReplayable, err)
		}
		clone.Body = body
	}

	if token := c.tokens.PeekToken(); token != "" {
		clone.Header.Set("Authorization", utils.BearerHeader(token))
	}
	if c.cookies != nil {
		if header := c.cookies.CookieHeader(req.URL); header != "" {
			clone.Header.Set("Cookie", header)
		}
	}

	return clone, nil
}

// ReportFailure implements [adapter.TokenRefresher]. Failures of a token
// that is no longer current are ignored: the session they belonged to has
// already been renewed or ended. A guest has no session to lose.
func (c *TokenRefreshCoordinator) ReportFailure(failedToken string, cause error) {
	if current := c.tokens.PeekToken(); current == "" || failedToken != current {
		c.logger.Debug().
			Str("func", "TokenRefreshCoordinator.ReportFailure").
			Msg("ignoring failure of a stale token")
		return
	}

	generation := c.tokens.Generation()

	c.mu.Lock()
	if c.hasReported && c.reportedGeneration == generation {
		c.mu.Unlock()
		return
	}
	c.hasReported = true
	c.reportedGeneration = generation
	c.mu.Unlock()

	c.logger.Warn().Err(cause).
		Str("func", "TokenRefreshCoordinator.ReportFailure").
		Msg("authentication lost, forcing logout")

	c.session.OnUnauthorized()
}

func (c *TokenRefreshCoordinator) failedFor(generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasFailed && c.failedGeneration == generation
}

func (c *TokenRefreshCoordinator) markFailed(generation uint64) {
	c.mu.Lock()
	c.hasFailed = true
	c.failedGeneration = generation
	c.mu.Unlock()
}

package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-feed-client/internal/adapter"
	"github.com/MKhiriev/go-feed-client/internal/config"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/store"
	"github.com/MKhiriev/go-feed-client/internal/workers"
)

// ClientServices is the wired session core of the client: the network
// stack with its cookie jar and silent re-login, the session and the list
// fetchers.
type ClientServices struct {
	Adapter adapter.ServerAdapter
	Jar     *adapter.CookieJar
	Session *SessionManager
	Refresh *TokenRefreshCoordinator
	Feeds   *Feeds

	// Jobs are the background workers; the caller runs them.
	Jobs *workers.Workers
}

// NewClientServices wires the services on top of storages. ctx bounds the
// background work of the session.
func NewClientServices(
	ctx context.Context,
	cfg *config.ClientConfig,
	storages *store.Storages,
	loop *workers.MainLoop,
	clock clockwork.Clock,
	log *logger.Logger,
) (*ClientServices, error) {
	jar := adapter.NewCookieJar(storages.Cookies, clock, log.Component("jar"))
	transport := adapter.NewRefreshTransport(nil, cfg.Adapter.UnauthorizedCodes, log.Component("transport"))

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, adapter.Options{
		Tokens:    storages.Tokens,
		Jar:       jar,
		Transport: transport,
	}, log.Component("adapter"))
	if err != nil {
		return nil, fmt.Errorf("error creating server adapter: %w", err)
	}

	session := NewSessionManager(ctx, serverAdapter, storages.Tokens, storages.Cookies, loop, log.Component("session"))
	refresher := NewTokenRefreshCoordinator(serverAdapter, storages.Tokens, jar, session, log.Component("refresh"))
	transport.SetTokenRefresher(refresher)

	jobs := workers.NewWorkers(
		NewCookiePruneJob(storages.Cookies, cfg.Workers.CookiePruneInterval, clock, log.Component("jobs")),
		NewProfileRefreshJob(session, cfg.Workers.ProfileRefreshInterval, clock, log.Component("jobs")),
	)

	return &ClientServices{
		Adapter: serverAdapter,
		Jar:     jar,
		Session: session,
		Refresh: refresher,
		Feeds:   NewFeeds(serverAdapter, cfg.Paging.FirstPage),
		Jobs:    jobs,
	}, nil
}

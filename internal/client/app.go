package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-feed-client/internal/config"
	"github.com/MKhiriev/go-feed-client/internal/crypto"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/service"
	"github.com/MKhiriev/go-feed-client/internal/store"
	"github.com/MKhiriev/go-feed-client/internal/workers"
	"github.com/MKhiriev/go-feed-client/models"
)

type App struct {
	cfg      *config.ClientConfig
	storages *store.Storages
	loop     *workers.MainLoop
	services *service.ClientServices
	out      *printer
	logger   *logger.Logger

	// sessionCtx bounds the background work of the session and ends on Close.
	sessionCtx    context.Context
	sessionCancel context.CancelFunc
}

var _ Client = (*App)(nil)

// NewApp opens local storage and wires the client services. Output meant
// for the user goes to out.
func NewApp(ctx context.Context, cfg *config.ClientConfig, clock clockwork.Clock, out io.Writer, log *logger.Logger) (*App, error) {
	keys, err := crypto.NewKeyChain(cfg.App.CredentialKey, cfg.App.CredentialSalt)
	if err != nil {
		return nil, fmt.Errorf("error creating key chain: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, keys, clock, log.Component("store"))
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	loop := workers.NewMainLoop(log.Component("main"))
	sessionCtx, sessionCancel := context.WithCancel(context.Background())

	services, err := service.NewClientServices(sessionCtx, cfg, storages, loop, clock, log)
	if err != nil {
		sessionCancel()
		return nil, errors.Join(err, storages.Close())
	}

	return &App{
		cfg:           cfg,
		storages:      storages,
		loop:          loop,
		services:      services,
		out:           &printer{out: out},
		logger:        log,
		sessionCtx:    sessionCtx,
		sessionCancel: sessionCancel,
	}, nil
}

// Run restores the session, logs in with the configured credentials when
// there is none, and walks the home feed. With Follow set it then keeps the
// session and its background jobs running until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var runErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.loop.Run(gctx) })
	g.Go(func() error { return a.services.Jobs.Run(gctx) })
	g.Go(func() error {
		defer cancel()
		runErr = a.run(gctx)
		if runErr == nil && a.cfg.App.Follow {
			<-gctx.Done()
		}
		return nil
	})

	err := g.Wait()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) run(ctx context.Context) error {
	session := a.services.Session

	stopState := session.State.Observe(a.out.session)
	defer stopState()
	stopFailure := session.AuthFailure.Observe(func(err error) {
		if err != nil {
			a.out.printf("session ended: %v\n", err)
		}
	})
	defer stopFailure()

	session.Initialize(ctx)

	// the restored state is published on the loop
	var loggedIn bool
	if err := a.loop.Sync(ctx, func() { loggedIn = session.IsLoggedIn() }); err != nil {
		return fmt.Errorf("initialize session: %w", err)
	}

	if !loggedIn && a.cfg.App.Username != "" {
		if _, err := session.Login(ctx, a.cfg.App.Username, a.cfg.App.Password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}

	feeds := a.services.Feeds
	n := 0
	pages, err := walkFeed(ctx, a.loop, feeds.FirstPage(), feeds.Home(), a.cfg.Paging.MaxPages,
		func(_ int, items []models.Article) {
			for _, item := range items {
				n++
				a.out.article(n, item)
			}
		}, a.logger.Component("paging"))
	if err != nil {
		return fmt.Errorf("home feed: %w", err)
	}

	a.logger.Info().Int("pages", pages).Int("articles", n).Msg("home feed walked")
	return nil
}

// Close waits for background profile work and closes local storage.
func (a *App) Close() error {
	a.services.Session.Wait()
	a.sessionCancel()
	return a.storages.Close()
}

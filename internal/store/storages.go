package store

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-feed-client/internal/config"
	"github.com/MKhiriev/go-feed-client/internal/crypto"
	"github.com/MKhiriev/go-feed-client/internal/logger"
)

// Storages groups the client-side stores so they can be passed around the
// service layer as one value.
type Storages struct {
	// Cookies is the persistent cookie jar backing store.
	Cookies *PersistentCookieStore
	// Tokens is the encrypted credential store.
	Tokens *AuthTokenStore

	db *DB
}

// NewStorages opens the SQLite database described by cfg, runs the pending
// migrations and builds the stores on top of it. The credential snapshot is
// loaded before returning.
func NewStorages(ctx context.Context, cfg config.ClientStorage, keys crypto.KeyChain, clock clockwork.Clock, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		Cookies: NewPersistentCookieStore(NewCookieRepository(db, log), clock, log.Component("cookies")),
		Tokens:  NewAuthTokenStore(NewCredentialRepository(db, log), keys, log.Component("credentials")),
		db:      db,
	}

	if err := storages.Tokens.Load(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("loading credential: %w", err)
	}

	return storages, nil
}

// Close releases the database.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/models"
)

// PersistentCookieStore keeps the cookies received from the server, keyed by
// request host, and persists them write-through so they survive restarts.
//
// Entries are loaded lazily on first access and cached. Expired records are
// never returned; they are dropped on read and on write. A payload that
// cannot be decoded resets the host entry to empty.
//
// All methods are safe for concurrent use. Writes to the same host are
// serialized, and a clear waits for every host operation in flight so that
// no cookie is written back after it.
type PersistentCookieStore struct {
	repo   CookieRepository
	clock  clockwork.Clock
	logger *logger.Logger

	// gate is held shared by host operations and exclusively by clears.
	gate sync.RWMutex

	mu    sync.Mutex
	cache map[string][]models.CookieRecord
	locks map[string]*sync.Mutex
}

// NewPersistentCookieStore builds a store on top of repo. clock decides
// which cookies are expired.
func NewPersistentCookieStore(repo CookieRepository, clock clockwork.Clock, log *logger.Logger) *PersistentCookieStore {
	return &PersistentCookieStore{
		repo:   repo,
		clock:  clock,
		logger: log,
		cache:  make(map[string][]models.CookieRecord),
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *PersistentCookieStore) hostLock(host string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[host]
	if !ok {
		l = new(sync.Mutex)
		s.locks[host] = l
	}
	return l
}

// LoadForRequest returns the live cookies of host. When expired records are
// found they are dropped and the pruned set is persisted.
func (s *PersistentCookieStore) LoadForRequest(ctx context.Context, host string) ([]models.CookieRecord, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()

	l := s.hostLock(host)
	l.Lock()
	defer l.Unlock()

	records, err := s.load(ctx, host)
	if err != nil {
		return nil, err
	}

	live := s.filterLive(records)
	if len(live) != len(records) {
		s.logger.Debug().
			Str("func", "PersistentCookieStore.LoadForRequest").
			Str("host", host).
			Int("expired", len(records)-len(live)).
			Msg("dropping expired cookies")

		if err := s.persist(ctx, host, live); err != nil {
			return nil, err
		}
	}

	return slices.Clone(live), nil
}

// SaveFromResponse replaces the cookie set of host with cookies. Expired
// records are dropped first; when nothing is left the host entry is deleted.
// An empty cookies slice is a no-op.
func (s *PersistentCookieStore) SaveFromResponse(ctx context.Context, host string, cookies []models.CookieRecord) error {
	if len(cookies) == 0 {
		return nil
	}

	s.gate.RLock()
	defer s.gate.RUnlock()

	l := s.hostLock(host)
	l.Lock()
	defer l.Unlock()

	return s.persist(ctx, host, s.filterLive(cookies))
}

// ClearAllCookies removes every persisted cookie.
func (s *PersistentCookieStore) ClearAllCookies(ctx context.Context) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := s.repo.DeleteHosts(ctx); err != nil {
		return fmt.Errorf("error clearing cookies: %w", err)
	}

	s.mu.Lock()
	clear(s.cache)
	s.mu.Unlock()

	s.logger.Debug().Str("func", "PersistentCookieStore.ClearAllCookies").Msg("all cookies cleared")
	return nil
}

// ClearCookiesForDomain removes the cookies of domain and of all its
// sub-domain hosts.
func (s *PersistentCookieStore) ClearCookiesForDomain(ctx context.Context, domain string) error {
	domain = strings.ToLower(strings.TrimPrefix(domain, "."))

	s.gate.Lock()
	defer s.gate.Unlock()

	hosts, err := s.repo.ListHosts(ctx)
	if err != nil {
		return fmt.Errorf("error listing cookie hosts: %w", err)
	}

	var matched []string
	for _, host := range hosts {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			matched = append(matched, host)
		}
	}

	if len(matched) > 0 {
		if err := s.repo.DeleteHosts(ctx, matched...); err != nil {
			return fmt.Errorf("error clearing cookies of %s: %w", domain, err)
		}
	}

	s.mu.Lock()
	for host := range s.cache {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			delete(s.cache, host)
		}
	}
	s.mu.Unlock()

	return nil
}

// PruneExpired sweeps every persisted host and drops expired records. It
// returns the number of records removed.
func (s *PersistentCookieStore) PruneExpired(ctx context.Context) (int, error) {
	hosts, err := s.repo.ListHosts(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing cookie hosts: %w", err)
	}

	removed := 0
	for _, host := range hosts {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		n, err := s.pruneHost(ctx, host)
		if err != nil {
			return removed, err
		}
		removed += n
	}

	return removed, nil
}

func (s *PersistentCookieStore) pruneHost(ctx context.Context, host string) (int, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()

	l := s.hostLock(host)
	l.Lock()
	defer l.Unlock()

	records, err := s.load(ctx, host)
	if err != nil {
		return 0, err
	}

	live := s.filterLive(records)
	if len(live) == len(records) {
		return 0, nil
	}

	return len(records) - len(live), s.persist(ctx, host, live)
}

// load returns the cached records of host, reading them from the repository
// on first access. Callers hold the host lock.
func (s *PersistentCookieStore) load(ctx context.Context, host string) ([]models.CookieRecord, error) {
	s.mu.Lock()
	records, ok := s.cache[host]
	s.mu.Unlock()
	if ok {
		return records, nil
	}

	payload, found, err := s.repo.GetHost(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("error loading cookies of %s: %w", host, err)
	}

	if found {
		records, err = decodeCookies(payload)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "PersistentCookieStore.load").
				Str("host", host).
				Msg("resetting corrupted cookie entry")

			if err := s.repo.DeleteHosts(ctx, host); err != nil {
				return nil, fmt.Errorf("error resetting cookies of %s: %w", host, err)
			}
			records = nil
		}
	}

	s.mu.Lock()
	s.cache[host] = records
	s.mu.Unlock()

	return records, nil
}

// persist writes records as the full set of host. Callers hold the host lock.
func (s *PersistentCookieStore) persist(ctx context.Context, host string, records []models.CookieRecord) error {
	if len(records) == 0 {
		if err := s.repo.DeleteHosts(ctx, host); err != nil {
			return fmt.Errorf("error deleting cookies of %s: %w", host, err)
		}
	} else {
		payload, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("error encoding cookies of %s: %w", host, err)
		}
		if err := s.repo.PutHost(ctx, host, payload); err != nil {
			return fmt.Errorf("error saving cookies of %s: %w", host, err)
		}
	}

	s.mu.Lock()
	s.cache[host] = slices.Clone(records)
	s.mu.Unlock()

	return nil
}

func (s *PersistentCookieStore) filterLive(records []models.CookieRecord) []models.CookieRecord {
	now := s.clock.Now()

	live := make([]models.CookieRecord, 0, len(records))
	for _, r := range records {
		if !r.Expired(now) {
			live = append(live, r)
		}
	}
	return live
}

func decodeCookies(payload []byte) ([]models.CookieRecord, error) {
	var records []models.CookieRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedState, err)
	}
	return records, nil
}

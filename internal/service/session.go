// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-feed-client/internal/adapter"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/observable"
	"github.com/MKhiriev/go-feed-client/internal/workers"
	"github.com/MKhiriev/go-feed-client/models"
)

// SessionManager owns the logical session: guest or logged in with optional
// user info.
//
// State is published on the main loop only. Every transition to guest starts
// a new session epoch; results of work started in an earlier epoch, such as
// a profile fetch racing a logout, are dropped.
type SessionManager struct {
	adapter adapter.ServerAdapter
	tokens  CredentialStore
	cookies CookieCleaner
	loop    *workers.MainLoop
	logger  *logger.Logger

	// State is the observable session.
	State *observable.Value[models.SessionState]

	// AuthFailure holds the reason of the last forced logout, for display.
	AuthFailure *observable.Value[error]

	epoch atomic.Uint64

	profileMu     sync.Mutex
	profileFlight *profileFetch
	profileDone   sync.WaitGroup

	ctx context.Context
}

var _ SessionListener = (*SessionManager)(nil)

// profileFetch is one running profile fetch. done is closed once err is set.
type profileFetch struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// NewSessionManager returns a manager in the guest state. Background work
// started by the manager is bound to ctx.
func NewSessionManager(
	ctx context.Context,
	serverAdapter adapter.ServerAdapter,
	tokens CredentialStore,
	cookies CookieCleaner,
	loop *workers.MainLoop,
	log *logger.Logger,
) *SessionManager {
	return &SessionManager{
		adapter:     serverAdapter,
		tokens:      tokens,
		cookies:     cookies,
		loop:        loop,
		logger:      log,
		State:       observable.NewValue(models.GuestSession),
		AuthFailure: observable.NewValue[error](nil),
		ctx:         ctx,
	}
}

// IsLoggedIn reports whether the last published state is logged in.
func (s *SessionManager) IsLoggedIn() bool {
	return s.State.Get().LoggedIn
}

// Initialize restores the session from storage. A stored credential yields a
// logged-in state built from the cached values right away, followed by a
// profile fetch; anything else, including a read error, yields guest.
func (s *SessionManager) Initialize(ctx context.Context) {
	epoch := s.epoch.Load()

	loggedIn, err := s.tokens.IsLoggedIn(ctx)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "SessionManager.Initialize").
			Msg("cannot read stored session, starting as guest")
	}
	if err != nil || !loggedIn {
		s.publish(epoch, models.GuestSession)
		return
	}

	s.publish(epoch, models.LoggedInSession(s.cachedUserInfo(), models.ProfileCached))
	s.startHydration()
}

// Login authenticates, stores the credential and publishes the logged-in
// state from the login response. The full profile is then fetched in the
// background.
func (s *SessionManager) Login(ctx context.Context, username, password string) (models.LoginResult, error) {
	result, err := s.adapter.Login(ctx, username, password)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login: %w", err)
	}

	cred := models.Credential{
		Token:    result.Token,
		UserID:   result.UserIDString(),
		Username: username,
		Password: password,
	}
	if err = s.tokens.Save(ctx, cred); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrSavingCredential, err)
	}

	s.OnLoginSuccess(result)
	s.startHydration()

	return result, nil
}

// OnLoginSuccess implements [LoginObserver]. It publishes the logged-in state
// without waiting for a profile fetch.
func (s *SessionManager) OnLoginSuccess(result models.LoginResult) {
	s.publish(s.epoch.Load(), models.LoggedInSession(models.UserInfoFromLogin(result), models.ProfileLogin))
}

// RefreshUserInfo fetches the profile in the background when logged in.
// Overlapping calls collapse into one fetch.
func (s *SessionManager) RefreshUserInfo() {
	if !s.IsLoggedIn() {
		return
	}
	s.startHydration()
}

// HydrateProfile fetches the profile in the calling goroutine. When a fetch
// is already running it waits for that one and returns its outcome.
func (s *SessionManager) HydrateProfile(ctx context.Context) error {
	f, fetchCtx, ok := s.beginProfileFetch(ctx)
	if !ok {
		select {
		case <-f.done:
			return f.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	err := s.hydrate(fetchCtx)
	s.endProfileFetch(f, err)
	return err
}

// UpdateUserInfo replaces the user info while logged in.
func (s *SessionManager) UpdateUserInfo(info *models.UserInfo) {
	epoch := s.epoch.Load()
	s.loop.Post(func() {
		if s.epoch.Load() != epoch || !s.State.Get().LoggedIn {
			return
		}
		s.State.Set(models.LoggedInSession(info, models.ProfileHydrated))
	})
}

// Logout ends the session. The remote call is best effort: local
// credentials and cookies are cleared and the guest state is published
// whatever its outcome. The remote error is returned for reporting only.
func (s *SessionManager) Logout(ctx context.Context) error {
	remoteErr := s.adapter.Logout(adapter.WithoutRefresh(ctx))
	if remoteErr != nil {
		s.logger.Warn().Err(remoteErr).
			Str("func", "SessionManager.Logout").
			Msg("remote logout failed, logging out locally")
	}

	localErr := s.clearLocal(ctx)
	s.toGuest()

	return errors.Join(remoteErr, localErr)
}

// ForceLogout ends the session locally, without contacting the server.
func (s *SessionManager) ForceLogout() {
	s.toGuest()
	s.loop.Post(func() {
		s.AuthFailure.Set(ErrSessionExpired)
	})

	if err := s.clearLocal(s.ctx); err != nil {
		s.logger.Err(err).
			Str("func", "SessionManager.ForceLogout").
			Msg("error clearing local session")
	}
}

// OnUnauthorized implements [AuthFailureListener].
func (s *SessionManager) OnUnauthorized() {
	s.ForceLogout()
}

// Wait blocks until background profile fetches have returned.
func (s *SessionManager) Wait() {
	s.profileDone.Wait()
}

func (s *SessionManager) toGuest() {
	epoch := s.epoch.Add(1)
	s.cancelProfileFetch()
	s.publish(epoch, models.GuestSession)
}

func (s *SessionManager) clearLocal(ctx context.Context) error {
	var errs []error
	if err := s.tokens.Clear(ctx); err != nil {
		errs = append(errs, fmt.Errorf("clear credential: %w", err))
	}
	if err := s.cookies.ClearAllCookies(ctx); err != nil {
		errs = append(errs, fmt.Errorf("clear cookies: %w", err))
	}
	return errors.Join(errs...)
}

// publish sets state on the main loop unless the epoch moved on.
func (s *SessionManager) publish(epoch uint64, state models.SessionState) {
	s.loop.Post(func() {
		if s.epoch.Load() != epoch {
			return
		}
		s.State.Set(state)
	})
}

func (s *SessionManager) startHydration() {
	f, ctx, ok := s.beginProfileFetch(s.ctx)
	if !ok {
		return
	}

	s.profileDone.Add(1)
	go func() {
		defer s.profileDone.Done()
		s.endProfileFetch(f, s.hydrate(ctx))
	}()
}

// hydrate fetches the profile. Success upgrades the user info, failure
// degrades it to none; neither changes the logged-in flag.
func (s *SessionManager) hydrate(ctx context.Context) error {
	epoch := s.epoch.Load()

	info, err := s.adapter.UserInfo(ctx)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "SessionManager.hydrate").
			Msg("profile fetch failed")
	}

	s.loop.Post(func() {
		if s.epoch.Load() != epoch || !s.State.Get().LoggedIn {
			return
		}
		if err != nil {
			s.State.Set(models.LoggedInSession(nil, models.ProfileNone))
			return
		}
		s.State.Set(models.LoggedInSession(&info, models.ProfileHydrated))
	})

	return err
}

// beginProfileFetch starts a fetch bound to parent. ok is false when a fetch
// is already running; f is then that fetch.
func (s *SessionManager) beginProfileFetch(parent context.Context) (f *profileFetch, ctx context.Context, ok bool) {
	s.profileMu.Lock()
	defer s.profileMu.Unlock()

	if s.profileFlight != nil {
		return s.profileFlight, nil, false
	}

	ctx, cancel := context.WithCancel(parent)
	s.profileFlight = &profileFetch{cancel: cancel, done: make(chan struct{})}
	return s.profileFlight, ctx, true
}

func (s *SessionManager) endProfileFetch(f *profileFetch, err error) {
	s.profileMu.Lock()
	defer s.profileMu.Unlock()

	f.cancel()
	f.err = err
	close(f.done)

	if s.profileFlight == f {
		s.profileFlight = nil
	}
}

// cancelProfileFetch abandons the running fetch so that a new session can
// start its own. Callers waiting on it still get its outcome.
func (s *SessionManager) cancelProfileFetch() {
	s.profileMu.Lock()
	defer s.profileMu.Unlock()

	if s.profileFlight != nil {
		s.profileFlight.cancel()
		s.profileFlight = nil
	}
}

func (s *SessionManager) cachedUserInfo() *models.UserInfo {
	cred := s.tokens.PeekCredential()
	id, _ := strconv.ParseInt(cred.UserID, 10, 64)

	return models.UserInfoFromLogin(models.LoginResult{
		ID:       id,
		Username: cred.Username,
		Token:    cred.Token,
	})
}

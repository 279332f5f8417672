package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/mock"
	"github.com/MKhiriev/go-feed-client/internal/workers"
	"github.com/MKhiriev/go-feed-client/models"
)

func startLoop(t *testing.T) *workers.MainLoop {
	t.Helper()
	loop := workers.NewMainLoop(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = loop.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-loop.Done()
	})
	return loop
}

// newTestSession — builds a SessionManager on mocks with a running main loop
func newTestSession(t *testing.T, ctrl *gomock.Controller) (
	*SessionManager,
	*mock.MockServerAdapter,
	*mock.MockCredentialStore,
	*mock.MockCookieCleaner,
	*workers.MainLoop,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockTokens := mock.NewMockCredentialStore(ctrl)
	mockCookies := mock.NewMockCookieCleaner(ctrl)
	loop := startLoop(t)

	s := NewSessionManager(context.Background(), mockAdapter, mockTokens, mockCookies, loop, logger.Nop())
	t.Cleanup(s.Wait)

	return s, mockAdapter, mockTokens, mockCookies, loop
}

// settle waits for background fetches and everything they posted.
func settle(t *testing.T, s *SessionManager, loop *workers.MainLoop) {
	t.Helper()
	s.Wait()
	require.NoError(t, loop.Sync(context.Background(), func() {}))
}

func recordStates(t *testing.T, s *SessionManager, loop *workers.MainLoop) func() []models.SessionState {
	t.Helper()
	var states []models.SessionState
	require.NoError(t, loop.Sync(context.Background(), func() {
		s.State.Observe(func(v models.SessionState) { states = append(states, v) })
	}))
	return func() []models.SessionState {
		var out []models.SessionState
		require.NoError(t, loop.Sync(context.Background(), func() {
			out = append(out, states...)
		}))
		return out
	}
}

var (
	aliceLogin = models.LoginResult{ID: 7, Username: "alice", Nickname: "Alice", Token: "T1"}
	aliceCred  = models.Credential{Token: "T1", UserID: "7", Username: "alice", Password: "pw1"}
	aliceInfo  = models.UserInfo{
		User: models.LoginResult{ID: 7, Username: "alice", Nickname: "Alice"},
		Coin: models.CoinInfo{CoinCount: 120, Level: 3},
	}
)

// ── Initialize ───────────────────────────────────────────────────────────────

func TestSessionManager_Initialize_NoCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, mockTokens, _, loop := newTestSession(t, ctrl)

	mockTokens.EXPECT().IsLoggedIn(gomock.Any()).Return(false, nil)

	s.Initialize(context.Background())
	settle(t, s, loop)

	assert.Equal(t, models.GuestSession, s.State.Get())
	assert.False(t, s.IsLoggedIn())
}

func TestSessionManager_Initialize_ReadErrorIsGuest(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, mockTokens, _, loop := newTestSession(t, ctrl)

	mockTokens.EXPECT().IsLoggedIn(gomock.Any()).Return(false, errors.New("disk gone"))

	s.Initialize(context.Background())
	settle(t, s, loop)

	assert.False(t, s.IsLoggedIn())
}

func TestSessionManager_Initialize_CachedThenHydrated(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, mockTokens, _, loop := newTestSession(t, ctrl)
	states := recordStates(t, s, loop)

	release := make(chan struct{})
	mockTokens.EXPECT().IsLoggedIn(gomock.Any()).Return(true, nil)
	mockTokens.EXPECT().PeekCredential().Return(aliceCred)
	mockAdapter.EXPECT().UserInfo(gomock.Any()).DoAndReturn(func(context.Context) (models.UserInfo, error) {
		<-release
		return aliceInfo, nil
	})

	s.Initialize(context.Background())
	require.NoError(t, loop.Sync(context.Background(), func() {}))

	cached := s.State.Get()
	assert.True(t, cached.LoggedIn)
	assert.Equal(t, models.ProfileCached, cached.Profile)
	require.NotNil(t, cached.UserInfo)
	assert.Equal(t, int64(7), cached.UserInfo.User.ID)
	assert.Equal(t, "alice", cached.UserInfo.User.Username)

	close(release)
	settle(t, s, loop)

	got := states()
	require.Len(t, got, 3)
	assert.Equal(t, models.GuestSession, got[0])
	assert.Equal(t, models.ProfileCached, got[1].Profile)
	assert.Equal(t, models.ProfileHydrated, got[2].Profile)
	assert.Equal(t, 120, got[2].UserInfo.Coin.CoinCount)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestSessionManager_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, mockTokens, _, loop := newTestSession(t, ctrl)
	states := recordStates(t, s, loop)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "alice", "pw1").Return(aliceLogin, nil),
		mockTokens.EXPECT().Save(ctx, aliceCred).Return(nil),
		mockAdapter.EXPECT().UserInfo(gomock.Any()).Return(aliceInfo, nil),
	)

	result, err := s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, aliceLogin, result)

	settle(t, s, loop)

	got := states()
	require.Len(t, got, 3)
	assert.Equal(t, models.ProfileLogin, got[1].Profile)
	assert.Equal(t, "Alice", got[1].UserInfo.User.Nickname)
	assert.Equal(t, models.ProfileHydrated, got[2].Profile)
	assert.True(t, s.IsLoggedIn())
}

func TestSessionManager_Login_HydrationFailureKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, mockTokens, _, loop := newTestSession(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), "alice", "pw1").Return(aliceLogin, nil)
	mockTokens.EXPECT().Save(gomock.Any(), aliceCred).Return(nil)
	mockAdapter.EXPECT().UserInfo(gomock.Any()).Return(models.UserInfo{}, errors.New("timeout"))

	_, err := s.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	settle(t, s, loop)

	state := s.State.Get()
	assert.True(t, state.LoggedIn)
	assert.Nil(t, state.UserInfo)
	assert.Equal(t, models.ProfileNone, state.Profile)
}

func TestSessionManager_Login_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, _, _, loop := newTestSession(t, ctrl)

	wrong := errors.New("wrong password")
	mockAdapter.EXPECT().Login(gomock.Any(), "alice", "bad").Return(models.LoginResult{}, wrong)

	_, err := s.Login(context.Background(), "alice", "bad")
	require.ErrorIs(t, err, wrong)

	settle(t, s, loop)
	assert.False(t, s.IsLoggedIn())
}

func TestSessionManager_Login_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, mockTokens, _, loop := newTestSession(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), "alice", "pw1").Return(aliceLogin, nil)
	mockTokens.EXPECT().Save(gomock.Any(), aliceCred).Return(errors.New("disk full"))

	_, err := s.Login(context.Background(), "alice", "pw1")
	require.ErrorIs(t, err, ErrSavingCredential)

	settle(t, s, loop)
	assert.False(t, s.IsLoggedIn())
}

// ── Logout ───────────────────────────────────────────────────────────────────

func loggedIn(t *testing.T, s *SessionManager, loop *workers.MainLoop) {
	t.Helper()
	s.OnLoginSuccess(aliceLogin)
	require.NoError(t, loop.Sync(context.Background(), func() {}))
	require.True(t, s.IsLoggedIn())
}

func TestSessionManager_Logout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, mockTokens, mockCookies, loop := newTestSession(t, ctrl)
	loggedIn(t, s, loop)

	mockAdapter.EXPECT().Logout(gomock.Any()).Return(nil)
	mockTokens.EXPECT().Clear(gomock.Any()).Return(nil)
	mockCookies.EXPECT().ClearAllCookies(gomock.Any()).Return(nil)

	require.NoError(t, s.Logout(context.Background()))
	settle(t, s, loop)

	assert.Equal(t, models.GuestSession, s.State.Get())
	assert.NoError(t, s.AuthFailure.Get(), "a voluntary logout is not an auth failure")
}

func TestSessionManager_Logout_RemoteFailureStillEndsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, mockTokens, mockCookies, loop := newTestSession(t, ctrl)
	loggedIn(t, s, loop)

	remote := errors.New("bad gateway")
	mockAdapter.EXPECT().Logout(gomock.Any()).Return(remote)
	mockTokens.EXPECT().Clear(gomock.Any()).Return(nil)
	mockCookies.EXPECT().ClearAllCookies(gomock.Any()).Return(nil)

	err := s.Logout(context.Background())
	require.ErrorIs(t, err, remote)

	settle(t, s, loop)
	assert.Equal(t, models.GuestSession, s.State.Get())
}

func TestSessionManager_Logout_LocalFailuresAreJoined(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, mockTokens, mockCookies, loop := newTestSession(t, ctrl)
	loggedIn(t, s, loop)

	credErr := errors.New("cred")
	cookieErr := errors.New("cookie")
	mockAdapter.EXPECT().Logout(gomock.Any()).Return(nil)
	mockTokens.EXPECT().Clear(gomock.Any()).Return(credErr)
	mockCookies.EXPECT().ClearAllCookies(gomock.Any()).Return(cookieErr)

	err := s.Logout(context.Background())
	require.ErrorIs(t, err, credErr)
	require.ErrorIs(t, err, cookieErr)

	settle(t, s, loop)
	assert.False(t, s.IsLoggedIn())
}

func TestSessionManager_ForceLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, mockTokens, mockCookies, loop := newTestSession(t, ctrl)
	loggedIn(t, s, loop)

	mockTokens.EXPECT().Clear(gomock.Any()).Return(nil)
	mockCookies.EXPECT().ClearAllCookies(gomock.Any()).Return(nil)

	s.OnUnauthorized()
	settle(t, s, loop)

	assert.Equal(t, models.GuestSession, s.State.Get())
	assert.ErrorIs(t, s.AuthFailure.Get(), ErrSessionExpired)
}

// ── Hydration ────────────────────────────────────────────────────────────────

func TestSessionManager_HydrationAfterLogoutIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, mockTokens, mockCookies, loop := newTestSession(t, ctrl)
	loggedIn(t, s, loop)

	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().UserInfo(gomock.Any()).DoAndReturn(func(context.Context) (models.UserInfo, error) {
		close(started)
		<-release
		return aliceInfo, nil
	})
	mockAdapter.EXPECT().Logout(gomock.Any()).Return(nil)
	mockTokens.EXPECT().Clear(gomock.Any()).Return(nil)
	mockCookies.EXPECT().ClearAllCookies(gomock.Any()).Return(nil)

	s.RefreshUserInfo()
	<-started

	require.NoError(t, s.Logout(context.Background()))
	close(release)
	settle(t, s, loop)

	assert.Equal(t, models.GuestSession, s.State.Get())
}

func TestSessionManager_RefreshUserInfo_GuestDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _, _, loop := newTestSession(t, ctrl)

	s.RefreshUserInfo()
	settle(t, s, loop)

	assert.False(t, s.IsLoggedIn())
}

func TestSessionManager_RefreshUserInfo_Collapses(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, _, _, loop := newTestSession(t, ctrl)
	loggedIn(t, s, loop)

	release := make(chan struct{})
	mockAdapter.EXPECT().UserInfo(gomock.Any()).DoAndReturn(func(context.Context) (models.UserInfo, error) {
		<-release
		return aliceInfo, nil
	}).Times(1)

	s.RefreshUserInfo()
	s.RefreshUserInfo()

	joined := make(chan error, 1)
	go func() { joined <- s.HydrateProfile(context.Background()) }()

	select {
	case err := <-joined:
		t.Fatalf("HydrateProfile returned before the running fetch: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-joined, "joins the running fetch")
	settle(t, s, loop)

	assert.Equal(t, models.ProfileHydrated, s.State.Get().Profile)
}

func TestSessionManager_HydrateProfile_SharesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, _, _, loop := newTestSession(t, ctrl)
	loggedIn(t, s, loop)

	boom := errors.New("boom")
	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().UserInfo(gomock.Any()).DoAndReturn(func(context.Context) (models.UserInfo, error) {
		close(started)
		<-release
		return models.UserInfo{}, boom
	}).Times(1)

	s.RefreshUserInfo()
	<-started

	joined := make(chan error, 1)
	go func() { joined <- s.HydrateProfile(context.Background()) }()
	close(release)

	require.ErrorIs(t, <-joined, boom)
	settle(t, s, loop)
	assert.Equal(t, models.ProfileNone, s.State.Get().Profile)
}

func TestSessionManager_HydrateProfile_JoinerHonoursContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, _, _, loop := newTestSession(t, ctrl)
	loggedIn(t, s, loop)

	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().UserInfo(gomock.Any()).DoAndReturn(func(context.Context) (models.UserInfo, error) {
		close(started)
		<-release
		return aliceInfo, nil
	})

	s.RefreshUserInfo()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.HydrateProfile(ctx), context.Canceled)

	close(release)
	settle(t, s, loop)
}

func TestSessionManager_HydrateProfile_ReturnsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, _, _, loop := newTestSession(t, ctrl)
	loggedIn(t, s, loop)

	boom := errors.New("boom")
	mockAdapter.EXPECT().UserInfo(gomock.Any()).Return(models.UserInfo{}, boom)

	require.ErrorIs(t, s.HydrateProfile(context.Background()), boom)
	settle(t, s, loop)

	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, models.ProfileNone, s.State.Get().Profile)
}

func TestSessionManager_UpdateUserInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _, _, loop := newTestSession(t, ctrl)

	info := aliceInfo
	s.UpdateUserInfo(&info)
	settle(t, s, loop)
	assert.False(t, s.IsLoggedIn(), "ignored for a guest")

	loggedIn(t, s, loop)
	s.UpdateUserInfo(&info)
	settle(t, s, loop)

	require.Eventually(t, func() bool {
		return s.State.Get().Profile == models.ProfileHydrated
	}, time.Second, time.Millisecond)
	assert.Equal(t, &info, s.State.Get().UserInfo)
}

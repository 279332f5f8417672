package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feed-client/internal/backend"
	"github.com/MKhiriev/go-feed-client/internal/config"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/models"
)

type testServer struct {
	router  http.Handler
	backend *backend.Backend
	clock   *clockwork.FakeClock
}

func newTestServer(t *testing.T, status401 bool) *testServer {
	t.Helper()
	cfg := &config.ServerConfig{
		Address:      ":0",
		TokenSignKey: "k",
		TokenTTL:     time.Minute,
		PageSize:     10,
		Status401:    status401,
		Accounts:     []config.Account{{Username: "alice", Password: "pw1"}},
	}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	b := backend.New(cfg, clock, logger.Nop())
	return &testServer{
		router:  NewHandler(b, cfg, clock, logger.Nop()).Init(),
		backend: b,
		clock:   clock,
	}
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) models.Envelope[T] {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var env models.Envelope[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func loginRequest(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func (s *testServer) login(t *testing.T) (models.LoginResult, *http.Cookie) {
	t.Helper()
	rr := s.do(t, loginRequest("alice", "pw1"))
	env := decode[models.LoginResult](t, rr)
	require.True(t, env.OK(), env.ErrorMsg)

	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookieName {
			return env.Data, c
		}
	}
	t.Fatal("no session cookie")
	return models.LoginResult{}, nil
}

func TestRoutes_Login(t *testing.T) {
	s := newTestServer(t, false)

	result, cookie := s.login(t)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, result.Token, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 60, cookie.MaxAge)
}

func TestRoutes_Login_Failures(t *testing.T) {
	s := newTestServer(t, false)

	env := decode[any](t, s.do(t, loginRequest("alice", "wrong")))
	assert.Equal(t, backend.CodeFailed, env.ErrorCode)
	assert.Equal(t, backend.ErrWrongCredentials.Error(), env.ErrorMsg)

	env = decode[any](t, s.do(t, loginRequest("", "")))
	assert.Equal(t, backend.CodeFailed, env.ErrorCode)
	assert.Equal(t, ErrMissingCredentials.Error(), env.ErrorMsg)
}

func TestRoutes_SessionByBearerOrCookie(t *testing.T) {
	s := newTestServer(t, false)
	result, cookie := s.login(t)

	byBearer := httptest.NewRequest(http.MethodGet, "/user/lg/userinfo/json", nil)
	byBearer.Header.Set("Authorization", "Bearer "+result.Token)
	env := decode[models.UserInfo](t, s.do(t, byBearer))
	require.True(t, env.OK())
	assert.Equal(t, "alice", env.Data.User.Username)
	assert.Equal(t, 100, env.Data.Coin.CoinCount)

	byCookie := httptest.NewRequest(http.MethodGet, "/message/lg/readed_list/1/json", nil)
	byCookie.AddCookie(cookie)
	messages := decode[models.PageBean[models.Message]](t, s.do(t, byCookie))
	require.True(t, messages.OK())
	assert.Equal(t, 1, messages.Data.CurPage)
	assert.Len(t, messages.Data.Datas, 10)
}

func TestRoutes_NeedLogin(t *testing.T) {
	s := newTestServer(t, false)

	for _, path := range []string{
		"/user/lg/userinfo/json",
		"/lg/collect/list/0/json",
		"/message/lg/readed_list/1/json",
	} {
		env := decode[any](t, s.do(t, httptest.NewRequest(http.MethodGet, path, nil)))
		assert.Equal(t, backend.CodeNeedLogin, env.ErrorCode, path)
	}
}

func TestRoutes_Status401Mode(t *testing.T) {
	s := newTestServer(t, true)

	rr := s.do(t, httptest.NewRequest(http.MethodGet, "/user/lg/userinfo/json", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRoutes_ExpiredTokenNeedsLogin(t *testing.T) {
	s := newTestServer(t, false)
	result, _ := s.login(t)

	req := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/lg/collect/list/0/json", nil)
		r.Header.Set("Authorization", "Bearer "+result.Token)
		return r
	}

	env := decode[models.PageBean[models.Article]](t, s.do(t, req()))
	require.True(t, env.OK())
	assert.Len(t, env.Data.Datas, 3)

	s.clock.Advance(2 * time.Minute)
	expired := decode[any](t, s.do(t, req()))
	assert.Equal(t, backend.CodeNeedLogin, expired.ErrorCode)
}

func TestRoutes_ExpireSessions(t *testing.T) {
	s := newTestServer(t, false)
	_, cookie := s.login(t)

	env := decode[map[string]int](t, s.do(t, httptest.NewRequest(http.MethodPost, "/stub/expire", nil)))
	assert.Equal(t, 1, env.Data["expired"])

	req := httptest.NewRequest(http.MethodGet, "/user/lg/userinfo/json", nil)
	req.AddCookie(cookie)
	assert.Equal(t, backend.CodeNeedLogin, decode[any](t, s.do(t, req)).ErrorCode)
}

func TestRoutes_Logout(t *testing.T) {
	s := newTestServer(t, false)
	result, _ := s.login(t)

	req := httptest.NewRequest(http.MethodGet, "/user/logout/json", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	rr := s.do(t, req)
	require.True(t, decode[any](t, rr).OK())

	var cleared bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookieName {
			cleared = c.MaxAge < 0
		}
	}
	assert.True(t, cleared)

	_, err := s.backend.Authenticate(result.Token)
	assert.ErrorIs(t, err, backend.ErrNeedLogin)

	// a guest logout succeeds as well
	assert.True(t, decode[any](t, s.do(t, httptest.NewRequest(http.MethodGet, "/user/logout/json", nil))).OK())
}

func TestRoutes_Feeds(t *testing.T) {
	s := newTestServer(t, false)
	result, _ := s.login(t)

	guest := decode[models.PageBean[models.Article]](t, s.do(t, httptest.NewRequest(http.MethodGet, "/article/list/0/json", nil)))
	require.True(t, guest.OK())
	assert.Equal(t, 1, guest.Data.CurPage)
	assert.False(t, guest.Data.Datas[0].Collect)

	req := httptest.NewRequest(http.MethodGet, "/article/list/0/json", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	member := decode[models.PageBean[models.Article]](t, s.do(t, req))
	assert.True(t, member.Data.Datas[0].Collect)

	square := decode[models.PageBean[models.Article]](t, s.do(t, httptest.NewRequest(http.MethodGet, "/user_article/list/1/json", nil)))
	require.True(t, square.OK())
	assert.True(t, square.Data.Over)

	bad := decode[any](t, s.do(t, httptest.NewRequest(http.MethodGet, "/article/list/x/json", nil)))
	assert.Equal(t, backend.CodeFailed, bad.ErrorCode)
	assert.Equal(t, ErrInvalidPathParam.Error(), bad.ErrorMsg)
}

func TestRoutes_CollectAndUncollect(t *testing.T) {
	s := newTestServer(t, false)
	result, _ := s.login(t)

	authed := func(method, path string) *http.Request {
		r := httptest.NewRequest(method, path, nil)
		r.Header.Set("Authorization", "Bearer "+result.Token)
		return r
	}

	require.True(t, decode[any](t, s.do(t, authed(http.MethodPost, "/lg/collect/20/json"))).OK())
	require.True(t, decode[any](t, s.do(t, authed(http.MethodPost, "/lg/uncollect_originId/1/json"))).OK())

	missing := decode[any](t, s.do(t, authed(http.MethodPost, "/lg/collect/999999/json")))
	assert.Equal(t, backend.CodeFailed, missing.ErrorCode)

	info := decode[models.UserInfo](t, s.do(t, authed(http.MethodGet, "/user/lg/userinfo/json")))
	assert.Equal(t, []int64{20, 2, 3}, info.Data.User.CollectIDs)
}

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	s := newTestServer(t, false)

	rr := s.do(t, httptest.NewRequest(http.MethodGet, "/user/login", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

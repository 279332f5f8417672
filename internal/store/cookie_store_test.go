package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/store/storetest"
	"github.com/MKhiriev/go-feed-client/models"
)

var cookieEpoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestCookieStore(t *testing.T) (*PersistentCookieStore, *storetest.CookieRepository, *clockwork.FakeClock) {
	t.Helper()
	repo := storetest.NewCookieRepository()
	clock := clockwork.NewFakeClockAt(cookieEpoch)
	return NewPersistentCookieStore(repo, clock, logger.Nop()), repo, clock
}

func persistentCookie(name string, ttl time.Duration) models.CookieRecord {
	return models.CookieRecord{
		Name:       name,
		Value:      name + "-value",
		Domain:     "www.wanandroid.com",
		Path:       "/",
		ExpiresAt:  cookieEpoch.Add(ttl),
		Persistent: true,
	}
}

func sessionCookie(name string) models.CookieRecord {
	return models.CookieRecord{Name: name, Value: name + "-value", Domain: "www.wanandroid.com", Path: "/"}
}

func cookieNames(records []models.CookieRecord) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names
}

func TestPersistentCookieStore_SaveAndLoad(t *testing.T) {
	s, repo, _ := newTestCookieStore(t)
	ctx := context.Background()

	err := s.SaveFromResponse(ctx, "www.wanandroid.com", []models.CookieRecord{
		persistentCookie("loginUserName", time.Hour),
		sessionCookie("JSESSIONID"),
	})
	require.NoError(t, err)

	got, err := s.LoadForRequest(ctx, "www.wanandroid.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"loginUserName", "JSESSIONID"}, cookieNames(got))

	_, ok := repo.Raw("www.wanandroid.com")
	assert.True(t, ok, "cookies must be written through")
}

func TestPersistentCookieStore_SurvivesRestart(t *testing.T) {
	s, repo, clock := newTestCookieStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFromResponse(ctx, "h", []models.CookieRecord{persistentCookie("a", time.Hour)}))

	restarted := NewPersistentCookieStore(repo, clock, logger.Nop())
	got, err := restarted.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cookieNames(got))
}

func TestPersistentCookieStore_SaveReplacesHostSet(t *testing.T) {
	s, _, _ := newTestCookieStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFromResponse(ctx, "h", []models.CookieRecord{persistentCookie("a", time.Hour), persistentCookie("b", time.Hour)}))
	require.NoError(t, s.SaveFromResponse(ctx, "h", []models.CookieRecord{persistentCookie("c", time.Hour)}))

	got, err := s.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, cookieNames(got))
}

func TestPersistentCookieStore_EmptySaveIsNoop(t *testing.T) {
	s, repo, _ := newTestCookieStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFromResponse(ctx, "h", []models.CookieRecord{persistentCookie("a", time.Hour)}))
	puts := repo.Puts

	require.NoError(t, s.SaveFromResponse(ctx, "h", nil))

	got, err := s.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cookieNames(got))
	assert.Equal(t, puts, repo.Puts)
}

func TestPersistentCookieStore_ExpiredOnWriteDeletesHost(t *testing.T) {
	s, repo, _ := newTestCookieStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFromResponse(ctx, "h", []models.CookieRecord{persistentCookie("a", time.Hour)}))
	require.NoError(t, s.SaveFromResponse(ctx, "h", []models.CookieRecord{persistentCookie("a", -time.Second)}))

	_, ok := repo.Raw("h")
	assert.False(t, ok)

	got, err := s.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPersistentCookieStore_LoadPrunesAndPersists(t *testing.T) {
	s, repo, clock := newTestCookieStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFromResponse(ctx, "h", []models.CookieRecord{
		persistentCookie("short", time.Minute),
		persistentCookie("long", time.Hour),
		sessionCookie("session"),
	}))

	clock.Advance(2 * time.Minute)

	got, err := s.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, []string{"long", "session"}, cookieNames(got))

	// the pruned set was persisted, so a fresh store sees it too
	raw, ok := repo.Raw("h")
	require.True(t, ok)
	var persisted []models.CookieRecord
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, []string{"long", "session"}, cookieNames(persisted))
}

func TestPersistentCookieStore_ExpiryBoundaryIsExclusive(t *testing.T) {
	s, _, clock := newTestCookieStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFromResponse(ctx, "h", []models.CookieRecord{persistentCookie("a", time.Minute)}))
	clock.Advance(time.Minute)

	got, err := s.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	assert.Empty(t, got, "a cookie expiring exactly now is expired")
}

func TestPersistentCookieStore_CorruptedPayloadResets(t *testing.T) {
	s, repo, _ := newTestCookieStore(t)
	ctx := context.Background()

	repo.SetRaw("h", []byte("{not json"))

	got, err := s.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, ok := repo.Raw("h")
	assert.False(t, ok, "corrupted entry must be removed")

	// the host keeps working afterwards
	require.NoError(t, s.SaveFromResponse(ctx, "h", []models.CookieRecord{persistentCookie("a", time.Hour)}))
	got, err = s.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPersistentCookieStore_ClearAll(t *testing.T) {
	s, repo, _ := newTestCookieStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFromResponse(ctx, "a.example.com", []models.CookieRecord{persistentCookie("a", time.Hour)}))
	require.NoError(t, s.SaveFromResponse(ctx, "b.example.com", []models.CookieRecord{persistentCookie("b", time.Hour)}))

	require.NoError(t, s.ClearAllCookies(ctx))

	hosts, err := repo.ListHosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, hosts)

	got, err := s.LoadForRequest(ctx, "a.example.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPersistentCookieStore_ClearForDomain(t *testing.T) {
	s, repo, _ := newTestCookieStore(t)
	ctx := context.Background()

	for _, host := range []string{"example.com", "www.example.com", "notexample.com", "other.org"} {
		require.NoError(t, s.SaveFromResponse(ctx, host, []models.CookieRecord{persistentCookie("c", time.Hour)}))
	}

	require.NoError(t, s.ClearCookiesForDomain(ctx, ".example.com"))

	hosts, err := repo.ListHosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"notexample.com", "other.org"}, hosts)

	got, err := s.LoadForRequest(ctx, "www.example.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPersistentCookieStore_PruneExpired(t *testing.T) {
	s, repo, clock := newTestCookieStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFromResponse(ctx, "a", []models.CookieRecord{persistentCookie("x", time.Minute), persistentCookie("y", time.Hour)}))
	require.NoError(t, s.SaveFromResponse(ctx, "b", []models.CookieRecord{persistentCookie("z", time.Minute)}))

	clock.Advance(5 * time.Minute)

	removed, err := s.PruneExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	hosts, err := repo.ListHosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, hosts)
}

func TestPersistentCookieStore_RepositoryError(t *testing.T) {
	s, repo, _ := newTestCookieStore(t)
	repo.Err = errors.New("disk full")

	_, err := s.LoadForRequest(context.Background(), "h")
	assert.ErrorIs(t, err, repo.Err)

	err = s.SaveFromResponse(context.Background(), "h", []models.CookieRecord{persistentCookie("a", time.Hour)})
	assert.ErrorIs(t, err, repo.Err)
}

func TestPersistentCookieStore_ConcurrentWrites(t *testing.T) {
	s, _, _ := newTestCookieStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SaveFromResponse(ctx, "h", []models.CookieRecord{persistentCookie("a", time.Hour)})
			_, _ = s.LoadForRequest(ctx, "h")
		}()
	}
	wg.Wait()

	got, err := s.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cookieNames(got))
}

func TestPersistentCookieStore_LoadReturnsCopy(t *testing.T) {
	s, _, _ := newTestCookieStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFromResponse(ctx, "h", []models.CookieRecord{persistentCookie("a", time.Hour)}))

	got, err := s.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	got[0].Value = "tampered"

	again, err := s.LoadForRequest(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, "a-value", again[0].Value)
}

// blockingCookieRepository holds PutHost until release is closed.
type blockingCookieRepository struct {
	*storetest.CookieRepository
	entered chan struct{}
	release chan struct{}
}

func (r *blockingCookieRepository) PutHost(ctx context.Context, host string, payload []byte) error {
	r.entered <- struct{}{}
	<-r.release
	return r.CookieRepository.PutHost(ctx, host, payload)
}

func TestPersistentCookieStore_ClearWaitsForInFlightWrite(t *testing.T) {
	tests := []struct {
		name  string
		clear func(ctx context.Context, s *PersistentCookieStore) error
	}{
		{
			name:  "clear all",
			clear: func(ctx context.Context, s *PersistentCookieStore) error { return s.ClearAllCookies(ctx) },
		},
		{
			name: "clear domain",
			clear: func(ctx context.Context, s *PersistentCookieStore) error {
				return s.ClearCookiesForDomain(ctx, "wanandroid.com")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := &blockingCookieRepository{
				CookieRepository: storetest.NewCookieRepository(),
				entered:          make(chan struct{}),
				release:          make(chan struct{}),
			}
			s := NewPersistentCookieStore(repo, clockwork.NewFakeClockAt(cookieEpoch), logger.Nop())

			saved := make(chan error, 1)
			go func() {
				saved <- s.SaveFromResponse(ctx, "www.wanandroid.com", []models.CookieRecord{persistentCookie("token_pass", time.Hour)})
			}()
			<-repo.entered

			cleared := make(chan error, 1)
			go func() { cleared <- tt.clear(ctx, s) }()

			select {
			case err := <-cleared:
				t.Fatalf("clear returned while a write was in flight: %v", err)
			case <-time.After(50 * time.Millisecond):
			}

			close(repo.release)
			require.NoError(t, <-saved)
			require.NoError(t, <-cleared)

			got, err := s.LoadForRequest(ctx, "www.wanandroid.com")
			require.NoError(t, err)
			assert.Empty(t, got)

			hosts, err := repo.ListHosts(ctx)
			require.NoError(t, err)
			assert.Empty(t, hosts)
		})
	}
}

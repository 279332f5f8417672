package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/store/storetest"
	"github.com/MKhiriev/go-feed-client/models"
)

var aliceCredential = models.Credential{Token: "T1", UserID: "42", Username: "alice", Password: "pw1"}

func newTestTokenStore(t *testing.T) (*AuthTokenStore, *storetest.CredentialRepository) {
	t.Helper()
	repo := storetest.NewCredentialRepository()
	return NewAuthTokenStore(repo, storetest.KeyChain{}, logger.Nop()), repo
}

func TestAuthTokenStore_SaveAndPeek(t *testing.T) {
	s, repo := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, aliceCredential))

	assert.Equal(t, "T1", s.PeekToken())
	assert.Equal(t, "42", s.PeekUserID())
	assert.Equal(t, "alice", s.PeekUsername())
	assert.Equal(t, "pw1", s.PeekPassword())
	assert.Equal(t, 4, repo.Len())

	loggedIn, err := s.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)
}

func TestAuthTokenStore_ValuesAreSealed(t *testing.T) {
	s, repo := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, aliceCredential))

	stored, err := repo.GetAll(ctx, []string{KeyPassword})
	require.NoError(t, err)
	assert.Equal(t, "sealed:pw1", string(stored[KeyPassword]))
}

func TestAuthTokenStore_SaveRejectsIncomplete(t *testing.T) {
	s, repo := newTestTokenStore(t)

	c := aliceCredential
	c.Password = ""

	err := s.Save(context.Background(), c)
	assert.ErrorIs(t, err, ErrIncompleteCredential)
	assert.Zero(t, repo.Len())
	assert.Empty(t, s.PeekToken())
}

func TestAuthTokenStore_Clear(t *testing.T) {
	s, repo := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, aliceCredential))
	require.NoError(t, s.Clear(ctx))

	assert.Zero(t, repo.Len())
	assert.Equal(t, models.Credential{}, s.PeekCredential())

	loggedIn, err := s.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

func TestAuthTokenStore_LoadAfterRestart(t *testing.T) {
	s, repo := newTestTokenStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, aliceCredential))

	restarted := NewAuthTokenStore(repo, storetest.KeyChain{}, logger.Nop())
	assert.Empty(t, restarted.PeekToken(), "snapshot is empty before Load")

	require.NoError(t, restarted.Load(ctx))
	assert.Equal(t, aliceCredential, restarted.PeekCredential())
}

func TestAuthTokenStore_PartialDataResets(t *testing.T) {
	s, repo := newTestTokenStore(t)
	ctx := context.Background()

	repo.SetRaw(KeyAuthToken, []byte("sealed:T1"))
	repo.SetRaw(KeyUserID, []byte("sealed:42"))

	require.NoError(t, s.Load(ctx))

	assert.Equal(t, models.Credential{}, s.PeekCredential())
	assert.Zero(t, repo.Len())
}

func TestAuthTokenStore_UndecryptableResets(t *testing.T) {
	s, repo := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, aliceCredential))
	repo.SetRaw(KeyPassword, []byte("garbage"))

	c, err := s.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Credential{}, c)
	assert.Empty(t, s.PeekToken())
	assert.Zero(t, repo.Len())
}

func TestAuthTokenStore_RepositoryErrorKeepsSnapshot(t *testing.T) {
	s, repo := newTestTokenStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, aliceCredential))

	repo.Err = errors.New("disk I/O")

	err := s.Save(ctx, models.Credential{Token: "T2", UserID: "42", Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, repo.Err)
	assert.Equal(t, "T1", s.PeekToken(), "a failed write must not change the snapshot")

	err = s.Clear(ctx)
	assert.Error(t, err)
	assert.Equal(t, "T1", s.PeekToken())

	_, err = s.IsLoggedIn(ctx)
	assert.Error(t, err)
}

func TestAuthTokenStore_Generation(t *testing.T) {
	s, _ := newTestTokenStore(t)
	ctx := context.Background()

	require.Zero(t, s.Generation())

	require.NoError(t, s.Save(ctx, aliceCredential))
	assert.Equal(t, uint64(1), s.Generation())

	_, err := s.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Generation(), "reads must not bump the generation")

	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, uint64(2), s.Generation())
}

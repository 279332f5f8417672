package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feed-client/internal/backend"
	"github.com/MKhiriev/go-feed-client/internal/config"
	"github.com/MKhiriev/go-feed-client/internal/handler"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/models"
)

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := &config.ServerConfig{
		Address:      "127.0.0.1:0",
		TokenSignKey: "k",
		TokenTTL:     time.Minute,
		PageSize:     10,
		Accounts:     []config.Account{{Username: "alice", Password: "pw1"}},
	}
	clock := clockwork.NewRealClock()
	handlers, err := handler.NewHandlers(backend.New(cfg, clock, logger.Nop()), cfg, clock, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx)
		close(done)
	}()

	resp, err := http.Get("http://" + srv.Addr() + "/article/list/0/json")
	require.NoError(t, err)
	var env models.Envelope[models.PageBean[models.Article]]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.NoError(t, resp.Body.Close())
	assert.True(t, env.OK())
	assert.Len(t, env.Data.Datas, 10)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, &config.ServerConfig{Address: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

package handler

import (
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-feed-client/internal/backend"
	"github.com/MKhiriev/go-feed-client/internal/config"
	"github.com/MKhiriev/go-feed-client/internal/handler/http"
	"github.com/MKhiriev/go-feed-client/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(b *backend.Backend, cfg *config.ServerConfig, clock clockwork.Clock, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if b == nil || cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(b, cfg, clock, logger),
	}, nil
}

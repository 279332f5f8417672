package http

import (
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-feed-client/internal/backend"
	"github.com/MKhiriev/go-feed-client/internal/config"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/utils"
)

type Handler struct {
	backend *backend.Backend

	status401 bool
	tokenTTL  int

	ids    *utils.UUIDGenerator
	clock  clockwork.Clock
	logger *logger.Logger
}

func NewHandler(b *backend.Backend, cfg *config.ServerConfig, clock clockwork.Clock, logger *logger.Logger) *Handler {
	logger.Info().Bool("status_401", cfg.Status401).Msg("http handler created")
	return &Handler{
		backend:   b,
		status401: cfg.Status401,
		tokenTTL:  int(cfg.TokenTTL.Seconds()),
		ids:       utils.NewUUIDGenerator(),
		clock:     clock,
		logger:    logger,
	}
}

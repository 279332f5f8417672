package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/workers"
)

// NewCookiePruneJob returns a worker that sweeps expired cookies every
// interval.
func NewCookiePruneJob(cookies CookieCleaner, interval time.Duration, clock clockwork.Clock, log *logger.Logger) *workers.Periodic {
	return workers.NewPeriodic("cookie-prune", interval, clock, func(ctx context.Context) error {
		removed, err := cookies.PruneExpired(ctx)
		if err != nil {
			return fmt.Errorf("prune cookies: %w", err)
		}
		if removed > 0 {
			log.Debug().Int("removed", removed).Msg("expired cookies pruned")
		}
		return nil
	}, log)
}

// NewProfileRefreshJob returns a worker that re-fetches the user profile
// every interval while a session is active.
func NewProfileRefreshJob(session *SessionManager, interval time.Duration, clock clockwork.Clock, log *logger.Logger) *workers.Periodic {
	return workers.NewPeriodic("profile-refresh", interval, clock, func(ctx context.Context) error {
		if !session.IsLoggedIn() {
			return nil
		}
		return session.HydrateProfile(ctx)
	}, log)
}

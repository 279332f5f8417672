package workers

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-feed-client/internal/logger"
)

// Periodic is a [Worker] that calls a job on a ticker.
type Periodic struct {
	name     string
	interval time.Duration
	clock    clockwork.Clock
	job      func(ctx context.Context) error
	logger   *logger.Logger
}

var _ Worker = (*Periodic)(nil)

// NewPeriodic builds a job running every interval. A zero or negative
// interval defaults to 5 minutes.
func NewPeriodic(name string, interval time.Duration, clock clockwork.Clock, job func(ctx context.Context) error, log *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Periodic{
		name:     name,
		interval: interval,
		clock:    clock,
		job:      job,
		logger:   log,
	}
}

// Run implements [Worker]. Job failures are logged and do not stop the
// ticker.
func (p *Periodic) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			if err := p.job(ctx); err != nil {
				p.logger.Err(err).
					Str("func", "Periodic.Run").
					Str("job", p.name).
					Msg("periodic job failed")
			}
		}
	}
}

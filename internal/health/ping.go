package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// Pinger can be implemented by components to expose a specialized health
// check. Ping must return nil when the component is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UpstreamChecker probes one upstream dependency. Startup uses exponential
// backoff so a slow-starting upstream does not flap the service flag, then
// probes settle into the regular interval.
type UpstreamChecker struct {
	name    string
	ping    Pinger
	healthy atomic.Int32
	log     zerolog.Logger
}

func NewUpstreamChecker(name string, p Pinger, log zerolog.Logger) *UpstreamChecker {
	return &UpstreamChecker{name: name, ping: p, log: log}
}

func (c *UpstreamChecker) Name() string { return c.name }

func (c *UpstreamChecker) IsHealthy() bool { return c.healthy.Load() == 1 }

func (c *UpstreamChecker) Start(ctx context.Context, interval time.Duration) {
	probe := func() {
		if err := c.ping.Ping(ctx); err != nil {
			if c.healthy.Swap(0) == 1 {
				c.log.Warn().Err(err).Str("component", c.name).Msg("component unhealthy")
			}
			return
		}
		if c.healthy.Swap(1) == 0 {
			c.log.Info().Str("component", c.name).Msg("component healthy")
		}
	}

	// Initial reachability: retry with backoff, capped so the regular ticker
	// takes over even when the upstream never comes up.
	initial := backoff.NewExponentialBackOff()
	initial.MaxElapsedTime = interval
	_ = backoff.Retry(func() error {
		if err := c.ping.Ping(ctx); err != nil {
			return err
		}
		c.healthy.Store(1)
		return nil
	}, backoff.WithContext(initial, ctx))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}

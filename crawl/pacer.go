package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultDelay is the minimum spacing between consecutive fetches.
const DefaultDelay = 500 * time.Millisecond

// Pacer spaces out requests to the documentation site using a token bucket
// with a burst of 1. The first Wait returns immediately; each later Wait
// blocks until at least the configured delay has passed since the previous
// one.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer that allows one request per delay. A delay of
// zero or less disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Pacer{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

package search

import (
	"context"
	"sync"
	"time"
)

// rateLimiter enforces a minimum delay between requests of one engine
// instance. SearXNG public instances in particular ban clients that hammer
// them.
type rateLimiter struct {
	mu       sync.Mutex
	minDelay time.Duration
	last     time.Time
}

func newRateLimiter(minDelay time.Duration) *rateLimiter {
	return &rateLimiter{minDelay: minDelay}
}

// wait blocks until the minimum delay since the previous request has
// elapsed, or ctx is done.
func (r *rateLimiter) wait(ctx context.Context) error {
	if r == nil || r.minDelay <= 0 {
		return nil
	}
	r.mu.Lock()
	now := time.Now()
	sleep := r.minDelay - now.Sub(r.last)
	if sleep < 0 {
		sleep = 0
	}
	r.last = now.Add(sleep)
	r.mu.Unlock()

	if sleep == 0 {
		return nil
	}
	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

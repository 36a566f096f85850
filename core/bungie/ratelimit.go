package bungie

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests proactively with a token bucket and
// reactively when the API asks callers to back off.
type RateLimiter struct {
	mu      sync.Mutex
	bucket  *rate.Limiter
	resumes time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second.
// A non-positive rps disables proactive throttling.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{bucket: rate.NewLimiter(limit, burst)}
}

// Wait blocks until a request may be sent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	resumes := r.resumes
	r.mu.Unlock()

	if wait := time.Until(resumes); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil
}

// Throttle delays every following request by the given number of seconds.
func (r *RateLimiter) Throttle(seconds int) {
	if seconds <= 0 {
		return
	}
	until := time.Now().Add(time.Duration(seconds) * time.Second)
	r.mu.Lock()
	if until.After(r.resumes) {
		r.resumes = until
	}
	r.mu.Unlock()
}

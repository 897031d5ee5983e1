// Package netutil provides request pacing for outbound API calls.
package netutil

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// QuotaLimiter paces outbound calls against a per-minute request quota
// using a token bucket. The CoinGecko free tier allows roughly 50 calls
// per minute; exceeding it earns HTTP 429s, so callers block in Wait
// rather than fail fast.
type QuotaLimiter struct {
	limiter *rate.Limiter
}

// NewQuotaLimiter creates a limiter allowing perMinute requests per minute
// with a small burst so interactive one-shot commands never stall. A
// non-positive quota falls back to the free-tier default of 50.
func NewQuotaLimiter(perMinute int) *QuotaLimiter {
	if perMinute <= 0 {
		perMinute = 50
	}
	return &QuotaLimiter{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 5),
	}
}

// Wait blocks until the next request is allowed or the context is cancelled.
func (q *QuotaLimiter) Wait(ctx context.Context) error {
	return q.limiter.Wait(ctx)
}

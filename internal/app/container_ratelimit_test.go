package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"service-freight-match/internal/config"
	"service-freight-match/internal/http/middleware/ratelimit"
)

func TestNewRateLimiter_Disabled_ReturnsNop(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{RateLimit: config.RateLimit{Enabled: false}}
	lim := newRateLimiter(cfg, newRateLimitClock())
	require.IsType(t, ratelimit.NopLimiter{}, lim)
}

func TestNewRateLimiter_Enabled_ReturnsTokenBucket(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{RateLimit: config.RateLimit{
		Enabled:    true,
		Rate:       10,
		Burst:      20,
		TTL:        time.Minute,
		MaxBuckets: 100,
	}}
	lim := newRateLimiter(cfg, newRateLimitClock())
	require.IsType(t, &ratelimit.TokenBucketLimiter{}, lim)
}

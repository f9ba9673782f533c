package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"parcel-server/internal/config"
	"parcel-server/internal/http/middleware/ratelimit"
	"parcel-server/internal/logx"
	"parcel-server/internal/metrics"
)

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitMiddleware(logger logx.Logger, limiter ratelimit.Limiter) *ratelimit.Middleware {
	counter := metrics.NewRateLimitExceededTotal()
	prometheus.MustRegister(counter)
	return ratelimit.New(logger, counter, limiter)
}

package middleware

import (
	"restaurant-ordering-assistant/config"
	"restaurant-ordering-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the shared middleware set. A disabled or zero rate limit turns throttling off.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.PerMin > 0 {
		mw.limiter = newRateLimiter(cfg.PerMin)
	}
	return mw
}

package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"restaurant-ordering-assistant/pkg/response"
)

const (
	maxTrackedSessions = 10000
	limiterTTL         = 10 * time.Minute
	maxPeekBytes       = 64 << 10
)

// RateLimit throttles requests per session id, taken from the JSON body's sessionId
// and falling back to the client IP.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		key := sessionKey(c)
		if err := mw.limiter.Allow(key); err != nil {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// sessionKey reads the session id from the body and restores the body for the handler.
func sessionKey(c *gin.Context) string {
	if c.Request.Body == nil {
		return "ip:" + c.ClientIP()
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPeekBytes))
	if err != nil {
		return "ip:" + c.ClientIP()
	}
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), c.Request.Body))

	var peek struct {
		SessionID string `json:"sessionId"`
	}
	if json.Unmarshal(body, &peek) != nil || peek.SessionID == "" {
		return "ip:" + c.ClientIP()
	}
	return "session:" + peek.SessionID
}

// rateLimiter keeps one token bucket per key and forgets idle keys
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			maxTrackedSessions,
			nil,
			limiterTTL,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}

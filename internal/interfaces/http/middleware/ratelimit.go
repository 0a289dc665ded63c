package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/infrastructure/ratelimit"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/utils"
)

// RateLimiter throttles clients by IP. When the limiter backend is
// unreachable requests are let through.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	enabled bool
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, enabled bool, logger logger.Interface) *RateLimiter {
	return &RateLimiter{limiter: limiter, enabled: enabled, logger: logger}
}

// Limit applies limits to the client IP within scope.
func (rl *RateLimiter) Limit(scope string, limits ratelimit.Limits) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled || rl.limiter == nil {
			c.Next()
			return
		}

		key := scope + ":ip:" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, limits)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}

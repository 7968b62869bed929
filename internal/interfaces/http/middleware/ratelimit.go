package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus/internal/infrastructure/ratelimit"
	"nexus/internal/shared/utils"
)

// RateLimitMiddleware enforces a per-IP request limit. When the limiter
// backend is unavailable the request passes through rather than taking the
// whole API down with it.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.Config
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, requestsPerMinute int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		config:  ratelimit.Config{RequestsPerMinute: requestsPerMinute},
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s", c.ClientIP())

		allowed, err := m.limiter.Allow(key, m.config)
		if err != nil {
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

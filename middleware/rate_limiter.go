package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	gatehouse_errors "github.com/headwall-io/gatehouse/errors"
	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/ratelimit"
	"github.com/headwall-io/gatehouse/util"
)

// RateLimiter throttles a mutating operation per principal using the
// sliding-window limiter. Unauthenticated requests fall back to the client
// IP as the window key. Whether an unavailable limiter store blocks the
// request is the limiter's policy, not a branch here.
func RateLimiter(limiter *ratelimit.Limiter, operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := util.GetPrincipalIDFromContext(c)
		if !ok {
			key = c.ClientIP()
		}

		allowed, err := limiter.Allow(c.Request.Context(), key, operation)
		if err != nil {
			logger.Error("Rate limiting failed", zap.Error(err), zap.String("key", key))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "rate limiting unavailable"})
			c.Abort()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Max()))
		c.Header("X-RateLimit-Window", limiter.Window().String())

		if !allowed {
			limitErr := &gatehouse_errors.RateLimitedError{
				Operation:  operation,
				RetryAfter: limiter.Window(),
			}
			logger.Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.String("operation", operation),
				zap.Int("limit", limiter.Max()))
			c.Error(limitErr)
			c.Header("Retry-After", strconv.Itoa(int(limitErr.RetryAfter.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": limitErr.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

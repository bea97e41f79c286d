package ratelimit

import (
	"fmt"

	"air-relatorios/internal/apierrors"
	"air-relatorios/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP under scope.
func (s *Service) Middleware(scope string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		key := scope + ":" + observability.GetRealClientIP(c)
		result := s.CheckRateLimit(ctx, key, limit)
		if result.Limit == 0 {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			s.logger.Warn(ctx, "rate limit exceeded",
				observability.Field{Key: "scope", Value: scope},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Too many requests. Please wait a moment and try again."))
			return
		}

		c.Next()
	}
}

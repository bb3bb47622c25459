package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/infrastructure/security"
	"aeronest.backend/internal/interfaces/http/response"
	"aeronest.backend/pkg/logger"
	"go.uber.org/zap"
)

// RateLimit caps requests per client IP. Every request counts as one
// attempt against "<prefix>:<ip>" in the store; a blocked key gets 429
// with a Retry-After header. Store errors let the request through so a
// failing limiter backend never takes the API down with it.
func RateLimit(store security.ThrottleStore, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := prefix + ":" + c.ClientIP()

		allowed, retryAfter, err := store.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn(c.Request.Context(), "rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			response.AbortError(c, domainerrors.TooManyAttempts("Слишком много запросов. Попробуйте позже."))
			return
		}

		if err := store.RecordFailure(c.Request.Context(), key); err != nil {
			logger.Warn(c.Request.Context(), "rate limit record failed", zap.Error(err))
		}
		c.Next()
	}
}

package middleware

import (
	"fmt"
	"strconv"
	"time"

	"child-wallet/internal/core/ports"
	"child-wallet/pkg/apperror"
	"child-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Endpoint groups with their own budget.
const (
	GroupAPI          = "api"
	GroupAuthLogin    = "auth_login"
	GroupAuthRegister = "auth_register"
)

// DefaultRateLimitRules returns the limits per endpoint group. The api
// group takes its budget from configuration.
func DefaultRateLimitRules(requests int64, window time.Duration) map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupAPI:          {Limit: requests, Window: window},
		GroupAuthLogin:    {Limit: 10, Window: time.Minute},
		GroupAuthRegister: {Limit: 5, Window: time.Hour},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store ports.RateLimiter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys authenticated traffic by guardian, the rest by IP.
func extractIdentifier(c *gin.Context) string {
	if addr, ok := Caller(c); ok {
		return addr
	}
	return c.ClientIP()
}

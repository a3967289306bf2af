package middleware

import (
	"net/http"
	"strings"
	"time"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/apperror"
	"child-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID  = "X-Request-ID"
	QueryAccessToken = "access_token"

	// Context keys
	CtxAddress   = "guardian_address"
	CtxRequestID = response.RequestIDKey

	// ParamChildID is the route parameter naming the child wallet.
	ParamChildID = "childID"
)

// RequestID tags every request with an id, reusing the client's when sane.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// JWTAuth validates the bearer token and stores the guardian address
// (the token subject) as the caller of every downstream operation.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxAddress, claims.Address)
		c.Next()
	}
}

// bearerToken reads the Authorization header. Browsers cannot set headers
// on a WebSocket handshake, so upgrades may pass access_token instead.
func bearerToken(c *gin.Context) (string, bool) {
	if tok, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok && tok != "" {
		return tok, true
	}
	if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
		if tok := c.Query(QueryAccessToken); tok != "" {
			return tok, true
		}
	}
	return "", false
}

// Caller returns the authenticated guardian address.
func Caller(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxAddress)
	if !ok {
		return "", false
	}
	addr, ok := v.(string)
	return addr, ok && addr != ""
}

// RequireRole lets the request through only when the caller holds a role
// satisfying required on the child named by the route.
func RequireRole(guardianSvc ports.GuardianService, required domain.GuardianRole, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := Caller(c)
		if !ok {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		childID := c.Param(ParamChildID)
		allowed, err := guardianSvc.CheckPermission(c.Request.Context(), childID, caller, required)
		if err != nil {
			log.Error().Err(err).Str("child_id", childID).Msg("permission check failed")
			response.Error(c, err)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, apperror.ErrUnauthorized())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("child_id", c.Param(ParamChildID)).
			Str("request_id", c.GetString(CtxRequestID)).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

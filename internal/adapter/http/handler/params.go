package handler

import (
	"child-wallet/internal/adapter/http/dto"
	"child-wallet/internal/adapter/http/middleware"
	"child-wallet/pkg/apperror"
	"child-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey carries the client's replay key on deposits and payments.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLen = 128

// caller returns the authenticated guardian or writes AUTH_003.
func caller(c *gin.Context) (string, bool) {
	addr, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	return addr, true
}

func childID(c *gin.Context) string {
	return c.Param(middleware.ParamChildID)
}

// bindJSON binds and sanitizes the body, writing REQ_001 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

func idempotencyKey(c *gin.Context) (string, bool) {
	key := c.GetHeader(HeaderIdempotencyKey)
	if len(key) > maxIdempotencyKeyLen {
		response.Error(c, apperror.Validation(HeaderIdempotencyKey+" is too long"))
		return "", false
	}
	return key, true
}

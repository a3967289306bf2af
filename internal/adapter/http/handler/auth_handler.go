package handler

import (
	"child-wallet/internal/adapter/http/dto"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler exchanges guardian credentials for bearer tokens. The token
// subject is the guardian address every wallet operation runs as.
type AuthHandler struct {
	authSvc ports.AuthService
}

func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	cred, err := h.authSvc.Register(c.Request.Context(), ports.RegisterRequest{
		Address:     req.Address,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.RegisterResponse{Address: cred.Address, DisplayName: cred.DisplayName})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, expiry, err := h.authSvc.Login(c.Request.Context(), req.Address, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LoginResponse{Token: token, TokenType: "Bearer", Expiry: expiry.Unix()})
}

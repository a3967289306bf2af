package handler

import (
	"child-wallet/internal/adapter/http/dto"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles child profile, deposit and emergency endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// CreateChild handles POST /api/v1/children.
func (h *WalletHandler) CreateChild(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreateChildRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.walletSvc.CreateChildProfile(c.Request.Context(), ports.CreateChildRequest{
		Caller:       addr,
		Name:         req.Name,
		BirthDate:    req.BirthDate,
		TargetAge:    req.TargetAge,
		TargetAmount: req.TargetAmount,
		OwnerName:    req.OwnerName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, profile)
}

// GetChild handles GET /api/v1/children/:childID.
func (h *WalletHandler) GetChild(c *gin.Context) {
	profile, err := h.walletSvc.GetChildProfile(c.Request.Context(), childID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}

// GetBalance handles GET /api/v1/children/:childID/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	id := childID(c)
	balance, err := h.walletSvc.GetBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{ChildID: id, Balance: balance})
}

// Invest handles POST /api/v1/children/:childID/investments.
func (h *WalletHandler) Invest(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	var req dto.InvestRequest
	if !bindJSON(c, &req) {
		return
	}

	inv, err := h.walletSvc.Invest(c.Request.Context(), ports.InvestRequest{
		ChildID:        childID(c),
		Caller:         addr,
		Amount:         req.Amount,
		IdempotencyKey: key,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, inv)
}

// ListInvestments handles GET /api/v1/children/:childID/investments.
func (h *WalletHandler) ListInvestments(c *gin.Context) {
	history, err := h.walletSvc.GetInvestmentHistory(c.Request.Context(), childID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, history)
}

// GetEmergencyPause handles GET /api/v1/children/:childID/emergency-pause.
func (h *WalletHandler) GetEmergencyPause(c *gin.Context) {
	id := childID(c)
	paused, err := h.walletSvc.IsEmergencyPaused(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.EmergencyPauseResponse{ChildID: id, Paused: paused})
}

// EngageEmergencyPause handles POST /api/v1/children/:childID/emergency-pause.
func (h *WalletHandler) EngageEmergencyPause(c *gin.Context) {
	h.setEmergencyPause(c, true)
}

// LiftEmergencyPause handles DELETE /api/v1/children/:childID/emergency-pause.
func (h *WalletHandler) LiftEmergencyPause(c *gin.Context) {
	h.setEmergencyPause(c, false)
}

func (h *WalletHandler) setEmergencyPause(c *gin.Context, paused bool) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	id := childID(c)
	var err error
	if paused {
		err = h.walletSvc.EmergencyPause(c.Request.Context(), id, addr)
	} else {
		err = h.walletSvc.LiftEmergencyPause(c.Request.Context(), id, addr)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.EmergencyPauseResponse{ChildID: id, Paused: paused})
}

package handler

import (
	"child-wallet/internal/adapter/http/dto"
	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/apperror"
	"child-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// GuardianHandler handles guardian membership and role endpoints.
type GuardianHandler struct {
	guardianSvc ports.GuardianService
}

// NewGuardianHandler creates a new GuardianHandler.
func NewGuardianHandler(guardianSvc ports.GuardianService) *GuardianHandler {
	return &GuardianHandler{guardianSvc: guardianSvc}
}

// List handles GET /api/v1/children/:childID/guardians.
func (h *GuardianHandler) List(c *gin.Context) {
	gs, err := h.guardianSvc.GetGuardians(c.Request.Context(), childID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gs)
}

// Add handles POST /api/v1/children/:childID/guardians.
func (h *GuardianHandler) Add(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	var req dto.AddGuardianRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.guardianSvc.AddGuardian(c.Request.Context(), ports.AddGuardianRequest{
		ChildID: childID(c),
		Caller:  addr,
		Address: req.Address,
		Name:    req.Name,
		Role:    domain.GuardianRole(req.Role),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, g)
}

// Remove handles DELETE /api/v1/children/:childID/guardians/:address.
func (h *GuardianHandler) Remove(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	target := c.Param("address")
	if err := h.guardianSvc.RemoveGuardian(c.Request.Context(), childID(c), addr, target); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"address": target, "removed": true})
}

// UpdateRole handles PUT /api/v1/children/:childID/guardians/:address/role.
func (h *GuardianHandler) UpdateRole(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	target := c.Param("address")
	role := domain.GuardianRole(req.Role)
	if err := h.guardianSvc.UpdateGuardianRole(c.Request.Context(), childID(c), addr, target, role); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"address": target, "role": role})
}

// SetRequiredApprovals handles PUT /api/v1/children/:childID/approvals.
func (h *GuardianHandler) SetRequiredApprovals(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	var req dto.SetApprovalsRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.guardianSvc.SetRequiredApprovals(c.Request.Context(), childID(c), addr, req.RequiredApprovals); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"required_approvals": req.RequiredApprovals})
}

// CheckPermission handles GET /api/v1/children/:childID/permissions?address=&role=.
// address defaults to the caller.
func (h *GuardianHandler) CheckPermission(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	target := c.DefaultQuery("address", addr)
	role := domain.GuardianRole(c.Query("role"))
	if !role.IsValid() {
		response.Error(c, apperror.ErrInvalidRole())
		return
	}

	allowed, err := h.guardianSvc.CheckPermission(c.Request.Context(), childID(c), target, role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PermissionResponse{Address: target, Role: string(role), Allowed: allowed})
}

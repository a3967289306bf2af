package handler

import (
	"child-wallet/internal/adapter/http/dto"
	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles approved institutions and payments to them.
type PaymentHandler struct {
	walletSvc ports.WalletService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(walletSvc ports.WalletService) *PaymentHandler {
	return &PaymentHandler{walletSvc: walletSvc}
}

// AddInstitution handles POST /api/v1/children/:childID/institutions.
func (h *PaymentHandler) AddInstitution(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	var req dto.AddInstitutionRequest
	if !bindJSON(c, &req) {
		return
	}

	inst, err := h.walletSvc.AddApprovedInstitution(c.Request.Context(), ports.AddInstitutionRequest{
		ChildID:         childID(c),
		Caller:          addr,
		Address:         req.Address,
		Name:            req.Name,
		InstitutionType: domain.InstitutionType(req.InstitutionType),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, inst)
}

// DeactivateInstitution handles POST /api/v1/children/:childID/institutions/:address/deactivate.
func (h *PaymentHandler) DeactivateInstitution(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	institution := c.Param("address")
	if err := h.walletSvc.DeactivateInstitution(c.Request.Context(), childID(c), addr, institution); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"address": institution, "is_active": false})
}

// ListInstitutions handles GET /api/v1/children/:childID/institutions.
func (h *PaymentHandler) ListInstitutions(c *gin.Context) {
	list, err := h.walletSvc.GetApprovedInstitutions(c.Request.Context(), childID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, list)
}

// Pay handles POST /api/v1/children/:childID/payments.
func (h *PaymentHandler) Pay(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.walletSvc.PayToInstitution(c.Request.Context(), ports.InstitutionPaymentRequest{
		ChildID:        childID(c),
		Caller:         addr,
		Institution:    req.Institution,
		Amount:         req.Amount,
		Purpose:        req.Purpose,
		IdempotencyKey: key,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, payment)
}

// ListPayments handles GET /api/v1/children/:childID/payments.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.walletSvc.GetInstitutionPayments(c.Request.Context(), childID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, payments)
}

package handler

import (
	"context"

	"child-wallet/internal/adapter/http/dto"
	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// InvestmentHandler handles plans, the allocation strategy and yields.
type InvestmentHandler struct {
	investmentSvc ports.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentSvc ports.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentSvc: investmentSvc}
}

// CreatePlan handles POST /api/v1/children/:childID/plans.
func (h *InvestmentHandler) CreatePlan(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreatePlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.investmentSvc.CreatePlan(c.Request.Context(), ports.CreatePlanRequest{
		ChildID:         childID(c),
		Caller:          addr,
		PlanType:        domain.PlanType(req.PlanType),
		AmountPerPeriod: req.AmountPerPeriod,
		TotalPeriods:    req.TotalPeriods,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, plan)
}

// ListActivePlans handles GET /api/v1/children/:childID/plans.
func (h *InvestmentHandler) ListActivePlans(c *gin.Context) {
	plans, err := h.investmentSvc.ActivePlans(c.Request.Context(), childID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, plans)
}

// GetPlan handles GET /api/v1/children/:childID/plans/:planID.
func (h *InvestmentHandler) GetPlan(c *gin.Context) {
	plan, err := h.investmentSvc.GetPlan(c.Request.Context(), childID(c), c.Param("planID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plan)
}

type planAction func(ctx context.Context, childID, caller, planID string) (*domain.InvestmentPlan, error)

// ExecutePlan handles POST /api/v1/children/:childID/plans/:planID/execute.
func (h *InvestmentHandler) ExecutePlan(c *gin.Context) {
	h.runPlanAction(c, h.investmentSvc.ExecuteScheduledPayment)
}

// PausePlan handles POST /api/v1/children/:childID/plans/:planID/pause.
func (h *InvestmentHandler) PausePlan(c *gin.Context) {
	h.runPlanAction(c, h.investmentSvc.PausePlan)
}

// ResumePlan handles POST /api/v1/children/:childID/plans/:planID/resume.
func (h *InvestmentHandler) ResumePlan(c *gin.Context) {
	h.runPlanAction(c, h.investmentSvc.ResumePlan)
}

// CancelPlan handles POST /api/v1/children/:childID/plans/:planID/cancel.
func (h *InvestmentHandler) CancelPlan(c *gin.Context) {
	h.runPlanAction(c, h.investmentSvc.CancelPlan)
}

func (h *InvestmentHandler) runPlanAction(c *gin.Context, action planAction) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	plan, err := action(c.Request.Context(), childID(c), addr, c.Param("planID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plan)
}

// SetStrategy handles PUT /api/v1/children/:childID/strategy.
func (h *InvestmentHandler) SetStrategy(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	var req dto.StrategyRequest
	if !bindJSON(c, &req) {
		return
	}

	st, err := h.investmentSvc.SetStrategy(c.Request.Context(), ports.SetStrategyRequest{
		ChildID:              childID(c),
		Caller:               addr,
		StablecoinAllocation: req.StablecoinAllocation,
		DefiAllocation:       req.DefiAllocation,
		AutoCompound:         req.AutoCompound,
		RiskLevel:            req.RiskLevel,
		PreferredProtocols:   req.PreferredProtocols,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, st)
}

// GetStrategy handles GET /api/v1/children/:childID/strategy.
func (h *InvestmentHandler) GetStrategy(c *gin.Context) {
	st, err := h.investmentSvc.GetStrategy(c.Request.Context(), childID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, st)
}

// RecordYield handles POST /api/v1/children/:childID/yields.
func (h *InvestmentHandler) RecordYield(c *gin.Context) {
	addr, ok := caller(c)
	if !ok {
		return
	}

	var req dto.YieldRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, err := h.investmentSvc.RecordYield(c.Request.Context(), ports.RecordYieldRequest{
		ChildID: childID(c),
		Caller:  addr,
		Amount:  req.Amount,
		RateBps: req.RateBps,
		Source:  req.Source,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, rec)
}

// YieldHistory handles GET /api/v1/children/:childID/yields.
func (h *InvestmentHandler) YieldHistory(c *gin.Context) {
	history, err := h.investmentSvc.YieldHistory(c.Request.Context(), childID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, history)
}

// TotalYield handles GET /api/v1/children/:childID/yields/total.
func (h *InvestmentHandler) TotalYield(c *gin.Context) {
	id := childID(c)
	total, err := h.investmentSvc.TotalYield(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.TotalYieldResponse{ChildID: id, TotalYield: total})
}

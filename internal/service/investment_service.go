package service

import (
	"context"
	"slices"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// InvestmentServiceImpl implements ports.InvestmentService.
type InvestmentServiceImpl struct {
	childRepo      ports.ChildRepository
	guardianRepo   ports.GuardianRepository
	investmentRepo ports.InvestmentRepository
	planRepo       ports.PlanRepository
	yieldRepo      ports.YieldRepository
	strategyRepo   ports.StrategyRepository
	transactor     ports.DBTransactor
	clock          ports.Clock
	events         ports.EventPublisher
	log            zerolog.Logger
}

// NewInvestmentService creates a new InvestmentServiceImpl.
func NewInvestmentService(repos ports.Repositories, clock ports.Clock, events ports.EventPublisher, log zerolog.Logger) *InvestmentServiceImpl {
	return &InvestmentServiceImpl{
		childRepo:      repos.Children,
		guardianRepo:   repos.Guardians,
		investmentRepo: repos.Investments,
		planRepo:       repos.Plans,
		yieldRepo:      repos.Yields,
		strategyRepo:   repos.Strategies,
		transactor:     repos.Transactor,
		clock:          clock,
		events:         events,
		log:            log,
	}
}

func validPositiveAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && domain.ValidateAmount(amount) == nil
}

// CreatePlan schedules a recurring deposit. The first payment falls due one
// period after creation (immediately for OneTime).
func (s *InvestmentServiceImpl) CreatePlan(ctx context.Context, req ports.CreatePlanRequest) (_ *domain.InvestmentPlan, err error) {
	ctx, span := startSpan(ctx, "InvestmentService.CreatePlan", req.ChildID)
	defer func() { endSpan(span, err) }()

	if !req.PlanType.IsValid() {
		return nil, apperror.ErrInvalidPlanType()
	}
	if !validPositiveAmount(req.AmountPerPeriod) {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.TotalPeriods == 0 {
		return nil, apperror.ErrInvalidPeriods()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := lockChild(ctx, dbTx, s.childRepo, s.guardianRepo, req.ChildID, req.Caller, domain.RoleInvestor); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	plan := &domain.InvestmentPlan{
		ID:              uuid.NewString(),
		ChildID:         req.ChildID,
		Investor:        req.Caller,
		PlanType:        req.PlanType,
		AmountPerPeriod: req.AmountPerPeriod,
		TotalPeriods:    req.TotalPeriods,
		NextPaymentDate: domain.FirstPaymentDate(req.PlanType, now),
		Status:          domain.PlanActive,
		CreatedAt:       now,
	}

	if err := s.planRepo.Create(ctx, dbTx, plan); err != nil {
		return nil, internalErr("create plan", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, internalErr("commit tx", err)
	}

	s.log.Info().
		Str("child_id", req.ChildID).
		Str("plan_id", plan.ID).
		Str("plan_type", string(plan.PlanType)).
		Str("amount_per_period", plan.AmountPerPeriod.String()).
		Uint32("total_periods", plan.TotalPeriods).
		Msg("investment plan created")
	publish(s.events, domain.NewWalletEvent(req.ChildID, "plan", "created", req.Caller, now,
		map[string]any{"plan_id": plan.ID}))

	return plan, nil
}

// lockPlan loads a plan for update and scopes it to childID.
func (s *InvestmentServiceImpl) lockPlan(ctx context.Context, tx pgx.Tx, childID, planID string) (*domain.InvestmentPlan, error) {
	plan, err := s.planRepo.GetByIDForUpdate(ctx, tx, planID)
	if err != nil {
		return nil, internalErr("lock plan", err)
	}
	if plan == nil || plan.ChildID != childID {
		return nil, apperror.ErrPlanNotFound()
	}
	return plan, nil
}

// ExecuteScheduledPayment runs one due period of an active plan: the child's
// balance is credited and an Investment tagged with the plan is appended.
func (s *InvestmentServiceImpl) ExecuteScheduledPayment(ctx context.Context, childID, caller, planID string) (_ *domain.InvestmentPlan, err error) {
	ctx, span := startSpan(ctx, "InvestmentService.ExecuteScheduledPayment", childID)
	defer func() { endSpan(span, err) }()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	profile, err := lockChild(ctx, dbTx, s.childRepo, s.guardianRepo, childID, caller, domain.RoleInvestor)
	if err != nil {
		return nil, err
	}

	plan, err := s.lockPlan(ctx, dbTx, childID, planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != domain.PlanActive {
		return nil, apperror.ErrPlanNotActive()
	}

	now := s.clock.Now()
	if !plan.IsDue(now) {
		return nil, apperror.ErrPaymentNotDue()
	}

	newBalance, err := domain.AddAmounts(profile.CurrentBalance, plan.AmountPerPeriod)
	if err != nil {
		return nil, apperror.ErrInvalidAmount()
	}

	plan.RecordPayment(now)

	if err := s.planRepo.Update(ctx, dbTx, plan); err != nil {
		return nil, internalErr("update plan", err)
	}
	if err := s.childRepo.UpdateBalance(ctx, dbTx, childID, newBalance); err != nil {
		return nil, internalErr("update balance", err)
	}
	paidPlan := plan.ID
	if err := s.investmentRepo.Create(ctx, dbTx, &domain.Investment{
		ChildID:   childID,
		Amount:    plan.AmountPerPeriod,
		Timestamp: now,
		Investor:  plan.Investor,
		PlanID:    &paidPlan,
	}); err != nil {
		return nil, internalErr("create investment", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, internalErr("commit tx", err)
	}

	s.log.Info().
		Str("child_id", childID).
		Str("plan_id", plan.ID).
		Uint32("completed_periods", plan.CompletedPeriods).
		Str("status", string(plan.Status)).
		Str("balance", newBalance.String()).
		Msg("scheduled payment executed")
	publish(s.events, domain.NewWalletEvent(childID, "plan", "executed", caller, now,
		map[string]any{"plan_id": plan.ID, "status": plan.Status, "balance": newBalance.String()}))

	return plan, nil
}

// transition moves a plan to status to if its current status is one of from.
func (s *InvestmentServiceImpl) transition(
	ctx context.Context,
	childID, caller, planID string,
	to domain.PlanStatus,
	from ...domain.PlanStatus,
) (_ *domain.InvestmentPlan, err error) {
	ctx, span := startSpan(ctx, "InvestmentService.Transition."+string(to), childID)
	defer func() { endSpan(span, err) }()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := lockChild(ctx, dbTx, s.childRepo, s.guardianRepo, childID, caller, domain.RoleInvestor); err != nil {
		return nil, err
	}

	plan, err := s.lockPlan(ctx, dbTx, childID, planID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(from, plan.Status) {
		return nil, apperror.ErrInvalidStateTransition(string(plan.Status), string(to))
	}

	prev := plan.Status
	plan.Status = to
	if err := s.planRepo.Update(ctx, dbTx, plan); err != nil {
		return nil, internalErr("update plan", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, internalErr("commit tx", err)
	}

	s.log.Info().
		Str("child_id", childID).
		Str("plan_id", planID).
		Str("from", string(prev)).
		Str("to", string(to)).
		Msg("investment plan status changed")
	publish(s.events, domain.NewWalletEvent(childID, "plan", "status_changed", caller, s.clock.Now(),
		map[string]any{"plan_id": planID, "status": to}))

	return plan, nil
}

// PausePlan moves an Active plan to Paused.
func (s *InvestmentServiceImpl) PausePlan(ctx context.Context, childID, caller, planID string) (*domain.InvestmentPlan, error) {
	return s.transition(ctx, childID, caller, planID, domain.PlanPaused, domain.PlanActive)
}

// ResumePlan moves a Paused plan back to Active.
func (s *InvestmentServiceImpl) ResumePlan(ctx context.Context, childID, caller, planID string) (*domain.InvestmentPlan, error) {
	return s.transition(ctx, childID, caller, planID, domain.PlanActive, domain.PlanPaused)
}

// CancelPlan ends an Active or Paused plan for good.
func (s *InvestmentServiceImpl) CancelPlan(ctx context.Context, childID, caller, planID string) (*domain.InvestmentPlan, error) {
	return s.transition(ctx, childID, caller, planID, domain.PlanCancelled, domain.PlanActive, domain.PlanPaused)
}

// SetStrategy replaces the child's allocation strategy.
func (s *InvestmentServiceImpl) SetStrategy(ctx context.Context, req ports.SetStrategyRequest) (_ *domain.InvestmentStrategy, err error) {
	ctx, span := startSpan(ctx, "InvestmentService.SetStrategy", req.ChildID)
	defer func() { endSpan(span, err) }()

	if !domain.AllocationBalanced(req.StablecoinAllocation, req.DefiAllocation) {
		return nil, apperror.ErrAllocationMismatch()
	}
	if !domain.RiskLevelValid(req.RiskLevel) {
		return nil, apperror.ErrInvalidRiskLevel()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := lockChild(ctx, dbTx, s.childRepo, s.guardianRepo, req.ChildID, req.Caller, domain.RoleOwner); err != nil {
		return nil, err
	}

	protocols := req.PreferredProtocols
	if protocols == nil {
		protocols = []string{}
	}
	strategy := &domain.InvestmentStrategy{
		ChildID:              req.ChildID,
		StablecoinAllocation: req.StablecoinAllocation,
		DefiAllocation:       req.DefiAllocation,
		AutoCompound:         req.AutoCompound,
		RiskLevel:            req.RiskLevel,
		PreferredProtocols:   protocols,
	}
	if err := s.strategyRepo.Upsert(ctx, dbTx, strategy); err != nil {
		return nil, internalErr("save strategy", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, internalErr("commit tx", err)
	}

	s.log.Info().
		Str("child_id", req.ChildID).
		Uint32("stablecoin", strategy.StablecoinAllocation).
		Uint32("defi", strategy.DefiAllocation).
		Uint32("risk_level", strategy.RiskLevel).
		Msg("investment strategy set")
	publish(s.events, domain.NewWalletEvent(req.ChildID, "strategy", "updated", req.Caller, s.clock.Now(), nil))

	return strategy, nil
}

// RecordYield appends a yield entry. It does not move the balance.
func (s *InvestmentServiceImpl) RecordYield(ctx context.Context, req ports.RecordYieldRequest) (_ *domain.YieldRecord, err error) {
	ctx, span := startSpan(ctx, "InvestmentService.RecordYield", req.ChildID)
	defer func() { endSpan(span, err) }()

	if !validPositiveAmount(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := lockChild(ctx, dbTx, s.childRepo, s.guardianRepo, req.ChildID, req.Caller, domain.RoleInvestor); err != nil {
		return nil, err
	}

	record := &domain.YieldRecord{
		ChildID:     req.ChildID,
		YieldAmount: req.Amount,
		YieldRate:   req.RateBps,
		GeneratedAt: s.clock.Now(),
		Source:      req.Source,
	}
	if err := s.yieldRepo.Create(ctx, dbTx, record); err != nil {
		return nil, internalErr("create yield", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, internalErr("commit tx", err)
	}

	s.log.Info().
		Str("child_id", req.ChildID).
		Str("amount", record.YieldAmount.String()).
		Int64("rate_bps", record.YieldRate).
		Str("source", record.Source).
		Msg("yield recorded")
	publish(s.events, domain.NewWalletEvent(req.ChildID, "yield", "recorded", req.Caller, record.GeneratedAt,
		map[string]any{"amount": record.YieldAmount.String()}))

	return record, nil
}

// GetPlan returns a plan of childID.
func (s *InvestmentServiceImpl) GetPlan(ctx context.Context, childID, planID string) (*domain.InvestmentPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, internalErr("get plan", err)
	}
	if plan == nil || plan.ChildID != childID {
		return nil, apperror.ErrPlanNotFound()
	}
	return plan, nil
}

// ActivePlans lists plans currently in the Active state.
func (s *InvestmentServiceImpl) ActivePlans(ctx context.Context, childID string) ([]domain.InvestmentPlan, error) {
	active := domain.PlanActive
	plans, err := s.planRepo.ListByChild(ctx, childID, &active)
	if err != nil {
		return nil, internalErr("list plans", err)
	}
	return plans, nil
}

// GetStrategy returns the child's allocation strategy.
func (s *InvestmentServiceImpl) GetStrategy(ctx context.Context, childID string) (*domain.InvestmentStrategy, error) {
	strategy, err := s.strategyRepo.Get(ctx, childID)
	if err != nil {
		return nil, internalErr("get strategy", err)
	}
	if strategy == nil {
		return nil, apperror.ErrStrategyNotFound()
	}
	return strategy, nil
}

// TotalYield sums every yield record of the child.
func (s *InvestmentServiceImpl) TotalYield(ctx context.Context, childID string) (decimal.Decimal, error) {
	total, err := s.yieldRepo.SumByChild(ctx, childID)
	if err != nil {
		return decimal.Zero, internalErr("sum yields", err)
	}
	return total, nil
}

// YieldHistory lists yield records oldest first.
func (s *InvestmentServiceImpl) YieldHistory(ctx context.Context, childID string) ([]domain.YieldRecord, error) {
	records, err := s.yieldRepo.ListByChild(ctx, childID)
	if err != nil {
		return nil, internalErr("list yields", err)
	}
	return records, nil
}

package service

import (
	"context"
	"testing"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvestmentService_CreatePlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	childID := env.newChild(t, T0)
	env.addGuardian(t, childID, "inv", domain.RoleInvestor)
	env.addGuardian(t, childID, "viewer", domain.RoleViewer)

	tests := []struct {
		planType domain.PlanType
		wantNext int64
	}{
		{domain.PlanOneTime, T0},
		{domain.PlanWeekly, T0 + 7*86400},
		{domain.PlanMonthly, T0 + 30*86400},
		{domain.PlanQuarterly, T0 + 90*86400},
	}
	for _, tt := range tests {
		t.Run(string(tt.planType), func(t *testing.T) {
			plan, err := env.ledger.CreatePlan(ctx, ports.CreatePlanRequest{
				ChildID: childID, Caller: "inv", PlanType: tt.planType, AmountPerPeriod: amt(100), TotalPeriods: 3,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantNext, plan.NextPaymentDate)
			assert.Equal(t, domain.PlanActive, plan.Status)
			assert.Equal(t, "inv", plan.Investor)
			assert.Equal(t, T0, plan.CreatedAt)
			assert.Zero(t, plan.CompletedPeriods)
		})
	}

	failures := []struct {
		name string
		req  ports.CreatePlanRequest
		code string
	}{
		{"zero amount", ports.CreatePlanRequest{ChildID: childID, Caller: "inv", PlanType: domain.PlanWeekly, AmountPerPeriod: decimal.Zero, TotalPeriods: 1}, "WAL_001"},
		{"zero periods", ports.CreatePlanRequest{ChildID: childID, Caller: "inv", PlanType: domain.PlanWeekly, AmountPerPeriod: amt(1), TotalPeriods: 0}, "INV_001"},
		{"bad type", ports.CreatePlanRequest{ChildID: childID, Caller: "inv", PlanType: "DAILY", AmountPerPeriod: amt(1), TotalPeriods: 1}, "INV_008"},
		{"viewer", ports.CreatePlanRequest{ChildID: childID, Caller: "viewer", PlanType: domain.PlanWeekly, AmountPerPeriod: amt(1), TotalPeriods: 1}, "AUTH_001"},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.ledger.CreatePlan(ctx, tt.req)
			assert.True(t, apperror.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestInvestmentService_WeeklyScheduleRunsToCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	childID := env.newChild(t, T0)

	plan, err := env.ledger.CreatePlan(ctx, ports.CreatePlanRequest{
		ChildID: childID, Caller: "owner", PlanType: domain.PlanWeekly, AmountPerPeriod: amt(25), TotalPeriods: 3,
	})
	require.NoError(t, err)

	_, err = env.ledger.ExecuteScheduledPayment(ctx, childID, "owner", plan.ID)
	assert.True(t, apperror.HasCode(err, "INV_004"), "not due at creation")

	due := plan.NextPaymentDate
	for i := 1; i <= 3; i++ {
		env.clock.Set(due)
		got, err := env.ledger.ExecuteScheduledPayment(ctx, childID, "owner", plan.ID)
		require.NoError(t, err)
		assert.Equal(t, uint32(i), got.CompletedPeriods)
		assert.Equal(t, due, got.LastPayment)
		assert.Equal(t, due+604800, got.NextPaymentDate)
		due = got.NextPaymentDate
	}

	final, err := env.ledger.GetPlan(ctx, childID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanCompleted, final.Status)

	env.clock.Set(due)
	_, err = env.ledger.ExecuteScheduledPayment(ctx, childID, "owner", plan.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidStateTransition))

	bal, _ := env.wallet.GetBalance(ctx, childID)
	assert.True(t, bal.Equal(amt(75)))

	history, _ := env.wallet.GetInvestmentHistory(ctx, childID)
	require.Len(t, history, 3)
	require.NotNil(t, history[0].PlanID)
	assert.Equal(t, plan.ID, *history[0].PlanID)

	active, err := env.ledger.ActivePlans(ctx, childID)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestInvestmentService_LateExecutionKeepsSchedule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	childID := env.newChild(t, T0)

	plan, err := env.ledger.CreatePlan(ctx, ports.CreatePlanRequest{
		ChildID: childID, Caller: "owner", PlanType: domain.PlanWeekly, AmountPerPeriod: amt(1), TotalPeriods: 5,
	})
	require.NoError(t, err)

	env.clock.Set(plan.NextPaymentDate + 3*86400)
	got, err := env.ledger.ExecuteScheduledPayment(ctx, childID, "owner", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.NextPaymentDate+604800, got.NextPaymentDate)
}

func TestInvestmentService_OneTimePlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	childID := env.newChild(t, T0)

	plan, err := env.ledger.CreatePlan(ctx, ports.CreatePlanRequest{
		ChildID: childID, Caller: "owner", PlanType: domain.PlanOneTime, AmountPerPeriod: amt(300), TotalPeriods: 1,
	})
	require.NoError(t, err)

	got, err := env.ledger.ExecuteScheduledPayment(ctx, childID, "owner", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanCompleted, got.Status)
	assert.Zero(t, got.NextPaymentDate)
}

func TestInvestmentService_PauseResumeCancel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	childID := env.newChild(t, T0)

	plan, err := env.ledger.CreatePlan(ctx, ports.CreatePlanRequest{
		ChildID: childID, Caller: "owner", PlanType: domain.PlanOneTime, AmountPerPeriod: amt(5), TotalPeriods: 1,
	})
	require.NoError(t, err)

	_, err = env.ledger.ResumePlan(ctx, childID, "owner", plan.ID)
	assert.True(t, apperror.HasCode(err, "INV_005"))

	paused, err := env.ledger.PausePlan(ctx, childID, "owner", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanPaused, paused.Status)

	_, err = env.ledger.PausePlan(ctx, childID, "owner", plan.ID)
	assert.True(t, apperror.HasCode(err, "INV_005"))

	_, err = env.ledger.ExecuteScheduledPayment(ctx, childID, "owner", plan.ID)
	assert.True(t, apperror.HasCode(err, "INV_003"))

	resumed, err := env.ledger.ResumePlan(ctx, childID, "owner", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanActive, resumed.Status)

	cancelled, err := env.ledger.CancelPlan(ctx, childID, "owner", plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanCancelled, cancelled.Status)

	for name, op := range map[string]func(context.Context, string, string, string) (*domain.InvestmentPlan, error){
		"pause":  env.ledger.PausePlan,
		"resume": env.ledger.ResumePlan,
		"cancel": env.ledger.CancelPlan,
	} {
		_, err := op(ctx, childID, "owner", plan.ID)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidStateTransition), name)
	}
}

func TestInvestmentService_PlanScopedToChild(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	mine := env.newChild(t, T0)
	other := env.newChild(t, T0)

	plan, err := env.ledger.CreatePlan(ctx, ports.CreatePlanRequest{
		ChildID: mine, Caller: "owner", PlanType: domain.PlanOneTime, AmountPerPeriod: amt(5), TotalPeriods: 1,
	})
	require.NoError(t, err)

	_, err = env.ledger.GetPlan(ctx, other, plan.ID)
	assert.True(t, apperror.HasCode(err, "INV_002"))

	_, err = env.ledger.ExecuteScheduledPayment(ctx, other, "owner", plan.ID)
	assert.True(t, apperror.HasCode(err, "INV_002"))

	_, err = env.ledger.GetPlan(ctx, mine, "does-not-exist")
	assert.True(t, apperror.HasCode(err, "INV_002"))
}

func TestInvestmentService_Strategy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	childID := env.newChild(t, T0)
	env.addGuardian(t, childID, "inv", domain.RoleInvestor)

	_, err := env.ledger.GetStrategy(ctx, childID)
	assert.True(t, apperror.HasCode(err, "INV_009"))

	tests := []struct {
		name             string
		stable, defi, rl uint32
		caller           string
		code             string
	}{
		{"allocation 60/30", 60, 30, 3, "owner", "INV_006"},
		{"risk 0", 50, 50, 0, "owner", "INV_007"},
		{"risk 6", 50, 50, 6, "owner", "INV_007"},
		{"investor cannot set", 50, 50, 3, "inv", "AUTH_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.ledger.SetStrategy(ctx, ports.SetStrategyRequest{
				ChildID: childID, Caller: tt.caller, StablecoinAllocation: tt.stable, DefiAllocation: tt.defi, RiskLevel: tt.rl,
			})
			assert.True(t, apperror.HasCode(err, tt.code), "got %v", err)
		})
	}

	_, err = env.ledger.SetStrategy(ctx, ports.SetStrategyRequest{
		ChildID: childID, Caller: "owner", StablecoinAllocation: 70, DefiAllocation: 30, AutoCompound: true, RiskLevel: 2,
		PreferredProtocols: []string{"blend", "aquarius"},
	})
	require.NoError(t, err)

	st, err := env.ledger.GetStrategy(ctx, childID)
	require.NoError(t, err)
	assert.Equal(t, uint32(70), st.StablecoinAllocation)
	assert.True(t, st.AutoCompound)
	assert.Equal(t, []string{"blend", "aquarius"}, st.PreferredProtocols)

	_, err = env.ledger.SetStrategy(ctx, ports.SetStrategyRequest{
		ChildID: childID, Caller: "owner", StablecoinAllocation: 100, DefiAllocation: 0, RiskLevel: 1,
	})
	require.NoError(t, err)
	st, _ = env.ledger.GetStrategy(ctx, childID)
	assert.Equal(t, uint32(100), st.StablecoinAllocation)
	assert.Empty(t, st.PreferredProtocols)
}

func TestInvestmentService_Yields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	childID := env.newChild(t, T0)

	total, err := env.ledger.TotalYield(ctx, childID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	_, err = env.ledger.RecordYield(ctx, ports.RecordYieldRequest{ChildID: childID, Caller: "owner", Amount: decimal.Zero})
	assert.True(t, apperror.HasCode(err, "WAL_001"))

	big := decimal.RequireFromString("100000000000000000000000")
	for _, a := range []decimal.Decimal{big, big, amt(7)} {
		env.clock.Advance(86400)
		_, err := env.ledger.RecordYield(ctx, ports.RecordYieldRequest{ChildID: childID, Caller: "owner", Amount: a, RateBps: 500, Source: "pool"})
		require.NoError(t, err)
	}

	total, err = env.ledger.TotalYield(ctx, childID)
	require.NoError(t, err)
	assert.Equal(t, "200000000000000000000007", total.String())

	history, err := env.ledger.YieldHistory(ctx, childID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, T0+86400, history[0].GeneratedAt)
	assert.Equal(t, int64(500), history[0].YieldRate)

	bal, _ := env.wallet.GetBalance(ctx, childID)
	assert.True(t, bal.IsZero(), "yield does not credit the balance")
}

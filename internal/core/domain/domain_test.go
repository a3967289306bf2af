package domain

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardianRole_Satisfies(t *testing.T) {
	all := []GuardianRole{RoleOwner, RoleViewer, RoleInvestor, RoleWithdrawer}
	granted := map[GuardianRole][]GuardianRole{
		RoleOwner:      {RoleOwner, RoleViewer, RoleInvestor, RoleWithdrawer},
		RoleWithdrawer: {RoleWithdrawer, RoleViewer, RoleInvestor},
		RoleInvestor:   {RoleInvestor, RoleViewer},
		RoleViewer:     {RoleViewer},
	}

	for holder, ok := range granted {
		for _, required := range all {
			t.Run(string(holder)+"->"+string(required), func(t *testing.T) {
				assert.Equal(t, slices.Contains(ok, required), holder.Satisfies(required))
			})
		}
	}
}

func TestGuardianRole_IsValid(t *testing.T) {
	assert.True(t, RoleOwner.IsValid())
	assert.True(t, RoleWithdrawer.IsValid())
	assert.False(t, GuardianRole("ADMIN").IsValid())
	assert.False(t, GuardianRole("").IsValid())
	assert.False(t, GuardianRole("ADMIN").Satisfies(RoleViewer))
}

func TestGuardianSystem_FindAndPermission(t *testing.T) {
	s := &GuardianSystem{
		ChildID: "c1",
		Guardians: []Guardian{
			{Address: "alice", Role: RoleOwner},
			{Address: "bob", Role: RoleInvestor},
			{Address: "carol", Role: RoleViewer},
		},
		RequiredApprovals: 1,
	}

	g, idx := s.Find("bob")
	require.NotNil(t, g)
	assert.Equal(t, 1, idx)

	g, idx = s.Find("mallory")
	assert.Nil(t, g)
	assert.Equal(t, -1, idx)

	assert.True(t, s.HasPermission("alice", RoleWithdrawer))
	assert.True(t, s.HasPermission("bob", RoleViewer))
	assert.False(t, s.HasPermission("bob", RoleWithdrawer))
	assert.False(t, s.HasPermission("mallory", RoleViewer))
	assert.Equal(t, "alice", s.Owner().Address)
}

func TestGuardianSystem_RemovePreservesOrder(t *testing.T) {
	s := &GuardianSystem{Guardians: []Guardian{
		{Address: "a"}, {Address: "b"}, {Address: "c"}, {Address: "d"},
	}}

	s.Remove(1)

	require.Len(t, s.Guardians, 3)
	assert.Equal(t, "a", s.Guardians[0].Address)
	assert.Equal(t, "c", s.Guardians[1].Address)
	assert.Equal(t, "d", s.Guardians[2].Address)
}

func TestChildProfile_AgeGate(t *testing.T) {
	birth := int64(1_000_000)
	p := &ChildProfile{BirthDate: birth, TargetAge: 18}

	tests := []struct {
		name      string
		now       int64
		wantAge   int64
		wantSpend bool
		wantLeft  int64
	}{
		{"before birth", birth - 10, 0, false, 18},
		{"at birth", birth, 0, false, 18},
		{"one second short of 18", birth + 18*SecondsPerYear - 1, 17, false, 1},
		{"exactly 18", birth + 18*SecondsPerYear, 18, true, 0},
		{"well past", birth + 40*SecondsPerYear, 40, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAge, p.AgeInYears(tt.now))
			assert.Equal(t, tt.wantSpend, p.IsOldEnoughToSpend(tt.now))
			assert.Equal(t, tt.wantLeft, p.YearsUntilUnlock(tt.now))
		})
	}
}

func TestChildProfile_ProgressBps(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		target  int64
		want    int64
	}{
		{"empty", 0, 1000, 0},
		{"quarter", 250, 1000, 2500},
		{"rounds down", 1, 3, 3333},
		{"capped", 5000, 1000, 10000},
		{"no target", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ChildProfile{
				CurrentBalance: decimal.NewFromInt(tt.balance),
				TargetAmount:   decimal.NewFromInt(tt.target),
			}
			assert.Equal(t, tt.want, p.ProgressBps())
		})
	}
}

func TestPlanType_Period(t *testing.T) {
	assert.Equal(t, int64(0), PlanOneTime.Period())
	assert.Equal(t, int64(604800), PlanWeekly.Period())
	assert.Equal(t, int64(2592000), PlanMonthly.Period())
	assert.Equal(t, int64(7776000), PlanQuarterly.Period())
	assert.False(t, PlanType("DAILY").IsValid())

	assert.Equal(t, int64(100), FirstPaymentDate(PlanOneTime, 100))
	assert.Equal(t, int64(100+604800), FirstPaymentDate(PlanWeekly, 100))
}

func TestInvestmentPlan_RecordPayment(t *testing.T) {
	t.Run("weekly advances from the due date", func(t *testing.T) {
		p := &InvestmentPlan{PlanType: PlanWeekly, TotalPeriods: 3, NextPaymentDate: 1000, Status: PlanActive}

		p.RecordPayment(1500)
		assert.Equal(t, uint32(1), p.CompletedPeriods)
		assert.Equal(t, int64(1500), p.LastPayment)
		assert.Equal(t, int64(1000+604800), p.NextPaymentDate)
		assert.Equal(t, PlanActive, p.Status)

		p.RecordPayment(p.NextPaymentDate)
		p.RecordPayment(p.NextPaymentDate)
		assert.Equal(t, uint32(3), p.CompletedPeriods)
		assert.Equal(t, PlanCompleted, p.Status)
	})

	t.Run("one time completes and clears next date", func(t *testing.T) {
		p := &InvestmentPlan{PlanType: PlanOneTime, TotalPeriods: 1, NextPaymentDate: 50, Status: PlanActive}

		require.True(t, p.IsDue(50))
		p.RecordPayment(50)

		assert.Equal(t, int64(0), p.NextPaymentDate)
		assert.Equal(t, PlanCompleted, p.Status)
	})

	t.Run("not due before next date", func(t *testing.T) {
		p := &InvestmentPlan{NextPaymentDate: 100}
		assert.False(t, p.IsDue(99))
		assert.True(t, p.IsDue(100))
	})
}

func TestPlanStatus_IsTerminal(t *testing.T) {
	assert.False(t, PlanActive.IsTerminal())
	assert.False(t, PlanPaused.IsTerminal())
	assert.True(t, PlanCompleted.IsTerminal())
	assert.True(t, PlanCancelled.IsTerminal())
}

func TestAllocationAndRisk(t *testing.T) {
	assert.True(t, AllocationBalanced(60, 40))
	assert.True(t, AllocationBalanced(100, 0))
	assert.False(t, AllocationBalanced(60, 30))
	assert.False(t, AllocationBalanced(4294967295, 101))

	assert.False(t, RiskLevelValid(0))
	assert.True(t, RiskLevelValid(1))
	assert.True(t, RiskLevelValid(5))
	assert.False(t, RiskLevelValid(6))
}

func TestValidateAmount(t *testing.T) {
	maxStr := "170141183460469231731687303715884105727"

	require.NoError(t, ValidateAmount(decimal.NewFromInt(1)))
	require.NoError(t, ValidateAmount(decimal.RequireFromString(maxStr)))
	assert.ErrorIs(t, ValidateAmount(decimal.RequireFromString("1.5")), ErrAmountNotInteger)
	assert.ErrorIs(t, ValidateAmount(decimal.RequireFromString(maxStr).Add(decimal.NewFromInt(1))), ErrAmountOverflow)

	_, err := AddAmounts(decimal.RequireFromString(maxStr), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrAmountOverflow)

	sum, err := AddAmounts(decimal.NewFromInt(40), decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(42)))

	assert.True(t, SumAmounts(decimal.NewFromInt(100), decimal.NewFromInt(250)).Equal(decimal.NewFromInt(350)))
	assert.True(t, SumAmounts().IsZero())
}

func TestBuildIdempotencyKey(t *testing.T) {
	assert.Equal(t, "child-1:invest:abc", BuildIdempotencyKey("child-1", "invest", "abc"))
}

func TestNewWalletEvent(t *testing.T) {
	ev := NewWalletEvent("c1", "investment", "created", "alice", 42, map[string]any{"amount": "10"})
	assert.Equal(t, "investment_created", ev.Type)
	assert.Equal(t, "c1", ev.ChildID)
	assert.Equal(t, int64(42), ev.Timestamp)
}

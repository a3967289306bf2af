package domain

import (
	"github.com/shopspring/decimal"
)

const (
	// SecondsPerYear is the fixed 365-day year used by the age gate.
	SecondsPerYear int64 = 365 * 24 * 60 * 60

	MinTargetAge uint32 = 18
)

// ChildProfile is the custodial wallet of one child.
type ChildProfile struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	BirthDate        int64           `json:"birth_date"` // Unix seconds
	TargetAge        uint32          `json:"target_age"`
	TargetAmount     decimal.Decimal `json:"target_amount"`
	CurrentBalance   decimal.Decimal `json:"current_balance"`
	CreatedAt        int64           `json:"created_at"`
	Owner            string          `json:"owner"`
	GuardianSystemID string          `json:"guardian_system_id"`
	EmergencyPaused  bool            `json:"emergency_paused"`
}

// AgeInYears integer-divides the elapsed seconds since birth by a 365-day year.
// A birth date in the future yields zero.
func (p *ChildProfile) AgeInYears(now int64) int64 {
	if now <= p.BirthDate {
		return 0
	}
	return (now - p.BirthDate) / SecondsPerYear
}

// IsOldEnoughToSpend reports whether the child has reached the target age.
func (p *ChildProfile) IsOldEnoughToSpend(now int64) bool {
	return p.AgeInYears(now) >= int64(p.TargetAge)
}

// YearsUntilUnlock is zero once the target age is reached.
func (p *ChildProfile) YearsUntilUnlock(now int64) int64 {
	left := int64(p.TargetAge) - p.AgeInYears(now)
	if left < 0 {
		return 0
	}
	return left
}

// ProgressBps is the balance as basis points of the target, capped at 10000.
func (p *ChildProfile) ProgressBps() int64 {
	if !p.TargetAmount.IsPositive() {
		return 0
	}
	bps := p.CurrentBalance.Mul(decimal.NewFromInt(10000)).Div(p.TargetAmount).Floor()
	if bps.GreaterThan(decimal.NewFromInt(10000)) {
		return 10000
	}
	if bps.IsNegative() {
		return 0
	}
	return bps.IntPart()
}

// Investment is an append-only deposit into a child's wallet.
type Investment struct {
	ChildID   string          `json:"child_id"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp int64           `json:"timestamp"`
	Investor  string          `json:"investor"`
	PlanID    *string         `json:"plan_id,omitempty"`
}

package domain

import "github.com/shopspring/decimal"

// PlanType sets how often a plan's scheduled payment falls due.
type PlanType string

const (
	PlanOneTime   PlanType = "ONE_TIME"
	PlanWeekly    PlanType = "WEEKLY"
	PlanMonthly   PlanType = "MONTHLY"
	PlanQuarterly PlanType = "QUARTERLY"
)

const secondsPerDay int64 = 24 * 60 * 60

// Period returns the offset between two payments in seconds. OneTime has none.
func (t PlanType) Period() int64 {
	switch t {
	case PlanWeekly:
		return 7 * secondsPerDay
	case PlanMonthly:
		return 30 * secondsPerDay
	case PlanQuarterly:
		return 90 * secondsPerDay
	}
	return 0
}

// IsValid returns true for the known plan types.
func (t PlanType) IsValid() bool {
	switch t {
	case PlanOneTime, PlanWeekly, PlanMonthly, PlanQuarterly:
		return true
	}
	return false
}

// PlanStatus is the lifecycle state of an investment plan.
type PlanStatus string

const (
	PlanActive    PlanStatus = "ACTIVE"
	PlanPaused    PlanStatus = "PAUSED"
	PlanCompleted PlanStatus = "COMPLETED"
	PlanCancelled PlanStatus = "CANCELLED"
)

// IsTerminal returns true once a plan can no longer change state.
func (s PlanStatus) IsTerminal() bool {
	return s == PlanCompleted || s == PlanCancelled
}

// InvestmentPlan is a recurring (or one-off) scheduled deposit for a child.
type InvestmentPlan struct {
	ID               string          `json:"id"`
	ChildID          string          `json:"child_id"`
	Investor         string          `json:"investor"`
	PlanType         PlanType        `json:"plan_type"`
	AmountPerPeriod  decimal.Decimal `json:"amount_per_period"`
	TotalPeriods     uint32          `json:"total_periods"`
	CompletedPeriods uint32          `json:"completed_periods"`
	NextPaymentDate  int64           `json:"next_payment_date"`
	Status           PlanStatus      `json:"status"`
	CreatedAt        int64           `json:"created_at"`
	LastPayment      int64           `json:"last_payment"`
}

// FirstPaymentDate is now for OneTime plans and one period out otherwise.
func FirstPaymentDate(t PlanType, now int64) int64 {
	return now + t.Period()
}

// IsDue reports whether the next payment may execute at now.
func (p *InvestmentPlan) IsDue(now int64) bool {
	return now >= p.NextPaymentDate
}

// RecordPayment advances the schedule after one executed period. The next due
// date moves one period past the previous due date so late runs do not drift.
func (p *InvestmentPlan) RecordPayment(now int64) {
	p.CompletedPeriods++
	p.LastPayment = now

	if p.PlanType == PlanOneTime {
		p.NextPaymentDate = 0
	} else {
		p.NextPaymentDate += p.PlanType.Period()
	}

	if p.CompletedPeriods >= p.TotalPeriods {
		p.Status = PlanCompleted
	}
}

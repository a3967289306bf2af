package domain

import "github.com/shopspring/decimal"

// ComprehensiveReport is a read-only snapshot across all three ledgers of a child.
type ComprehensiveReport struct {
	ChildProfile          ChildProfile         `json:"child_profile"`
	Guardians             []Guardian           `json:"guardians"`
	RequiredApprovals     uint32               `json:"required_approvals"`
	TotalBalance          decimal.Decimal      `json:"total_balance"`
	TotalYield            decimal.Decimal      `json:"total_yield"`
	ActiveInvestmentPlans []InvestmentPlan     `json:"active_investment_plans"`
	InvestmentHistory     []Investment         `json:"investment_history"`
	InstitutionPayments   []InstitutionPayment `json:"institution_payments"`
	AgeYears              int64                `json:"age_years"`
	YearsUntilUnlock      int64                `json:"years_until_unlock"`
	IsOldEnoughToSpend    bool                 `json:"is_old_enough_to_spend"`
	IsEmergencyPaused     bool                 `json:"is_emergency_paused"`
	ProgressBps           int64                `json:"progress_bps"`
	GeneratedAt           int64                `json:"generated_at"`
}

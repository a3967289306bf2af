package domain

import "github.com/shopspring/decimal"

const (
	MinRiskLevel uint32 = 1
	MaxRiskLevel uint32 = 5
)

// YieldRecord is an append-only entry for returns generated on a child's funds.
type YieldRecord struct {
	ChildID     string          `json:"child_id"`
	YieldAmount decimal.Decimal `json:"yield_amount"`
	YieldRate   int64           `json:"yield_rate"` // basis points, 100 = 1%
	GeneratedAt int64           `json:"generated_at"`
	Source      string          `json:"source"`
}

// InvestmentStrategy is the allocation policy for a child's funds.
type InvestmentStrategy struct {
	ChildID              string   `json:"child_id"`
	StablecoinAllocation uint32   `json:"stablecoin_allocation"`
	DefiAllocation       uint32   `json:"defi_allocation"`
	AutoCompound         bool     `json:"auto_compound"`
	RiskLevel            uint32   `json:"risk_level"`
	PreferredProtocols   []string `json:"preferred_protocols"`
}

// AllocationBalanced reports whether the two allocations add up to 100%.
func AllocationBalanced(stablecoin, defi uint32) bool {
	return uint64(stablecoin)+uint64(defi) == 100
}

// RiskLevelValid reports whether level is within [1,5].
func RiskLevelValid(level uint32) bool {
	return level >= MinRiskLevel && level <= MaxRiskLevel
}

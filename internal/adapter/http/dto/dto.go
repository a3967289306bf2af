package dto

import "github.com/shopspring/decimal"

// RegisterRequest is the request body for guardian registration.
type RegisterRequest struct {
	Address     string `json:"address" binding:"required,safe_id,max=128"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=100"`
}

// LoginRequest is the request body for guardian login.
type LoginRequest struct {
	Address  string `json:"address" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	Address     string `json:"address"`
	DisplayName string `json:"display_name"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	Expiry    int64  `json:"expiry"` // Unix seconds
}

// CreateChildRequest is the request body for opening a child wallet.
type CreateChildRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	BirthDate    int64           `json:"birth_date"`
	TargetAge    uint32          `json:"target_age"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	OwnerName    string          `json:"owner_name" binding:"required,min=1,max=100"`
}

// InvestRequest is the request body for a deposit.
type InvestRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// AddGuardianRequest is the request body for adding a guardian.
type AddGuardianRequest struct {
	Address string `json:"address" binding:"required,safe_id,max=128"`
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Role    string `json:"role" binding:"required"`
}

// UpdateRoleRequest is the request body for changing a guardian's role.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetApprovalsRequest is the request body for the approval threshold.
type SetApprovalsRequest struct {
	RequiredApprovals uint32 `json:"required_approvals"`
}

// AddInstitutionRequest is the request body for whitelisting a payee.
type AddInstitutionRequest struct {
	Address         string `json:"address" binding:"required,safe_id,max=128"`
	Name            string `json:"name" binding:"required,min=1,max=100"`
	InstitutionType string `json:"institution_type" binding:"required"`
}

// PaymentRequest is the request body for paying an institution.
type PaymentRequest struct {
	Institution string          `json:"institution" binding:"required,safe_id,max=128"`
	Amount      decimal.Decimal `json:"amount"`
	Purpose     string          `json:"purpose" binding:"required,max=200"`
}

// CreatePlanRequest is the request body for scheduling deposits.
type CreatePlanRequest struct {
	PlanType        string          `json:"plan_type" binding:"required"`
	AmountPerPeriod decimal.Decimal `json:"amount_per_period"`
	TotalPeriods    uint32          `json:"total_periods"`
}

// StrategyRequest is the request body for the allocation policy.
type StrategyRequest struct {
	StablecoinAllocation uint32   `json:"stablecoin_allocation"`
	DefiAllocation       uint32   `json:"defi_allocation"`
	AutoCompound         bool     `json:"auto_compound"`
	RiskLevel            uint32   `json:"risk_level"`
	PreferredProtocols   []string `json:"preferred_protocols" binding:"max=20,dive,max=64"`
}

// YieldRequest is the request body for recording yield.
type YieldRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	RateBps int64           `json:"rate_bps"`
	Source  string          `json:"source" binding:"required,max=100"`
}

// BalanceResponse is the response for the balance query.
type BalanceResponse struct {
	ChildID string          `json:"child_id"`
	Balance decimal.Decimal `json:"balance"`
}

// SpendableResponse is the response for the age gate query.
type SpendableResponse struct {
	ChildID            string `json:"child_id"`
	IsOldEnoughToSpend bool   `json:"is_old_enough_to_spend"`
}

// PermissionResponse is the response for a role check.
type PermissionResponse struct {
	Address string `json:"address"`
	Role    string `json:"role"`
	Allowed bool   `json:"allowed"`
}

// EmergencyPauseResponse reports the pause flag of a child.
type EmergencyPauseResponse struct {
	ChildID string `json:"child_id"`
	Paused  bool   `json:"paused"`
}

// TotalYieldResponse is the response for the yield sum.
type TotalYieldResponse struct {
	ChildID    string          `json:"child_id"`
	TotalYield decimal.Decimal `json:"total_yield"`
}

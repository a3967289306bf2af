package ports

import (
	"context"
	"time"

	"child-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// --- Collaborator Ports ---

// Clock supplies the trusted current time in Unix seconds.
type Clock interface {
	Now() int64
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(address string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Address string
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimiter counts requests per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// EventPublisher fans committed wallet events out to live subscribers.
type EventPublisher interface {
	Publish(event domain.WalletEvent)
}

// --- Service Ports (Business Logic) ---

// GuardianService owns guardian membership and role checks for a child.
type GuardianService interface {
	Initialize(ctx context.Context, childID, owner, ownerName string) (*domain.GuardianSystem, error)
	AddGuardian(ctx context.Context, req AddGuardianRequest) (*domain.Guardian, error)
	RemoveGuardian(ctx context.Context, childID, caller, address string) error
	UpdateGuardianRole(ctx context.Context, childID, caller, address string, role domain.GuardianRole) error
	SetRequiredApprovals(ctx context.Context, childID, caller string, required uint32) error
	CheckPermission(ctx context.Context, childID, address string, required domain.GuardianRole) (bool, error)
	GetGuardians(ctx context.Context, childID string) (*domain.GuardianSystem, error)
}

// AddGuardianRequest holds validated input for adding a guardian.
type AddGuardianRequest struct {
	ChildID string
	Caller  string
	Address string
	Name    string
	Role    domain.GuardianRole
}

// WalletService owns the child profile, balance, institutions and payments.
type WalletService interface {
	CreateChildProfile(ctx context.Context, req CreateChildRequest) (*domain.ChildProfile, error)
	Invest(ctx context.Context, req InvestRequest) (*domain.Investment, error)
	AddApprovedInstitution(ctx context.Context, req AddInstitutionRequest) (*domain.ApprovedInstitution, error)
	DeactivateInstitution(ctx context.Context, childID, caller, address string) error
	PayToInstitution(ctx context.Context, req InstitutionPaymentRequest) (*domain.InstitutionPayment, error)
	EmergencyPause(ctx context.Context, childID, caller string) error
	LiftEmergencyPause(ctx context.Context, childID, caller string) error

	GetChildProfile(ctx context.Context, childID string) (*domain.ChildProfile, error)
	GetBalance(ctx context.Context, childID string) (decimal.Decimal, error)
	GetInvestmentHistory(ctx context.Context, childID string) ([]domain.Investment, error)
	GetApprovedInstitutions(ctx context.Context, childID string) ([]domain.ApprovedInstitution, error)
	GetInstitutionPayments(ctx context.Context, childID string) ([]domain.InstitutionPayment, error)
	IsOldEnoughToSpend(ctx context.Context, childID string) (bool, error)
	IsEmergencyPaused(ctx context.Context, childID string) (bool, error)
	GetComprehensiveReport(ctx context.Context, childID string) (*domain.ComprehensiveReport, error)
}

// CreateChildRequest holds validated input for opening a child wallet.
type CreateChildRequest struct {
	Caller       string
	Name         string
	BirthDate    int64
	TargetAge    uint32
	TargetAmount decimal.Decimal
	OwnerName    string
}

// InvestRequest holds validated input for a deposit.
type InvestRequest struct {
	ChildID        string
	Caller         string
	Amount         decimal.Decimal
	IdempotencyKey string // optional; scoped to child and operation
}

// AddInstitutionRequest holds validated input for whitelisting a payee.
type AddInstitutionRequest struct {
	ChildID         string
	Caller          string
	Address         string
	Name            string
	InstitutionType domain.InstitutionType
}

// InstitutionPaymentRequest holds validated input for paying an institution.
type InstitutionPaymentRequest struct {
	ChildID        string
	Caller         string
	Institution    string
	Amount         decimal.Decimal
	Purpose        string
	IdempotencyKey string
}

// InvestmentService owns plans, yields and the allocation strategy of a child.
type InvestmentService interface {
	CreatePlan(ctx context.Context, req CreatePlanRequest) (*domain.InvestmentPlan, error)
	ExecuteScheduledPayment(ctx context.Context, childID, caller, planID string) (*domain.InvestmentPlan, error)
	PausePlan(ctx context.Context, childID, caller, planID string) (*domain.InvestmentPlan, error)
	ResumePlan(ctx context.Context, childID, caller, planID string) (*domain.InvestmentPlan, error)
	CancelPlan(ctx context.Context, childID, caller, planID string) (*domain.InvestmentPlan, error)
	SetStrategy(ctx context.Context, req SetStrategyRequest) (*domain.InvestmentStrategy, error)
	RecordYield(ctx context.Context, req RecordYieldRequest) (*domain.YieldRecord, error)

	GetPlan(ctx context.Context, childID, planID string) (*domain.InvestmentPlan, error)
	ActivePlans(ctx context.Context, childID string) ([]domain.InvestmentPlan, error)
	GetStrategy(ctx context.Context, childID string) (*domain.InvestmentStrategy, error)
	TotalYield(ctx context.Context, childID string) (decimal.Decimal, error)
	YieldHistory(ctx context.Context, childID string) ([]domain.YieldRecord, error)
}

// CreatePlanRequest holds validated input for scheduling deposits.
type CreatePlanRequest struct {
	ChildID         string
	Caller          string
	PlanType        domain.PlanType
	AmountPerPeriod decimal.Decimal
	TotalPeriods    uint32
}

// SetStrategyRequest holds validated input for the allocation policy.
type SetStrategyRequest struct {
	ChildID              string
	Caller               string
	StablecoinAllocation uint32
	DefiAllocation       uint32
	AutoCompound         bool
	RiskLevel            uint32
	PreferredProtocols   []string
}

// RecordYieldRequest holds validated input for a yield entry.
type RecordYieldRequest struct {
	ChildID string
	Caller  string
	Amount  decimal.Decimal
	RateBps int64
	Source  string
}

// AuthService defines guardian authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.GuardianCredential, error)
	Login(ctx context.Context, address, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for guardian registration.
type RegisterRequest struct {
	Address     string
	Password    string
	DisplayName string
}

// AuditService records audited actions asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

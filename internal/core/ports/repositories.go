package ports

import (
	"context"
	"errors"
	"time"

	"child-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// ErrDuplicateKey is returned (wrapped) when an insert hits an existing key.
var ErrDuplicateKey = errors.New("duplicate key")

// Repositories return (nil, nil) when a keyed lookup finds nothing.
// Methods accepting pgx.Tx run inside the caller's transaction; the
// ForUpdate variants take a row lock that serializes writers per child.

// ChildRepository persists child profiles and their balance.
type ChildRepository interface {
	Create(ctx context.Context, tx pgx.Tx, profile *domain.ChildProfile) error
	GetByID(ctx context.Context, childID string) (*domain.ChildProfile, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, childID string) (*domain.ChildProfile, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, childID string, balance decimal.Decimal) error
	SetEmergencyPaused(ctx context.Context, tx pgx.Tx, childID string, paused bool) error
}

// GuardianRepository persists guardian systems. Guardians keep insertion order.
type GuardianRepository interface {
	CreateSystem(ctx context.Context, tx pgx.Tx, system *domain.GuardianSystem) error
	GetSystem(ctx context.Context, childID string) (*domain.GuardianSystem, error)
	GetSystemForUpdate(ctx context.Context, tx pgx.Tx, childID string) (*domain.GuardianSystem, error)
	AddGuardian(ctx context.Context, tx pgx.Tx, childID string, guardian *domain.Guardian) error
	RemoveGuardian(ctx context.Context, tx pgx.Tx, childID, address string) error
	UpdateRole(ctx context.Context, tx pgx.Tx, childID, address string, role domain.GuardianRole) error
	SetRequiredApprovals(ctx context.Context, tx pgx.Tx, childID string, required uint32) error
}

// InvestmentRepository is the append-only deposit log.
type InvestmentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, investment *domain.Investment) error
	ListByChild(ctx context.Context, childID string) ([]domain.Investment, error)
}

// InstitutionRepository persists approved institutions per child.
type InstitutionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, institution *domain.ApprovedInstitution) error
	GetForUpdate(ctx context.Context, tx pgx.Tx, childID, address string) (*domain.ApprovedInstitution, error)
	Deactivate(ctx context.Context, tx pgx.Tx, childID, address string) error
	ListByChild(ctx context.Context, childID string) ([]domain.ApprovedInstitution, error)
}

// PaymentRepository is the append-only institution payment log.
type PaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payment *domain.InstitutionPayment) error
	ListByChild(ctx context.Context, childID string) ([]domain.InstitutionPayment, error)
}

// PlanRepository indexes investment plans by id and by child.
type PlanRepository interface {
	Create(ctx context.Context, tx pgx.Tx, plan *domain.InvestmentPlan) error
	GetByID(ctx context.Context, planID string) (*domain.InvestmentPlan, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, planID string) (*domain.InvestmentPlan, error)
	Update(ctx context.Context, tx pgx.Tx, plan *domain.InvestmentPlan) error
	ListByChild(ctx context.Context, childID string, status *domain.PlanStatus) ([]domain.InvestmentPlan, error)
}

// YieldRepository is the append-only yield log.
type YieldRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.YieldRecord) error
	ListByChild(ctx context.Context, childID string) ([]domain.YieldRecord, error)
	SumByChild(ctx context.Context, childID string) (decimal.Decimal, error)
}

// StrategyRepository holds one allocation strategy per child.
type StrategyRepository interface {
	Upsert(ctx context.Context, tx pgx.Tx, strategy *domain.InvestmentStrategy) error
	Get(ctx context.Context, childID string) (*domain.InvestmentStrategy, error)
}

// CredentialRepository persists guardian login credentials.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.GuardianCredential) error
	GetByAddress(ctx context.Context, address string) (*domain.GuardianCredential, error)
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repositories bundles every store the services need.
type Repositories struct {
	Children     ChildRepository
	Guardians    GuardianRepository
	Investments  InvestmentRepository
	Institutions InstitutionRepository
	Payments     PaymentRepository
	Plans        PlanRepository
	Yields       YieldRepository
	Strategies   StrategyRepository
	Credentials  CredentialRepository
	Idempotency  IdempotencyRepository
	Audit        AuditRepository
	Transactor   DBTransactor
}

package postgres

import (
	"context"
	"fmt"

	"child-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// StrategyRepo implements ports.StrategyRepository.
type StrategyRepo struct {
	pool Pool
}

// NewStrategyRepo creates a new StrategyRepo.
func NewStrategyRepo(pool Pool) *StrategyRepo {
	return &StrategyRepo{pool: pool}
}

// Upsert replaces the child's strategy within a transaction.
func (r *StrategyRepo) Upsert(ctx context.Context, tx pgx.Tx, s *domain.InvestmentStrategy) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO investment_strategies
			(child_id, stablecoin_allocation, defi_allocation, auto_compound, risk_level, preferred_protocols)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (child_id) DO UPDATE SET
			stablecoin_allocation = EXCLUDED.stablecoin_allocation,
			defi_allocation       = EXCLUDED.defi_allocation,
			auto_compound         = EXCLUDED.auto_compound,
			risk_level            = EXCLUDED.risk_level,
			preferred_protocols   = EXCLUDED.preferred_protocols`,
		s.ChildID, s.StablecoinAllocation, s.DefiAllocation, s.AutoCompound, s.RiskLevel, s.PreferredProtocols,
	)
	if err != nil {
		return fmt.Errorf("upsert investment strategy: %w", err)
	}
	return nil
}

// Get fetches the child's strategy.
func (r *StrategyRepo) Get(ctx context.Context, childID string) (*domain.InvestmentStrategy, error) {
	s := &domain.InvestmentStrategy{}
	err := r.pool.QueryRow(ctx,
		`SELECT child_id, stablecoin_allocation, defi_allocation, auto_compound, risk_level, preferred_protocols
		FROM investment_strategies WHERE child_id = $1`,
		childID,
	).Scan(&s.ChildID, &s.StablecoinAllocation, &s.DefiAllocation, &s.AutoCompound, &s.RiskLevel, &s.PreferredProtocols)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get investment strategy: %w", err)
	}
	return s, nil
}

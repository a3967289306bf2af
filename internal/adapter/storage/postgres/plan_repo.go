package postgres

import (
	"context"
	"fmt"

	"child-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const planColumns = `id, child_id, investor, plan_type, amount_per_period, total_periods,
	completed_periods, next_payment_date, status, created_at, last_payment`

// PlanRepo implements ports.PlanRepository.
type PlanRepo struct {
	pool Pool
}

// NewPlanRepo creates a new PlanRepo.
func NewPlanRepo(pool Pool) *PlanRepo {
	return &PlanRepo{pool: pool}
}

// Create inserts a plan within a transaction.
func (r *PlanRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.InvestmentPlan) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO investment_plans (`+planColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.ChildID, p.Investor, p.PlanType, p.AmountPerPeriod, p.TotalPeriods,
		p.CompletedPeriods, p.NextPaymentDate, p.Status, p.CreatedAt, p.LastPayment,
	)
	if err != nil {
		return insertErr("insert investment plan", err)
	}
	return nil
}

// GetByID fetches a plan (without locking).
func (r *PlanRepo) GetByID(ctx context.Context, planID string) (*domain.InvestmentPlan, error) {
	return scanPlan(r.pool.QueryRow(ctx, `SELECT `+planColumns+` FROM investment_plans WHERE id = $1`, planID))
}

// GetByIDForUpdate fetches a plan with pessimistic locking.
// This MUST be called within a transaction.
func (r *PlanRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, planID string) (*domain.InvestmentPlan, error) {
	return scanPlan(tx.QueryRow(ctx, `SELECT `+planColumns+` FROM investment_plans WHERE id = $1 FOR UPDATE`, planID))
}

// Update writes back the mutable schedule fields of a plan.
func (r *PlanRepo) Update(ctx context.Context, tx pgx.Tx, p *domain.InvestmentPlan) error {
	tag, err := tx.Exec(ctx,
		`UPDATE investment_plans SET completed_periods = $1, next_payment_date = $2, status = $3, last_payment = $4
		WHERE id = $5`,
		p.CompletedPeriods, p.NextPaymentDate, p.Status, p.LastPayment, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update investment plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("investment plan not found: %s", p.ID)
	}
	return nil
}

// ListByChild returns a child's plans in creation order, optionally filtered by status.
func (r *PlanRepo) ListByChild(ctx context.Context, childID string, status *domain.PlanStatus) ([]domain.InvestmentPlan, error) {
	query := `SELECT ` + planColumns + ` FROM investment_plans WHERE child_id = $1`
	args := []any{childID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list investment plans: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InvestmentPlan, error) {
		p, err := scanPlan(row)
		if err != nil {
			return domain.InvestmentPlan{}, err
		}
		return *p, nil
	})
}

func scanPlan(row pgx.Row) (*domain.InvestmentPlan, error) {
	p := &domain.InvestmentPlan{}
	err := row.Scan(
		&p.ID, &p.ChildID, &p.Investor, &p.PlanType, &p.AmountPerPeriod, &p.TotalPeriods,
		&p.CompletedPeriods, &p.NextPaymentDate, &p.Status, &p.CreatedAt, &p.LastPayment,
	)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan investment plan: %w", err)
	}
	return p, nil
}

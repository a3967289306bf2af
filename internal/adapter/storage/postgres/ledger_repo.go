package postgres

import (
	"context"
	"fmt"

	"child-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// InvestmentRepo implements ports.InvestmentRepository.
type InvestmentRepo struct {
	pool Pool
}

// NewInvestmentRepo creates a new InvestmentRepo.
func NewInvestmentRepo(pool Pool) *InvestmentRepo {
	return &InvestmentRepo{pool: pool}
}

// Create appends a deposit within a transaction.
func (r *InvestmentRepo) Create(ctx context.Context, tx pgx.Tx, inv *domain.Investment) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO investments (child_id, amount, timestamp, investor, plan_id) VALUES ($1, $2, $3, $4, $5)`,
		inv.ChildID, inv.Amount, inv.Timestamp, inv.Investor, inv.PlanID,
	)
	if err != nil {
		return insertErr("insert investment", err)
	}
	return nil
}

// ListByChild returns a child's deposits oldest first.
func (r *InvestmentRepo) ListByChild(ctx context.Context, childID string) ([]domain.Investment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT child_id, amount, timestamp, investor, plan_id FROM investments WHERE child_id = $1 ORDER BY seq`,
		childID,
	)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Investment, error) {
		var inv domain.Investment
		err := row.Scan(&inv.ChildID, &inv.Amount, &inv.Timestamp, &inv.Investor, &inv.PlanID)
		return inv, err
	})
}

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create appends an institution payment within a transaction.
func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.InstitutionPayment) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO institution_payments (child_id, amount, institution, institution_name, payment_purpose, timestamp, paid_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ChildID, p.Amount, p.Institution, p.InstitutionName, p.PaymentPurpose, p.Timestamp, p.PaidBy,
	)
	if err != nil {
		return insertErr("insert institution payment", err)
	}
	return nil
}

// ListByChild returns a child's payments oldest first.
func (r *PaymentRepo) ListByChild(ctx context.Context, childID string) ([]domain.InstitutionPayment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT child_id, amount, institution, institution_name, payment_purpose, timestamp, paid_by
		FROM institution_payments WHERE child_id = $1 ORDER BY seq`,
		childID,
	)
	if err != nil {
		return nil, fmt.Errorf("list institution payments: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InstitutionPayment, error) {
		var p domain.InstitutionPayment
		err := row.Scan(&p.ChildID, &p.Amount, &p.Institution, &p.InstitutionName, &p.PaymentPurpose, &p.Timestamp, &p.PaidBy)
		return p, err
	})
}

// YieldRepo implements ports.YieldRepository.
type YieldRepo struct {
	pool Pool
}

// NewYieldRepo creates a new YieldRepo.
func NewYieldRepo(pool Pool) *YieldRepo {
	return &YieldRepo{pool: pool}
}

// Create appends a yield record within a transaction.
func (r *YieldRepo) Create(ctx context.Context, tx pgx.Tx, y *domain.YieldRecord) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO yield_records (child_id, yield_amount, yield_rate, generated_at, source) VALUES ($1, $2, $3, $4, $5)`,
		y.ChildID, y.YieldAmount, y.YieldRate, y.GeneratedAt, y.Source,
	)
	if err != nil {
		return insertErr("insert yield record", err)
	}
	return nil
}

// ListByChild returns a child's yield records oldest first.
func (r *YieldRepo) ListByChild(ctx context.Context, childID string) ([]domain.YieldRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT child_id, yield_amount, yield_rate, generated_at, source FROM yield_records WHERE child_id = $1 ORDER BY seq`,
		childID,
	)
	if err != nil {
		return nil, fmt.Errorf("list yield records: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.YieldRecord, error) {
		var y domain.YieldRecord
		err := row.Scan(&y.ChildID, &y.YieldAmount, &y.YieldRate, &y.GeneratedAt, &y.Source)
		return y, err
	})
}

// SumByChild totals a child's yield; zero when there are no records.
func (r *YieldRepo) SumByChild(ctx context.Context, childID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(yield_amount), 0) FROM yield_records WHERE child_id = $1`,
		childID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum yield records: %w", err)
	}
	return total, nil
}

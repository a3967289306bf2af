package postgres

import (
	"context"
	"fmt"

	"child-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const childColumns = `id, name, birth_date, target_age, target_amount, current_balance,
	created_at, owner, guardian_system_id, emergency_paused`

// ChildRepo implements ports.ChildRepository.
type ChildRepo struct {
	pool Pool
}

// NewChildRepo creates a new ChildRepo.
func NewChildRepo(pool Pool) *ChildRepo {
	return &ChildRepo{pool: pool}
}

// Create inserts a new child profile within a transaction.
func (r *ChildRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.ChildProfile) error {
	query := `INSERT INTO child_profiles (` + childColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.Name, p.BirthDate, p.TargetAge, p.TargetAmount, p.CurrentBalance,
		p.CreatedAt, p.Owner, p.GuardianSystemID, p.EmergencyPaused,
	)
	if err != nil {
		return insertErr("insert child profile", err)
	}
	return nil
}

// GetByID fetches a child profile (without locking).
func (r *ChildRepo) GetByID(ctx context.Context, childID string) (*domain.ChildProfile, error) {
	query := `SELECT ` + childColumns + ` FROM child_profiles WHERE id = $1`
	return scanChild(r.pool.QueryRow(ctx, query, childID))
}

// GetByIDForUpdate fetches a child profile with pessimistic locking.
// This MUST be called within a transaction.
func (r *ChildRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, childID string) (*domain.ChildProfile, error) {
	query := `SELECT ` + childColumns + ` FROM child_profiles WHERE id = $1 FOR UPDATE`
	return scanChild(tx.QueryRow(ctx, query, childID))
}

// UpdateBalance sets the child's balance within a transaction.
func (r *ChildRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, childID string, balance decimal.Decimal) error {
	tag, err := tx.Exec(ctx, `UPDATE child_profiles SET current_balance = $1 WHERE id = $2`, balance, childID)
	if err != nil {
		return fmt.Errorf("update child balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("child profile not found: %s", childID)
	}
	return nil
}

// SetEmergencyPaused sets the emergency pause flag within a transaction.
func (r *ChildRepo) SetEmergencyPaused(ctx context.Context, tx pgx.Tx, childID string, paused bool) error {
	tag, err := tx.Exec(ctx, `UPDATE child_profiles SET emergency_paused = $1 WHERE id = $2`, paused, childID)
	if err != nil {
		return fmt.Errorf("set emergency pause: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("child profile not found: %s", childID)
	}
	return nil
}

func scanChild(row pgx.Row) (*domain.ChildProfile, error) {
	p := &domain.ChildProfile{}
	err := row.Scan(
		&p.ID, &p.Name, &p.BirthDate, &p.TargetAge, &p.TargetAmount, &p.CurrentBalance,
		&p.CreatedAt, &p.Owner, &p.GuardianSystemID, &p.EmergencyPaused,
	)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan child profile: %w", err)
	}
	return p, nil
}

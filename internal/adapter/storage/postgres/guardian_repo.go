package postgres

import (
	"context"
	"fmt"

	"child-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// GuardianRepo implements ports.GuardianRepository. The guardian_systems row
// is the lock target; guardians are read back in insertion order.
type GuardianRepo struct {
	pool Pool
}

// NewGuardianRepo creates a new GuardianRepo.
func NewGuardianRepo(pool Pool) *GuardianRepo {
	return &GuardianRepo{pool: pool}
}

// querier is satisfied by both Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateSystem inserts the system row and its initial guardians.
func (r *GuardianRepo) CreateSystem(ctx context.Context, tx pgx.Tx, s *domain.GuardianSystem) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO guardian_systems (child_id, required_approvals) VALUES ($1, $2)`,
		s.ChildID, s.RequiredApprovals,
	)
	if err != nil {
		return insertErr("insert guardian system", err)
	}
	for i := range s.Guardians {
		if err := r.AddGuardian(ctx, tx, s.ChildID, &s.Guardians[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetSystem fetches a guardian system (without locking).
func (r *GuardianRepo) GetSystem(ctx context.Context, childID string) (*domain.GuardianSystem, error) {
	return loadSystem(ctx, r.pool, `SELECT child_id, required_approvals FROM guardian_systems WHERE child_id = $1`, childID)
}

// GetSystemForUpdate fetches a guardian system and locks its row.
// This MUST be called within a transaction.
func (r *GuardianRepo) GetSystemForUpdate(ctx context.Context, tx pgx.Tx, childID string) (*domain.GuardianSystem, error) {
	return loadSystem(ctx, tx, `SELECT child_id, required_approvals FROM guardian_systems WHERE child_id = $1 FOR UPDATE`, childID)
}

func loadSystem(ctx context.Context, q querier, query, childID string) (*domain.GuardianSystem, error) {
	s := &domain.GuardianSystem{}
	if err := q.QueryRow(ctx, query, childID).Scan(&s.ChildID, &s.RequiredApprovals); err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guardian system: %w", err)
	}

	rows, err := q.Query(ctx,
		`SELECT address, name, role, added_at, added_by FROM guardians WHERE child_id = $1 ORDER BY seq`,
		childID,
	)
	if err != nil {
		return nil, fmt.Errorf("list guardians: %w", err)
	}
	defer rows.Close()

	s.Guardians = []domain.Guardian{}
	for rows.Next() {
		g := domain.Guardian{}
		if err := rows.Scan(&g.Address, &g.Name, &g.Role, &g.AddedAt, &g.AddedBy); err != nil {
			return nil, fmt.Errorf("scan guardian row: %w", err)
		}
		s.Guardians = append(s.Guardians, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate guardian rows: %w", err)
	}
	return s, nil
}

// AddGuardian appends a guardian to the child's system.
func (r *GuardianRepo) AddGuardian(ctx context.Context, tx pgx.Tx, childID string, g *domain.Guardian) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO guardians (child_id, address, name, role, added_at, added_by) VALUES ($1, $2, $3, $4, $5, $6)`,
		childID, g.Address, g.Name, g.Role, g.AddedAt, g.AddedBy,
	)
	if err != nil {
		return insertErr("insert guardian", err)
	}
	return nil
}

// RemoveGuardian deletes a guardian; the remaining order is unchanged.
func (r *GuardianRepo) RemoveGuardian(ctx context.Context, tx pgx.Tx, childID, address string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM guardians WHERE child_id = $1 AND address = $2`, childID, address)
	if err != nil {
		return fmt.Errorf("delete guardian: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("guardian not found: %s", address)
	}
	return nil
}

// UpdateRole changes a guardian's role in place.
func (r *GuardianRepo) UpdateRole(ctx context.Context, tx pgx.Tx, childID, address string, role domain.GuardianRole) error {
	tag, err := tx.Exec(ctx, `UPDATE guardians SET role = $1 WHERE child_id = $2 AND address = $3`, role, childID, address)
	if err != nil {
		return fmt.Errorf("update guardian role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("guardian not found: %s", address)
	}
	return nil
}

// SetRequiredApprovals updates the approval threshold.
func (r *GuardianRepo) SetRequiredApprovals(ctx context.Context, tx pgx.Tx, childID string, required uint32) error {
	tag, err := tx.Exec(ctx, `UPDATE guardian_systems SET required_approvals = $1 WHERE child_id = $2`, required, childID)
	if err != nil {
		return fmt.Errorf("set required approvals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("guardian system not found: %s", childID)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"child-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const institutionColumns = `child_id, address, name, institution_type, approved_at, approved_by, is_active`

// InstitutionRepo implements ports.InstitutionRepository.
type InstitutionRepo struct {
	pool Pool
}

// NewInstitutionRepo creates a new InstitutionRepo.
func NewInstitutionRepo(pool Pool) *InstitutionRepo {
	return &InstitutionRepo{pool: pool}
}

// Create approves an institution for a child within a transaction.
func (r *InstitutionRepo) Create(ctx context.Context, tx pgx.Tx, in *domain.ApprovedInstitution) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO approved_institutions (`+institutionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		in.ChildID, in.Address, in.Name, in.InstitutionType, in.ApprovedAt, in.ApprovedBy, in.IsActive,
	)
	if err != nil {
		return insertErr("insert approved institution", err)
	}
	return nil
}

// GetForUpdate fetches an institution with pessimistic locking.
// This MUST be called within a transaction.
func (r *InstitutionRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, childID, address string) (*domain.ApprovedInstitution, error) {
	in := &domain.ApprovedInstitution{}
	err := tx.QueryRow(ctx,
		`SELECT `+institutionColumns+` FROM approved_institutions WHERE child_id = $1 AND address = $2 FOR UPDATE`,
		childID, address,
	).Scan(&in.ChildID, &in.Address, &in.Name, &in.InstitutionType, &in.ApprovedAt, &in.ApprovedBy, &in.IsActive)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get institution for update: %w", err)
	}
	return in, nil
}

// Deactivate clears is_active; the record itself is kept.
func (r *InstitutionRepo) Deactivate(ctx context.Context, tx pgx.Tx, childID, address string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE approved_institutions SET is_active = FALSE WHERE child_id = $1 AND address = $2`,
		childID, address,
	)
	if err != nil {
		return fmt.Errorf("deactivate institution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("institution not found: %s", address)
	}
	return nil
}

// ListByChild returns every institution ever approved for the child, in approval order.
func (r *InstitutionRepo) ListByChild(ctx context.Context, childID string) ([]domain.ApprovedInstitution, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+institutionColumns+` FROM approved_institutions WHERE child_id = $1 ORDER BY seq`,
		childID,
	)
	if err != nil {
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ApprovedInstitution, error) {
		var in domain.ApprovedInstitution
		err := row.Scan(&in.ChildID, &in.Address, &in.Name, &in.InstitutionType, &in.ApprovedAt, &in.ApprovedBy, &in.IsActive)
		return in, err
	})
}

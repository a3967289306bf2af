package postgres

import (
	"context"
	"fmt"

	"child-wallet/internal/core/domain"
)

// CredentialRepo implements ports.CredentialRepository.
type CredentialRepo struct {
	pool Pool
}

// NewCredentialRepo creates a new CredentialRepo.
func NewCredentialRepo(pool Pool) *CredentialRepo {
	return &CredentialRepo{pool: pool}
}

// Create registers a guardian login.
func (r *CredentialRepo) Create(ctx context.Context, c *domain.GuardianCredential) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO guardian_credentials (address, display_name, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		c.Address, c.DisplayName, c.PasswordHash, c.CreatedAt,
	)
	if err != nil {
		return insertErr("insert guardian credential", err)
	}
	return nil
}

// GetByAddress fetches a credential by guardian address.
func (r *CredentialRepo) GetByAddress(ctx context.Context, address string) (*domain.GuardianCredential, error) {
	c := &domain.GuardianCredential{}
	err := r.pool.QueryRow(ctx,
		`SELECT address, display_name, password_hash, created_at FROM guardian_credentials WHERE address = $1`,
		address,
	).Scan(&c.Address, &c.DisplayName, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guardian credential: %w", err)
	}
	return c, nil
}

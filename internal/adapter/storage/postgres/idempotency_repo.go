package postgres

import (
	"context"
	"fmt"
	"time"

	"child-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// IdempotencyRepo stores committed responses of deposits and payments,
// keyed by child, operation and client key.
type IdempotencyRepo struct {
	pool Pool
}

func NewIdempotencyRepo(pool Pool) *IdempotencyRepo {
	return &IdempotencyRepo{pool: pool}
}

// Create writes the log in the same transaction as the money movement.
func (r *IdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO idempotency_logs (key, response_json, created_at) VALUES ($1, $2, $3)`,
		log.Key, log.ResponseJSON, log.CreatedAt,
	)
	if err != nil {
		return insertErr("insert idempotency log", err)
	}
	return nil
}

// Get returns the log for key, or nil.
func (r *IdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	log := &domain.IdempotencyLog{}
	err := r.pool.QueryRow(ctx,
		`SELECT key, response_json, created_at FROM idempotency_logs WHERE key = $1`,
		key,
	).Scan(&log.Key, &log.ResponseJSON, &log.CreatedAt)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idempotency log: %w", err)
	}
	return log, nil
}

// DeleteBefore purges logs older than cutoff and reports how many went.
func (r *IdempotencyRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM idempotency_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge idempotency logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

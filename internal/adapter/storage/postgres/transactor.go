package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// LockTimeout bounds how long a transaction waits on another request's
// child row lock before failing.
const LockTimeout = 5 * time.Second

// Transactor implements ports.DBTransactor. Every transaction it opens
// carries a local lock_timeout so a stuck wallet cannot pin the pool.
type Transactor struct {
	pool        Pool
	lockTimeout time.Duration
}

func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool, lockTimeout: LockTimeout}
}

// Begin opens a transaction and applies the lock timeout to it.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", t.lockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, stmt); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("set lock timeout: %w", err)
	}
	return tx, nil
}

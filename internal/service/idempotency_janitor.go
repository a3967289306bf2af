package service

import (
	"context"
	"fmt"
	"time"

	"child-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// IdempotencyJanitor drops idempotency logs once they leave the replay
// window the Redis cache also honours. After that a reused key is a new
// request.
type IdempotencyJanitor struct {
	repo      ports.IdempotencyRepository
	clock     ports.Clock
	retention time.Duration
	log       zerolog.Logger
}

func NewIdempotencyJanitor(repo ports.IdempotencyRepository, clock ports.Clock, log zerolog.Logger) *IdempotencyJanitor {
	return &IdempotencyJanitor{repo: repo, clock: clock, retention: idempotencyTTL, log: log}
}

// PurgeOnce deletes every log older than the retention window.
func (j *IdempotencyJanitor) PurgeOnce(ctx context.Context) (int64, error) {
	cutoff := time.Unix(j.clock.Now(), 0).UTC().Add(-j.retention)
	n, err := j.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge idempotency logs: %w", err)
	}
	if n > 0 {
		j.log.Info().Int64("purged", n).Time("cutoff", cutoff).Msg("Idempotency logs purged")
	}
	return n, nil
}

// Run purges every interval until ctx ends.
func (j *IdempotencyJanitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := j.PurgeOnce(ctx); err != nil && ctx.Err() == nil {
				j.log.Warn().Err(err).Msg("Idempotency purge failed")
			}
		}
	}
}

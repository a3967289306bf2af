package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/apperror"
	"child-wallet/pkg/telemetry"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const idempotencyTTL = 24 * time.Hour

// SystemClock implements ports.Clock with the wall clock.
type SystemClock struct{}

// Now returns the current Unix time in seconds.
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

func startSpan(ctx context.Context, name, childID string) (context.Context, trace.Span) {
	return telemetry.Tracer().Start(ctx, name, trace.WithAttributes(attribute.String("child.id", childID)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func internalErr(op string, err error) error {
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}

// lockChild takes the child row lock, then checks the caller's role and the
// pause flag, in that order, so callers without a role never learn whether
// the wallet is paused. Every wallet and ledger mutator starts here.
func lockChild(
	ctx context.Context,
	tx pgx.Tx,
	children ports.ChildRepository,
	guardians ports.GuardianRepository,
	childID, caller string,
	required domain.GuardianRole,
) (*domain.ChildProfile, error) {
	profile, err := children.GetByIDForUpdate(ctx, tx, childID)
	if err != nil {
		return nil, internalErr("lock child", err)
	}
	if profile == nil {
		return nil, apperror.ErrProfileNotFound()
	}
	if err := authorizeTx(ctx, tx, guardians, childID, caller, required); err != nil {
		return nil, err
	}
	if profile.EmergencyPaused {
		return nil, apperror.ErrEmergencyPaused()
	}
	return profile, nil
}

func authorizeTx(ctx context.Context, tx pgx.Tx, guardians ports.GuardianRepository, childID, caller string, required domain.GuardianRole) error {
	gs, err := guardians.GetSystemForUpdate(ctx, tx, childID)
	if err != nil {
		return internalErr("load guardians", err)
	}
	if gs == nil || !gs.HasPermission(caller, required) {
		return apperror.ErrUnauthorized()
	}
	return nil
}

func publish(events ports.EventPublisher, ev domain.WalletEvent) {
	if events != nil {
		events.Publish(ev)
	}
}

// Fanout delivers every event to each publisher in order.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(ev domain.WalletEvent) {
	for _, p := range f {
		publish(p, ev)
	}
}

// idempotencyGuard is the two-layer replay check: Redis first, then the
// idempotency log written in the same transaction as the mutation.
type idempotencyGuard struct {
	repo  ports.IdempotencyRepository
	cache ports.IdempotencyCache
	log   zerolog.Logger
}

// lookup returns the stored response for key, or nil.
func (g idempotencyGuard) lookup(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	if g.cache != nil {
		cached, err := g.cache.Get(ctx, key)
		if err != nil {
			g.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
		}
		if cached != nil {
			return cached, nil
		}
	}

	entry, err := g.repo.Get(ctx, key)
	if err != nil {
		return nil, internalErr("db idempotency check", err)
	}
	if entry != nil {
		return entry.ResponseJSON, nil
	}
	return nil, nil
}

// save records v under key inside tx and returns its JSON.
func (g idempotencyGuard) save(ctx context.Context, tx pgx.Tx, key string, v any, now time.Time) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	respJSON, err := json.Marshal(v)
	if err != nil {
		return nil, internalErr("marshal response", err)
	}
	if err := g.repo.Create(ctx, tx, &domain.IdempotencyLog{Key: key, ResponseJSON: respJSON, CreatedAt: now}); err != nil {
		return nil, internalErr("save idempotency log", err)
	}
	return respJSON, nil
}

// remember caches a committed response (best-effort).
func (g idempotencyGuard) remember(ctx context.Context, key string, respJSON []byte) {
	if key == "" || g.cache == nil {
		return
	}
	if err := g.cache.Set(ctx, key, respJSON, idempotencyTTL); err != nil {
		g.log.Warn().Err(err).Str("key", key).Msg("failed to cache idempotency in redis")
	}
}

func replay[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, internalErr("unmarshal cached response", err)
	}
	return &v, nil
}

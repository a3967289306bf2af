// Package memory is a process-local storage adapter. A write transaction
// works on its own copy-on-write view of the tables and publishes it on
// commit, so reads outside the transaction only ever see committed state.
package memory

import (
	"context"
	"errors"
	"maps"
	"sync"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

var errForeignTx = errors.New("memory: transaction does not belong to this store")

// tables holds the transactional collections. A published tables value is
// never written again; transactions clone a map before touching it.
type tables struct {
	children     map[string]domain.ChildProfile
	guardians    map[string]domain.GuardianSystem
	investments  map[string][]domain.Investment
	institutions map[string][]domain.ApprovedInstitution
	payments     map[string][]domain.InstitutionPayment
	plans        map[string]domain.InvestmentPlan
	plansByChild map[string][]string
	yields       map[string][]domain.YieldRecord
	strategies   map[string]domain.InvestmentStrategy
	idempotency  map[string]domain.IdempotencyLog
}

// Store holds the committed tables plus the non-transactional credentials
// and audit trail.
type Store struct {
	sem chan struct{} // one open write transaction at a time
	mu  sync.RWMutex

	committed   tables
	credentials map[string]domain.GuardianCredential
	audit       []domain.AuditLog
}

// New creates an empty store.
func New() *Store {
	return &Store{
		sem: make(chan struct{}, 1),
		committed: tables{
			children:     make(map[string]domain.ChildProfile),
			guardians:    make(map[string]domain.GuardianSystem),
			investments:  make(map[string][]domain.Investment),
			institutions: make(map[string][]domain.ApprovedInstitution),
			payments:     make(map[string][]domain.InstitutionPayment),
			plans:        make(map[string]domain.InvestmentPlan),
			plansByChild: make(map[string][]string),
			yields:       make(map[string][]domain.YieldRecord),
			strategies:   make(map[string]domain.InvestmentStrategy),
			idempotency:  make(map[string]domain.IdempotencyLog),
		},
		credentials: make(map[string]domain.GuardianCredential),
	}
}

// Repositories exposes the store through the repository ports.
func (s *Store) Repositories() ports.Repositories {
	return ports.Repositories{
		Children:     &ChildRepo{s: s},
		Guardians:    &GuardianRepo{s: s},
		Investments:  &InvestmentRepo{s: s},
		Institutions: &InstitutionRepo{s: s},
		Payments:     &PaymentRepo{s: s},
		Plans:        &PlanRepo{s: s},
		Yields:       &YieldRepo{s: s},
		Strategies:   &StrategyRepo{s: s},
		Credentials:  &CredentialRepo{s: s},
		Idempotency:  &IdempotencyRepo{s: s},
		Audit:        &AuditRepo{s: s},
		Transactor:   &Transactor{s: s},
	}
}

// Transactor implements ports.DBTransactor for the memory store.
type Transactor struct {
	s *Store
}

// Begin waits for the previous transaction to finish or ctx to end.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := t.s.acquire(ctx); err != nil {
		return nil, err
	}
	t.s.mu.RLock()
	base := t.s.committed
	t.s.mu.RUnlock()
	return &memTx{s: t.s, work: base}, nil
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() { <-s.sem }

// cloned records which maps of work the transaction already owns.
type cloned struct {
	children, guardians, investments, institutions, payments bool
	plans, plansByChild, yields, strategies, idempotency     bool
}

// memTx satisfies pgx.Tx for the repositories in this package. Only Commit
// and Rollback are implemented; the embedded interface is never set.
type memTx struct {
	pgx.Tx
	s      *Store
	work   tables
	cloned cloned
	done   bool
}

func (tx *memTx) Commit(context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.done = true
	tx.s.mu.Lock()
	tx.s.committed = tx.work
	tx.s.mu.Unlock()
	tx.s.release()
	return nil
}

func (tx *memTx) Rollback(context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.done = true
	tx.work = tables{}
	tx.s.release()
	return nil
}

// own returns *m, cloning it first the first time this transaction writes it.
func own[K comparable, V any](done *bool, m *map[K]V) map[K]V {
	if !*done {
		*m = maps.Clone(*m)
		*done = true
	}
	return *m
}

// writable returns the transaction's private tables for fn to modify.
// Each accessor clones its map on first use.
type writable struct{ tx *memTx }

func (w writable) children() map[string]domain.ChildProfile {
	return own(&w.tx.cloned.children, &w.tx.work.children)
}

func (w writable) guardians() map[string]domain.GuardianSystem {
	return own(&w.tx.cloned.guardians, &w.tx.work.guardians)
}

func (w writable) investments() map[string][]domain.Investment {
	return own(&w.tx.cloned.investments, &w.tx.work.investments)
}

func (w writable) institutions() map[string][]domain.ApprovedInstitution {
	return own(&w.tx.cloned.institutions, &w.tx.work.institutions)
}

func (w writable) payments() map[string][]domain.InstitutionPayment {
	return own(&w.tx.cloned.payments, &w.tx.work.payments)
}

func (w writable) plans() map[string]domain.InvestmentPlan {
	return own(&w.tx.cloned.plans, &w.tx.work.plans)
}

func (w writable) plansByChild() map[string][]string {
	return own(&w.tx.cloned.plansByChild, &w.tx.work.plansByChild)
}

func (w writable) yields() map[string][]domain.YieldRecord {
	return own(&w.tx.cloned.yields, &w.tx.work.yields)
}

func (w writable) strategies() map[string]domain.InvestmentStrategy {
	return own(&w.tx.cloned.strategies, &w.tx.work.strategies)
}

func (w writable) idempotency() map[string]domain.IdempotencyLog {
	return own(&w.tx.cloned.idempotency, &w.tx.work.idempotency)
}

func (s *Store) txOf(tx pgx.Tx) (*memTx, error) {
	mt, ok := tx.(*memTx)
	if !ok || mt.s != s {
		return nil, errForeignTx
	}
	if mt.done {
		return nil, pgx.ErrTxClosed
	}
	return mt, nil
}

// write runs fn against the transaction's private tables. fn sees its
// earlier writes; other readers do not until Commit.
func (s *Store) write(tx pgx.Tx, fn func(w writable) error) error {
	mt, err := s.txOf(tx)
	if err != nil {
		return err
	}
	return fn(writable{tx: mt})
}

// viewTx returns the tables as seen inside tx.
func (s *Store) viewTx(tx pgx.Tx) (*tables, error) {
	mt, err := s.txOf(tx)
	if err != nil {
		return nil, err
	}
	return &mt.work, nil
}

// read runs fn against the committed tables.
func (s *Store) read(fn func(t *tables)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.committed)
}

package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func cloneSystem(gs domain.GuardianSystem) *domain.GuardianSystem {
	gs.Guardians = slices.Clone(gs.Guardians)
	return &gs
}

// --- Children ---

// ChildRepo implements ports.ChildRepository.
type ChildRepo struct{ s *Store }

func (r *ChildRepo) Create(_ context.Context, tx pgx.Tx, p *domain.ChildProfile) error {
	return r.s.write(tx, func(w writable) error {
		children := w.children()
		if _, ok := children[p.ID]; ok {
			return fmt.Errorf("%w: child %s", ports.ErrDuplicateKey, p.ID)
		}
		children[p.ID] = *p
		return nil
	})
}

func lookup[V any](m map[string]V, key string) *V {
	v, ok := m[key]
	if !ok {
		return nil
	}
	return &v
}

func (r *ChildRepo) GetByID(_ context.Context, childID string) (p *domain.ChildProfile, _ error) {
	r.s.read(func(t *tables) { p = lookup(t.children, childID) })
	return p, nil
}

func (r *ChildRepo) GetByIDForUpdate(_ context.Context, tx pgx.Tx, childID string) (*domain.ChildProfile, error) {
	t, err := r.s.viewTx(tx)
	if err != nil {
		return nil, err
	}
	return lookup(t.children, childID), nil
}

// update applies fn to a copy of the child and stores it in tx.
func (r *ChildRepo) update(tx pgx.Tx, childID string, fn func(p *domain.ChildProfile)) error {
	return r.s.write(tx, func(w writable) error {
		children := w.children()
		p, ok := children[childID]
		if !ok {
			return fmt.Errorf("child %s not found", childID)
		}
		fn(&p)
		children[childID] = p
		return nil
	})
}

func (r *ChildRepo) UpdateBalance(_ context.Context, tx pgx.Tx, childID string, balance decimal.Decimal) error {
	return r.update(tx, childID, func(p *domain.ChildProfile) { p.CurrentBalance = balance })
}

func (r *ChildRepo) SetEmergencyPaused(_ context.Context, tx pgx.Tx, childID string, paused bool) error {
	return r.update(tx, childID, func(p *domain.ChildProfile) { p.EmergencyPaused = paused })
}

// --- Guardians ---

// GuardianRepo implements ports.GuardianRepository.
type GuardianRepo struct{ s *Store }

func (r *GuardianRepo) CreateSystem(_ context.Context, tx pgx.Tx, gs *domain.GuardianSystem) error {
	return r.s.write(tx, func(w writable) error {
		systems := w.guardians()
		if _, ok := systems[gs.ChildID]; ok {
			return fmt.Errorf("%w: guardian system %s", ports.ErrDuplicateKey, gs.ChildID)
		}
		systems[gs.ChildID] = *cloneSystem(*gs)
		return nil
	})
}

func systemOf(t *tables, childID string) *domain.GuardianSystem {
	gs, ok := t.guardians[childID]
	if !ok {
		return nil
	}
	return cloneSystem(gs)
}

func (r *GuardianRepo) GetSystem(_ context.Context, childID string) (gs *domain.GuardianSystem, _ error) {
	r.s.read(func(t *tables) { gs = systemOf(t, childID) })
	return gs, nil
}

func (r *GuardianRepo) GetSystemForUpdate(_ context.Context, tx pgx.Tx, childID string) (*domain.GuardianSystem, error) {
	t, err := r.s.viewTx(tx)
	if err != nil {
		return nil, err
	}
	return systemOf(t, childID), nil
}

// mutate stores a modified copy of the guardian system in tx.
func (r *GuardianRepo) mutate(tx pgx.Tx, childID string, fn func(gs *domain.GuardianSystem) error) error {
	return r.s.write(tx, func(w writable) error {
		systems := w.guardians()
		prev, ok := systems[childID]
		if !ok {
			return fmt.Errorf("guardian system %s not found", childID)
		}
		next := cloneSystem(prev)
		if err := fn(next); err != nil {
			return err
		}
		systems[childID] = *next
		return nil
	})
}

func (r *GuardianRepo) AddGuardian(_ context.Context, tx pgx.Tx, childID string, g *domain.Guardian) error {
	return r.mutate(tx, childID, func(gs *domain.GuardianSystem) error {
		gs.Guardians = append(gs.Guardians, *g)
		return nil
	})
}

func (r *GuardianRepo) RemoveGuardian(_ context.Context, tx pgx.Tx, childID, address string) error {
	return r.mutate(tx, childID, func(gs *domain.GuardianSystem) error {
		_, idx := gs.Find(address)
		if idx < 0 {
			return fmt.Errorf("guardian %s not found", address)
		}
		gs.Remove(idx)
		return nil
	})
}

func (r *GuardianRepo) UpdateRole(_ context.Context, tx pgx.Tx, childID, address string, role domain.GuardianRole) error {
	return r.mutate(tx, childID, func(gs *domain.GuardianSystem) error {
		g, _ := gs.Find(address)
		if g == nil {
			return fmt.Errorf("guardian %s not found", address)
		}
		g.Role = role
		return nil
	})
}

func (r *GuardianRepo) SetRequiredApprovals(_ context.Context, tx pgx.Tx, childID string, required uint32) error {
	return r.mutate(tx, childID, func(gs *domain.GuardianSystem) error {
		gs.RequiredApprovals = required
		return nil
	})
}

// appendLog appends v to m[key]. Committed readers hold their own slice
// header, so growing a shared backing array past its length is invisible
// to them.
func appendLog[T any](m map[string][]T, key string, v T) {
	m[key] = append(m[key], v)
}

// --- Investments ---

// InvestmentRepo implements ports.InvestmentRepository.
type InvestmentRepo struct{ s *Store }

func (r *InvestmentRepo) Create(_ context.Context, tx pgx.Tx, inv *domain.Investment) error {
	return r.s.write(tx, func(w writable) error {
		appendLog(w.investments(), inv.ChildID, *inv)
		return nil
	})
}

func (r *InvestmentRepo) ListByChild(_ context.Context, childID string) (out []domain.Investment, _ error) {
	r.s.read(func(t *tables) { out = slices.Clone(t.investments[childID]) })
	return out, nil
}

// --- Institutions ---

// InstitutionRepo implements ports.InstitutionRepository.
type InstitutionRepo struct{ s *Store }

func institutionIndex(list []domain.ApprovedInstitution, address string) int {
	return slices.IndexFunc(list, func(i domain.ApprovedInstitution) bool {
		return i.Address == address
	})
}

func (r *InstitutionRepo) Create(_ context.Context, tx pgx.Tx, inst *domain.ApprovedInstitution) error {
	return r.s.write(tx, func(w writable) error {
		all := w.institutions()
		if institutionIndex(all[inst.ChildID], inst.Address) >= 0 {
			return fmt.Errorf("%w: institution %s", ports.ErrDuplicateKey, inst.Address)
		}
		appendLog(all, inst.ChildID, *inst)
		return nil
	})
}

func (r *InstitutionRepo) GetForUpdate(_ context.Context, tx pgx.Tx, childID, address string) (*domain.ApprovedInstitution, error) {
	t, err := r.s.viewTx(tx)
	if err != nil {
		return nil, err
	}
	list := t.institutions[childID]
	idx := institutionIndex(list, address)
	if idx < 0 {
		return nil, nil
	}
	inst := list[idx]
	return &inst, nil
}

func (r *InstitutionRepo) Deactivate(_ context.Context, tx pgx.Tx, childID, address string) error {
	return r.s.write(tx, func(w writable) error {
		all := w.institutions()
		idx := institutionIndex(all[childID], address)
		if idx < 0 {
			return fmt.Errorf("institution %s not found", address)
		}
		// The committed slice is shared; edit a copy.
		list := slices.Clone(all[childID])
		list[idx].IsActive = false
		all[childID] = list
		return nil
	})
}

func (r *InstitutionRepo) ListByChild(_ context.Context, childID string) (out []domain.ApprovedInstitution, _ error) {
	r.s.read(func(t *tables) { out = slices.Clone(t.institutions[childID]) })
	return out, nil
}

// --- Payments ---

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct{ s *Store }

func (r *PaymentRepo) Create(_ context.Context, tx pgx.Tx, p *domain.InstitutionPayment) error {
	return r.s.write(tx, func(w writable) error {
		appendLog(w.payments(), p.ChildID, *p)
		return nil
	})
}

func (r *PaymentRepo) ListByChild(_ context.Context, childID string) (out []domain.InstitutionPayment, _ error) {
	r.s.read(func(t *tables) { out = slices.Clone(t.payments[childID]) })
	return out, nil
}

// --- Plans ---

// PlanRepo implements ports.PlanRepository.
type PlanRepo struct{ s *Store }

func (r *PlanRepo) Create(_ context.Context, tx pgx.Tx, p *domain.InvestmentPlan) error {
	return r.s.write(tx, func(w writable) error {
		plans := w.plans()
		if _, ok := plans[p.ID]; ok {
			return fmt.Errorf("%w: plan %s", ports.ErrDuplicateKey, p.ID)
		}
		plans[p.ID] = *p
		appendLog(w.plansByChild(), p.ChildID, p.ID)
		return nil
	})
}

func (r *PlanRepo) GetByID(_ context.Context, planID string) (p *domain.InvestmentPlan, _ error) {
	r.s.read(func(t *tables) { p = lookup(t.plans, planID) })
	return p, nil
}

func (r *PlanRepo) GetByIDForUpdate(_ context.Context, tx pgx.Tx, planID string) (*domain.InvestmentPlan, error) {
	t, err := r.s.viewTx(tx)
	if err != nil {
		return nil, err
	}
	return lookup(t.plans, planID), nil
}

func (r *PlanRepo) Update(_ context.Context, tx pgx.Tx, p *domain.InvestmentPlan) error {
	return r.s.write(tx, func(w writable) error {
		plans := w.plans()
		if _, ok := plans[p.ID]; !ok {
			return fmt.Errorf("plan %s not found", p.ID)
		}
		plans[p.ID] = *p
		return nil
	})
}

func (r *PlanRepo) ListByChild(_ context.Context, childID string, status *domain.PlanStatus) (plans []domain.InvestmentPlan, _ error) {
	r.s.read(func(t *tables) {
		plans = make([]domain.InvestmentPlan, 0, len(t.plansByChild[childID]))
		for _, id := range t.plansByChild[childID] {
			p := t.plans[id]
			if status != nil && p.Status != *status {
				continue
			}
			plans = append(plans, p)
		}
	})
	return plans, nil
}

// --- Yields ---

// YieldRepo implements ports.YieldRepository.
type YieldRepo struct{ s *Store }

func (r *YieldRepo) Create(_ context.Context, tx pgx.Tx, y *domain.YieldRecord) error {
	return r.s.write(tx, func(w writable) error {
		appendLog(w.yields(), y.ChildID, *y)
		return nil
	})
}

func (r *YieldRepo) ListByChild(_ context.Context, childID string) (out []domain.YieldRecord, _ error) {
	r.s.read(func(t *tables) { out = slices.Clone(t.yields[childID]) })
	return out, nil
}

func (r *YieldRepo) SumByChild(_ context.Context, childID string) (decimal.Decimal, error) {
	total := decimal.Zero
	r.s.read(func(t *tables) {
		for _, y := range t.yields[childID] {
			total = total.Add(y.YieldAmount)
		}
	})
	return total, nil
}

// --- Strategies ---

// StrategyRepo implements ports.StrategyRepository.
type StrategyRepo struct{ s *Store }

func (r *StrategyRepo) Upsert(_ context.Context, tx pgx.Tx, st *domain.InvestmentStrategy) error {
	return r.s.write(tx, func(w writable) error {
		next := *st
		next.PreferredProtocols = slices.Clone(st.PreferredProtocols)
		w.strategies()[st.ChildID] = next
		return nil
	})
}

func (r *StrategyRepo) Get(_ context.Context, childID string) (st *domain.InvestmentStrategy, _ error) {
	r.s.read(func(t *tables) { st = lookup(t.strategies, childID) })
	if st != nil {
		st.PreferredProtocols = slices.Clone(st.PreferredProtocols)
	}
	return st, nil
}

// --- Credentials ---

// CredentialRepo implements ports.CredentialRepository.
type CredentialRepo struct{ s *Store }

func (r *CredentialRepo) Create(_ context.Context, c *domain.GuardianCredential) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.credentials[c.Address]; ok {
		return fmt.Errorf("%w: credential %s", ports.ErrDuplicateKey, c.Address)
	}
	r.s.credentials[c.Address] = *c
	return nil
}

func (r *CredentialRepo) GetByAddress(_ context.Context, address string) (*domain.GuardianCredential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.credentials[address]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// --- Idempotency ---

// IdempotencyRepo implements ports.IdempotencyRepository.
type IdempotencyRepo struct{ s *Store }

func (r *IdempotencyRepo) Create(_ context.Context, tx pgx.Tx, l *domain.IdempotencyLog) error {
	return r.s.write(tx, func(w writable) error {
		logs := w.idempotency()
		if _, ok := logs[l.Key]; ok {
			return fmt.Errorf("%w: idempotency key %s", ports.ErrDuplicateKey, l.Key)
		}
		logs[l.Key] = *l
		return nil
	})
}

func (r *IdempotencyRepo) Get(_ context.Context, key string) (l *domain.IdempotencyLog, _ error) {
	r.s.read(func(t *tables) { l = lookup(t.idempotency, key) })
	return l, nil
}

// DeleteBefore runs as its own write transaction so it cannot race one that
// is about to publish.
func (r *IdempotencyRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.s.acquire(ctx); err != nil {
		return 0, err
	}
	defer r.s.release()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	logs := maps.Clone(r.s.committed.idempotency)
	for k, l := range logs {
		if l.CreatedAt.Before(cutoff) {
			delete(logs, k)
			n++
		}
	}
	r.s.committed.idempotency = logs
	return n, nil
}

// --- Audit ---

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct{ s *Store }

func (r *AuditRepo) Create(_ context.Context, l *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audit = append(r.s.audit, *l)
	return nil
}

// Entries returns a copy of the audit trail.
func (r *AuditRepo) Entries() []domain.AuditLog {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return slices.Clone(r.s.audit)
}

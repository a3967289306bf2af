package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"child-wallet/internal/adapter/storage/memory"
	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.Nop()
}

// T0 is an arbitrary fixed start time (2024-01-01T00:00:00Z).
const T0 int64 = 1704067200

type fakeClock struct{ now atomic.Int64 }

func newFakeClock(at int64) *fakeClock {
	c := &fakeClock{}
	c.now.Store(at)
	return c
}

func (c *fakeClock) Now() int64            { return c.now.Load() }
func (c *fakeClock) Set(at int64)          { c.now.Store(at) }
func (c *fakeClock) Advance(seconds int64) { c.now.Add(seconds) }

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.WalletEvent
}

func (p *recordingPublisher) Publish(ev domain.WalletEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, ev := range p.events {
		types[i] = ev.Type
	}
	return types
}

type testEnv struct {
	repos     ports.Repositories
	clock     *fakeClock
	events    *recordingPublisher
	guardians *GuardianServiceImpl
	ledger    *InvestmentServiceImpl
	wallet    *WalletServiceImpl
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repos := memory.New().Repositories()
	clock := newFakeClock(T0)
	events := &recordingPublisher{}
	log := newTestLogger()

	guardians := NewGuardianService(repos.Guardians, repos.Credentials, repos.Transactor, clock, events, log)
	ledger := NewInvestmentService(repos, clock, events, log)
	wallet := NewWalletService(repos, guardians, ledger, nil, clock, events, log)

	return &testEnv{repos: repos, clock: clock, events: events, guardians: guardians, ledger: ledger, wallet: wallet}
}

func amt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// newChild opens a wallet owned by "owner" for a child born at birth.
func (e *testEnv) newChild(t *testing.T, birth int64) string {
	t.Helper()
	p, err := e.wallet.CreateChildProfile(context.Background(), ports.CreateChildRequest{
		Caller:       "owner",
		Name:         "Mia",
		BirthDate:    birth,
		TargetAge:    18,
		TargetAmount: amt(10000),
		OwnerName:    "Parent",
	})
	require.NoError(t, err)
	return p.ID
}

// register gives address a credential so it can be granted roles.
func (e *testEnv) register(t *testing.T, address string) {
	t.Helper()
	cred, err := e.repos.Credentials.GetByAddress(context.Background(), address)
	require.NoError(t, err)
	if cred != nil {
		return
	}
	require.NoError(t, e.repos.Credentials.Create(context.Background(), &domain.GuardianCredential{
		Address:      address,
		DisplayName:  address,
		PasswordHash: "unused",
	}))
}

func (e *testEnv) addGuardian(t *testing.T, childID, address string, role domain.GuardianRole) {
	t.Helper()
	e.register(t, address)
	_, err := e.guardians.AddGuardian(context.Background(), ports.AddGuardianRequest{
		ChildID: childID, Caller: "owner", Address: address, Name: address, Role: role,
	})
	require.NoError(t, err)
}

package service

import (
	"context"
	"errors"
	"time"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// GuardianRegistry is the part of the guardian service the wallet drives.
type GuardianRegistry interface {
	InitializeTx(ctx context.Context, tx pgx.Tx, childID, owner, ownerName string) (*domain.GuardianSystem, error)
	GetGuardians(ctx context.Context, childID string) (*domain.GuardianSystem, error)
}

// LedgerReader is the part of the investment ledger the report reads.
type LedgerReader interface {
	ActivePlans(ctx context.Context, childID string) ([]domain.InvestmentPlan, error)
	TotalYield(ctx context.Context, childID string) (decimal.Decimal, error)
}

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	childRepo       ports.ChildRepository
	guardianRepo    ports.GuardianRepository
	investmentRepo  ports.InvestmentRepository
	institutionRepo ports.InstitutionRepository
	paymentRepo     ports.PaymentRepository
	transactor      ports.DBTransactor
	idempotency     idempotencyGuard
	registry        GuardianRegistry
	ledger          LedgerReader
	clock           ports.Clock
	events          ports.EventPublisher
	log             zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl. idempCache may be nil
// when Redis is disabled; the idempotency log still guards replays.
func NewWalletService(
	repos ports.Repositories,
	registry GuardianRegistry,
	ledger LedgerReader,
	idempCache ports.IdempotencyCache,
	clock ports.Clock,
	events ports.EventPublisher,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		childRepo:       repos.Children,
		guardianRepo:    repos.Guardians,
		investmentRepo:  repos.Investments,
		institutionRepo: repos.Institutions,
		paymentRepo:     repos.Payments,
		transactor:      repos.Transactor,
		idempotency:     idempotencyGuard{repo: repos.Idempotency, cache: idempCache, log: log},
		registry:        registry,
		ledger:          ledger,
		clock:           clock,
		events:          events,
		log:             log,
	}
}

// CreateChildProfile opens a wallet with a zero balance and makes the caller its Owner.
func (s *WalletServiceImpl) CreateChildProfile(ctx context.Context, req ports.CreateChildRequest) (_ *domain.ChildProfile, err error) {
	childID := uuid.NewString()
	ctx, span := startSpan(ctx, "WalletService.CreateChildProfile", childID)
	defer func() { endSpan(span, err) }()

	if req.TargetAge < domain.MinTargetAge {
		return nil, apperror.ErrInvalidTargetAge()
	}
	if !validPositiveAmount(req.TargetAmount) {
		return nil, apperror.ErrInvalidTargetAmount()
	}
	if req.Caller == "" {
		return nil, apperror.ErrUnauthorized()
	}

	now := s.clock.Now()
	profile := &domain.ChildProfile{
		ID:               childID,
		Name:             req.Name,
		BirthDate:        req.BirthDate,
		TargetAge:        req.TargetAge,
		TargetAmount:     req.TargetAmount,
		CurrentBalance:   decimal.Zero,
		CreatedAt:        now,
		Owner:            req.Caller,
		GuardianSystemID: childID,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.childRepo.Create(ctx, dbTx, profile); err != nil {
		return nil, internalErr("create child", err)
	}
	if _, err := s.registry.InitializeTx(ctx, dbTx, childID, req.Caller, req.OwnerName); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, internalErr("commit tx", err)
	}

	s.log.Info().
		Str("child_id", childID).
		Str("owner", req.Caller).
		Uint32("target_age", req.TargetAge).
		Str("target_amount", req.TargetAmount.String()).
		Msg("child profile created")
	publish(s.events, domain.NewWalletEvent(childID, "profile", "created", req.Caller, now, nil))

	return profile, nil
}

// Invest credits the balance and appends an Investment.
func (s *WalletServiceImpl) Invest(ctx context.Context, req ports.InvestRequest) (_ *domain.Investment, err error) {
	ctx, span := startSpan(ctx, "WalletService.Invest", req.ChildID)
	defer func() { endSpan(span, err) }()

	if !validPositiveAmount(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}

	var idempKey string
	if req.IdempotencyKey != "" {
		idempKey = domain.BuildIdempotencyKey(req.ChildID, "invest", req.IdempotencyKey)
	}
	if stored, err := s.idempotency.lookup(ctx, idempKey); err != nil || stored != nil {
		if err != nil {
			return nil, err
		}
		return replay[domain.Investment](stored)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	profile, err := lockChild(ctx, dbTx, s.childRepo, s.guardianRepo, req.ChildID, req.Caller, domain.RoleInvestor)
	if err != nil {
		return nil, err
	}

	// A concurrent request with the same key may have committed while we waited for the lock.
	if stored, err := s.idempotency.lookup(ctx, idempKey); err != nil || stored != nil {
		if err != nil {
			return nil, err
		}
		return replay[domain.Investment](stored)
	}

	newBalance, err := domain.AddAmounts(profile.CurrentBalance, req.Amount)
	if err != nil {
		return nil, apperror.ErrInvalidAmount()
	}

	now := s.clock.Now()
	investment := &domain.Investment{
		ChildID:   req.ChildID,
		Amount:    req.Amount,
		Timestamp: now,
		Investor:  req.Caller,
	}

	if err := s.childRepo.UpdateBalance(ctx, dbTx, req.ChildID, newBalance); err != nil {
		return nil, internalErr("update balance", err)
	}
	if err := s.investmentRepo.Create(ctx, dbTx, investment); err != nil {
		return nil, internalErr("create investment", err)
	}
	respJSON, err := s.idempotency.save(ctx, dbTx, idempKey, investment, time.Unix(now, 0).UTC())
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, internalErr("commit tx", err)
	}
	s.idempotency.remember(ctx, idempKey, respJSON)

	s.log.Info().
		Str("child_id", req.ChildID).
		Str("investor", req.Caller).
		Str("amount", req.Amount.String()).
		Str("balance", newBalance.String()).
		Msg("investment recorded")
	publish(s.events, domain.NewWalletEvent(req.ChildID, "investment", "created", req.Caller, now,
		map[string]any{"amount": req.Amount.String(), "balance": newBalance.String()}))

	return investment, nil
}

// AddApprovedInstitution whitelists a payee for the child.
func (s *WalletServiceImpl) AddApprovedInstitution(ctx context.Context, req ports.AddInstitutionRequest) (_ *domain.ApprovedInstitution, err error) {
	ctx, span := startSpan(ctx, "WalletService.AddApprovedInstitution", req.ChildID)
	defer func() { endSpan(span, err) }()

	if !req.InstitutionType.IsValid() {
		return nil, apperror.ErrInvalidInstitutionType()
	}
	if req.Address == "" {
		return nil, apperror.Validation("institution address is required")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := lockChild(ctx, dbTx, s.childRepo, s.guardianRepo, req.ChildID, req.Caller, domain.RoleOwner); err != nil {
		return nil, err
	}

	existing, err := s.institutionRepo.GetForUpdate(ctx, dbTx, req.ChildID, req.Address)
	if err != nil {
		return nil, internalErr("get institution", err)
	}
	if existing != nil {
		return nil, apperror.ErrInstitutionAlreadyApproved()
	}

	institution := &domain.ApprovedInstitution{
		ChildID:         req.ChildID,
		Address:         req.Address,
		Name:            req.Name,
		InstitutionType: req.InstitutionType,
		ApprovedAt:      s.clock.Now(),
		ApprovedBy:      req.Caller,
		IsActive:        true,
	}
	if err := s.institutionRepo.Create(ctx, dbTx, institution); err != nil {
		if errors.Is(err, ports.ErrDuplicateKey) {
			return nil, apperror.ErrInstitutionAlreadyApproved()
		}
		return nil, internalErr("create institution", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, internalErr("commit tx", err)
	}

	s.log.Info().
		Str("child_id", req.ChildID).
		Str("institution", req.Address).
		Str("type", string(req.InstitutionType)).
		Msg("institution approved")
	publish(s.events, domain.NewWalletEvent(req.ChildID, "institution", "approved", req.Caller, institution.ApprovedAt,
		map[string]any{"address": req.Address}))

	return institution, nil
}

// DeactivateInstitution keeps the record but blocks further payments to it.
func (s *WalletServiceImpl) DeactivateInstitution(ctx context.Context, childID, caller, address string) (err error) {
	ctx, span := startSpan(ctx, "WalletService.DeactivateInstitution", childID)
	defer func() { endSpan(span, err) }()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := lockChild(ctx, dbTx, s.childRepo, s.guardianRepo, childID, caller, domain.RoleOwner); err != nil {
		return err
	}

	existing, err := s.institutionRepo.GetForUpdate(ctx, dbTx, childID, address)
	if err != nil {
		return internalErr("get institution", err)
	}
	if existing == nil {
		return apperror.ErrInstitutionNotFound()
	}
	if err := s.institutionRepo.Deactivate(ctx, dbTx, childID, address); err != nil {
		return internalErr("deactivate institution", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return internalErr("commit tx", err)
	}

	s.log.Info().Str("child_id", childID).Str("institution", address).Msg("institution deactivated")
	publish(s.events, domain.NewWalletEvent(childID, "institution", "deactivated", caller, s.clock.Now(),
		map[string]any{"address": address}))
	return nil
}

// PayToInstitution moves money out of the wallet to an active approved
// institution once the child has reached the target age.
func (s *WalletServiceImpl) PayToInstitution(ctx context.Context, req ports.InstitutionPaymentRequest) (_ *domain.InstitutionPayment, err error) {
	ctx, span := startSpan(ctx, "WalletService.PayToInstitution", req.ChildID)
	defer func() { endSpan(span, err) }()

	if !validPositiveAmount(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}

	var idempKey string
	if req.IdempotencyKey != "" {
		idempKey = domain.BuildIdempotencyKey(req.ChildID, "pay", req.IdempotencyKey)
	}
	if stored, err := s.idempotency.lookup(ctx, idempKey); err != nil || stored != nil {
		if err != nil {
			return nil, err
		}
		return replay[domain.InstitutionPayment](stored)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	profile, err := lockChild(ctx, dbTx, s.childRepo, s.guardianRepo, req.ChildID, req.Caller, domain.RoleWithdrawer)
	if err != nil {
		return nil, err
	}

	if stored, err := s.idempotency.lookup(ctx, idempKey); err != nil || stored != nil {
		if err != nil {
			return nil, err
		}
		return replay[domain.InstitutionPayment](stored)
	}

	now := s.clock.Now()
	if !profile.IsOldEnoughToSpend(now) {
		return nil, apperror.ErrBelowTargetAge()
	}
	if req.Amount.GreaterThan(profile.CurrentBalance) {
		return nil, apperror.ErrInsufficientBalance()
	}

	institution, err := s.institutionRepo.GetForUpdate(ctx, dbTx, req.ChildID, req.Institution)
	if err != nil {
		return nil, internalErr("get institution", err)
	}
	if institution == nil || !institution.IsActive {
		return nil, apperror.ErrInstitutionNotApproved()
	}

	newBalance := profile.CurrentBalance.Sub(req.Amount)
	payment := &domain.InstitutionPayment{
		ChildID:         req.ChildID,
		Amount:          req.Amount,
		Institution:     institution.Address,
		InstitutionName: institution.Name,
		PaymentPurpose:  req.Purpose,
		Timestamp:       now,
		PaidBy:          req.Caller,
	}

	if err := s.childRepo.UpdateBalance(ctx, dbTx, req.ChildID, newBalance); err != nil {
		return nil, internalErr("update balance", err)
	}
	if err := s.paymentRepo.Create(ctx, dbTx, payment); err != nil {
		return nil, internalErr("create payment", err)
	}
	respJSON, err := s.idempotency.save(ctx, dbTx, idempKey, payment, time.Unix(now, 0).UTC())
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, internalErr("commit tx", err)
	}
	s.idempotency.remember(ctx, idempKey, respJSON)

	s.log.Info().
		Str("child_id", req.ChildID).
		Str("institution", institution.Address).
		Str("amount", req.Amount.String()).
		Str("balance", newBalance.String()).
		Msg("institution payment processed")
	publish(s.events, domain.NewWalletEvent(req.ChildID, "payment", "created", req.Caller, now,
		map[string]any{"institution": institution.Address, "amount": req.Amount.String(), "balance": newBalance.String()}))

	return payment, nil
}

// EmergencyPause freezes every wallet and ledger mutation. Pausing a paused wallet is a no-op.
func (s *WalletServiceImpl) EmergencyPause(ctx context.Context, childID, caller string) error {
	return s.setPaused(ctx, childID, caller, true)
}

// LiftEmergencyPause re-enables mutations.
func (s *WalletServiceImpl) LiftEmergencyPause(ctx context.Context, childID, caller string) error {
	return s.setPaused(ctx, childID, caller, false)
}

func (s *WalletServiceImpl) setPaused(ctx context.Context, childID, caller string, paused bool) (err error) {
	ctx, span := startSpan(ctx, "WalletService.SetEmergencyPause", childID)
	defer func() { endSpan(span, err) }()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	profile, err := s.childRepo.GetByIDForUpdate(ctx, dbTx, childID)
	if err != nil {
		return internalErr("lock child", err)
	}
	if profile == nil {
		return apperror.ErrProfileNotFound()
	}
	if err := authorizeTx(ctx, dbTx, s.guardianRepo, childID, caller, domain.RoleOwner); err != nil {
		return err
	}
	if profile.EmergencyPaused == paused {
		return nil
	}

	if err := s.childRepo.SetEmergencyPaused(ctx, dbTx, childID, paused); err != nil {
		return internalErr("set emergency pause", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return internalErr("commit tx", err)
	}

	action := "lifted"
	if paused {
		action = "engaged"
	}
	s.log.Warn().Str("child_id", childID).Str("by", caller).Bool("paused", paused).Msg("emergency pause " + action)
	publish(s.events, domain.NewWalletEvent(childID, "emergency_pause", action, caller, s.clock.Now(), nil))
	return nil
}

// GetChildProfile returns the child's profile.
func (s *WalletServiceImpl) GetChildProfile(ctx context.Context, childID string) (*domain.ChildProfile, error) {
	profile, err := s.childRepo.GetByID(ctx, childID)
	if err != nil {
		return nil, internalErr("get child", err)
	}
	if profile == nil {
		return nil, apperror.ErrProfileNotFound()
	}
	return profile, nil
}

// GetBalance returns the current balance.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, childID string) (decimal.Decimal, error) {
	profile, err := s.GetChildProfile(ctx, childID)
	if err != nil {
		return decimal.Zero, err
	}
	return profile.CurrentBalance, nil
}

// GetInvestmentHistory lists deposits oldest first.
func (s *WalletServiceImpl) GetInvestmentHistory(ctx context.Context, childID string) ([]domain.Investment, error) {
	if _, err := s.GetChildProfile(ctx, childID); err != nil {
		return nil, err
	}
	history, err := s.investmentRepo.ListByChild(ctx, childID)
	if err != nil {
		return nil, internalErr("list investments", err)
	}
	return history, nil
}

// GetApprovedInstitutions lists every institution ever approved, active or not.
func (s *WalletServiceImpl) GetApprovedInstitutions(ctx context.Context, childID string) ([]domain.ApprovedInstitution, error) {
	if _, err := s.GetChildProfile(ctx, childID); err != nil {
		return nil, err
	}
	institutions, err := s.institutionRepo.ListByChild(ctx, childID)
	if err != nil {
		return nil, internalErr("list institutions", err)
	}
	return institutions, nil
}

// GetInstitutionPayments lists payments oldest first.
func (s *WalletServiceImpl) GetInstitutionPayments(ctx context.Context, childID string) ([]domain.InstitutionPayment, error) {
	if _, err := s.GetChildProfile(ctx, childID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByChild(ctx, childID)
	if err != nil {
		return nil, internalErr("list payments", err)
	}
	return payments, nil
}

// IsOldEnoughToSpend recomputes the age gate against the clock.
func (s *WalletServiceImpl) IsOldEnoughToSpend(ctx context.Context, childID string) (bool, error) {
	profile, err := s.GetChildProfile(ctx, childID)
	if err != nil {
		return false, err
	}
	return profile.IsOldEnoughToSpend(s.clock.Now()), nil
}

// IsEmergencyPaused reads the pause flag.
func (s *WalletServiceImpl) IsEmergencyPaused(ctx context.Context, childID string) (bool, error) {
	profile, err := s.GetChildProfile(ctx, childID)
	if err != nil {
		return false, err
	}
	return profile.EmergencyPaused, nil
}

// GetComprehensiveReport snapshots the profile, guardians, ledger and payment logs.
func (s *WalletServiceImpl) GetComprehensiveReport(ctx context.Context, childID string) (_ *domain.ComprehensiveReport, err error) {
	ctx, span := startSpan(ctx, "WalletService.GetComprehensiveReport", childID)
	defer func() { endSpan(span, err) }()

	profile, err := s.GetChildProfile(ctx, childID)
	if err != nil {
		return nil, err
	}
	guardians, err := s.registry.GetGuardians(ctx, childID)
	if err != nil {
		return nil, err
	}
	plans, err := s.ledger.ActivePlans(ctx, childID)
	if err != nil {
		return nil, err
	}
	totalYield, err := s.ledger.TotalYield(ctx, childID)
	if err != nil {
		return nil, err
	}
	investments, err := s.investmentRepo.ListByChild(ctx, childID)
	if err != nil {
		return nil, internalErr("list investments", err)
	}
	payments, err := s.paymentRepo.ListByChild(ctx, childID)
	if err != nil {
		return nil, internalErr("list payments", err)
	}

	now := s.clock.Now()
	return &domain.ComprehensiveReport{
		ChildProfile:          *profile,
		Guardians:             nonNil(guardians.Guardians),
		RequiredApprovals:     guardians.RequiredApprovals,
		TotalBalance:          profile.CurrentBalance,
		TotalYield:            totalYield,
		ActiveInvestmentPlans: nonNil(plans),
		InvestmentHistory:     nonNil(investments),
		InstitutionPayments:   nonNil(payments),
		AgeYears:              profile.AgeInYears(now),
		YearsUntilUnlock:      profile.YearsUntilUnlock(now),
		IsOldEnoughToSpend:    profile.IsOldEnoughToSpend(now),
		IsEmergencyPaused:     profile.EmergencyPaused,
		ProgressBps:           profile.ProgressBps(),
		GeneratedAt:           now,
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

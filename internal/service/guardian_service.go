package service

import (
	"context"
	"errors"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// GuardianServiceImpl implements ports.GuardianService.
type GuardianServiceImpl struct {
	guardianRepo ports.GuardianRepository
	credRepo     ports.CredentialRepository
	transactor   ports.DBTransactor
	clock        ports.Clock
	events       ports.EventPublisher
	log          zerolog.Logger
}

// NewGuardianService creates a new GuardianServiceImpl.
func NewGuardianService(
	guardianRepo ports.GuardianRepository,
	credRepo ports.CredentialRepository,
	transactor ports.DBTransactor,
	clock ports.Clock,
	events ports.EventPublisher,
	log zerolog.Logger,
) *GuardianServiceImpl {
	return &GuardianServiceImpl{
		guardianRepo: guardianRepo,
		credRepo:     credRepo,
		transactor:   transactor,
		clock:        clock,
		events:       events,
		log:          log,
	}
}

// Initialize creates the guardian system of a child with its Owner.
func (s *GuardianServiceImpl) Initialize(ctx context.Context, childID, owner, ownerName string) (_ *domain.GuardianSystem, err error) {
	ctx, span := startSpan(ctx, "GuardianService.Initialize", childID)
	defer func() { endSpan(span, err) }()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	gs, err := s.InitializeTx(ctx, dbTx, childID, owner, ownerName)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, internalErr("commit tx", err)
	}
	return gs, nil
}

// InitializeTx is Initialize inside an existing transaction.
func (s *GuardianServiceImpl) InitializeTx(ctx context.Context, tx pgx.Tx, childID, owner, ownerName string) (*domain.GuardianSystem, error) {
	existing, err := s.guardianRepo.GetSystemForUpdate(ctx, tx, childID)
	if err != nil {
		return nil, internalErr("load guardians", err)
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyInitialized()
	}

	gs := &domain.GuardianSystem{
		ChildID: childID,
		Guardians: []domain.Guardian{{
			Address: owner,
			Name:    ownerName,
			Role:    domain.RoleOwner,
			AddedAt: s.clock.Now(),
			AddedBy: owner,
		}},
		RequiredApprovals: 1,
	}

	if err := s.guardianRepo.CreateSystem(ctx, tx, gs); err != nil {
		if errors.Is(err, ports.ErrDuplicateKey) {
			return nil, apperror.ErrAlreadyInitialized()
		}
		return nil, internalErr("create guardian system", err)
	}

	s.log.Info().Str("child_id", childID).Str("owner", owner).Msg("guardian system initialized")
	return gs, nil
}

// lockAsOwner loads the guardian system for update and requires caller to be its Owner.
func (s *GuardianServiceImpl) lockAsOwner(ctx context.Context, tx pgx.Tx, childID, caller string) (*domain.GuardianSystem, error) {
	gs, err := s.guardianRepo.GetSystemForUpdate(ctx, tx, childID)
	if err != nil {
		return nil, internalErr("lock guardians", err)
	}
	if gs == nil {
		return nil, apperror.ErrProfileNotFound()
	}
	if !gs.HasPermission(caller, domain.RoleOwner) {
		return nil, apperror.ErrUnauthorized()
	}
	return gs, nil
}

// withOwnerTx runs fn in a transaction holding the guardian lock as Owner.
func (s *GuardianServiceImpl) withOwnerTx(ctx context.Context, childID, caller string, fn func(tx pgx.Tx, gs *domain.GuardianSystem) error) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return internalErr("begin tx", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	gs, err := s.lockAsOwner(ctx, dbTx, childID, caller)
	if err != nil {
		return err
	}
	if err := fn(dbTx, gs); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return internalErr("commit tx", err)
	}
	return nil
}

// AddGuardian appends a guardian. Owner cannot be granted a second time.
func (s *GuardianServiceImpl) AddGuardian(ctx context.Context, req ports.AddGuardianRequest) (_ *domain.Guardian, err error) {
	ctx, span := startSpan(ctx, "GuardianService.AddGuardian", req.ChildID)
	defer func() { endSpan(span, err) }()

	if !req.Role.IsValid() || req.Role == domain.RoleOwner {
		return nil, apperror.ErrInvalidRole()
	}
	if req.Address == "" {
		return nil, apperror.Validation("guardian address is required")
	}

	guardian := &domain.Guardian{
		Address: req.Address,
		Name:    req.Name,
		Role:    req.Role,
		AddedAt: s.clock.Now(),
		AddedBy: req.Caller,
	}

	err = s.withOwnerTx(ctx, req.ChildID, req.Caller, func(tx pgx.Tx, gs *domain.GuardianSystem) error {
		if g, _ := gs.Find(req.Address); g != nil {
			return apperror.ErrDuplicateGuardian()
		}
		// Roles go only to registered identities.
		cred, err := s.credRepo.GetByAddress(ctx, req.Address)
		if err != nil {
			return internalErr("lookup guardian identity", err)
		}
		if cred == nil {
			return apperror.ErrIdentityNotRegistered()
		}
		if err := s.guardianRepo.AddGuardian(ctx, tx, req.ChildID, guardian); err != nil {
			return internalErr("add guardian", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("child_id", req.ChildID).
		Str("guardian", req.Address).
		Str("role", string(req.Role)).
		Msg("guardian added")
	publish(s.events, domain.NewWalletEvent(req.ChildID, "guardian", "added", req.Caller, guardian.AddedAt,
		map[string]any{"address": req.Address, "role": req.Role}))

	return guardian, nil
}

// RemoveGuardian drops a non-Owner guardian. The approval threshold is
// lowered to the remaining guardian count if it would exceed it.
func (s *GuardianServiceImpl) RemoveGuardian(ctx context.Context, childID, caller, address string) (err error) {
	ctx, span := startSpan(ctx, "GuardianService.RemoveGuardian", childID)
	defer func() { endSpan(span, err) }()

	err = s.withOwnerTx(ctx, childID, caller, func(tx pgx.Tx, gs *domain.GuardianSystem) error {
		g, idx := gs.Find(address)
		if g == nil {
			return apperror.ErrGuardianNotFound()
		}
		if g.Role == domain.RoleOwner {
			return apperror.ErrCannotRemoveOwner()
		}
		if err := s.guardianRepo.RemoveGuardian(ctx, tx, childID, address); err != nil {
			return internalErr("remove guardian", err)
		}

		gs.Remove(idx)
		if remaining := uint32(len(gs.Guardians)); gs.RequiredApprovals > remaining {
			if err := s.guardianRepo.SetRequiredApprovals(ctx, tx, childID, max(remaining, 1)); err != nil {
				return internalErr("clamp required approvals", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("child_id", childID).Str("guardian", address).Msg("guardian removed")
	publish(s.events, domain.NewWalletEvent(childID, "guardian", "removed", caller, s.clock.Now(),
		map[string]any{"address": address}))
	return nil
}

// UpdateGuardianRole changes a non-Owner guardian's role in place.
func (s *GuardianServiceImpl) UpdateGuardianRole(ctx context.Context, childID, caller, address string, role domain.GuardianRole) (err error) {
	ctx, span := startSpan(ctx, "GuardianService.UpdateGuardianRole", childID)
	defer func() { endSpan(span, err) }()

	if !role.IsValid() || role == domain.RoleOwner {
		return apperror.ErrInvalidRole()
	}

	err = s.withOwnerTx(ctx, childID, caller, func(tx pgx.Tx, gs *domain.GuardianSystem) error {
		g, _ := gs.Find(address)
		if g == nil {
			return apperror.ErrGuardianNotFound()
		}
		if g.Role == domain.RoleOwner {
			return apperror.ErrCannotChangeOwnerRole()
		}
		if err := s.guardianRepo.UpdateRole(ctx, tx, childID, address, role); err != nil {
			return internalErr("update role", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("child_id", childID).Str("guardian", address).Str("role", string(role)).Msg("guardian role updated")
	publish(s.events, domain.NewWalletEvent(childID, "guardian", "role_updated", caller, s.clock.Now(),
		map[string]any{"address": address, "role": role}))
	return nil
}

// SetRequiredApprovals sets the approval threshold within [1, guardian count].
func (s *GuardianServiceImpl) SetRequiredApprovals(ctx context.Context, childID, caller string, required uint32) (err error) {
	ctx, span := startSpan(ctx, "GuardianService.SetRequiredApprovals", childID)
	defer func() { endSpan(span, err) }()

	if required == 0 {
		return apperror.ErrInvalidApprovalCount()
	}

	err = s.withOwnerTx(ctx, childID, caller, func(tx pgx.Tx, gs *domain.GuardianSystem) error {
		if required > uint32(len(gs.Guardians)) {
			return apperror.ErrInvalidApprovalCount()
		}
		if err := s.guardianRepo.SetRequiredApprovals(ctx, tx, childID, required); err != nil {
			return internalErr("set required approvals", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("child_id", childID).Uint32("required_approvals", required).Msg("required approvals updated")
	publish(s.events, domain.NewWalletEvent(childID, "guardian", "approvals_updated", caller, s.clock.Now(),
		map[string]any{"required_approvals": required}))
	return nil
}

// CheckPermission is false for unknown children and unknown addresses.
func (s *GuardianServiceImpl) CheckPermission(ctx context.Context, childID, address string, required domain.GuardianRole) (bool, error) {
	gs, err := s.guardianRepo.GetSystem(ctx, childID)
	if err != nil {
		return false, internalErr("load guardians", err)
	}
	if gs == nil {
		return false, nil
	}
	return gs.HasPermission(address, required), nil
}

// GetGuardians returns the ordered guardian list and approval threshold.
func (s *GuardianServiceImpl) GetGuardians(ctx context.Context, childID string) (*domain.GuardianSystem, error) {
	gs, err := s.guardianRepo.GetSystem(ctx, childID)
	if err != nil {
		return nil, internalErr("load guardians", err)
	}
	if gs == nil {
		return nil, apperror.ErrProfileNotFound()
	}
	return gs, nil
}

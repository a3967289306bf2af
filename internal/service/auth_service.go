package service

import (
	"context"
	"errors"
	"time"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService. It is the identity
// collaborator: a guardian address proves itself with a password and
// receives a bearer token whose subject is that address.
type AuthServiceImpl struct {
	credRepo ports.CredentialRepository
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	credRepo ports.CredentialRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		credRepo: credRepo,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		log:      log,
	}
}

// Register stores an Argon2id credential for a new guardian address.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*domain.GuardianCredential, error) {
	existing, err := s.credRepo.GetByAddress(ctx, req.Address)
	if err != nil {
		return nil, internalErr("check address", err)
	}
	if existing != nil {
		return nil, apperror.ErrIdentityExists()
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, internalErr("hash password", err)
	}

	cred := &domain.GuardianCredential{
		Address:      req.Address,
		DisplayName:  req.DisplayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.credRepo.Create(ctx, cred); err != nil {
		if errors.Is(err, ports.ErrDuplicateKey) {
			return nil, apperror.ErrIdentityExists()
		}
		return nil, internalErr("create credential", err)
	}

	s.log.Info().Str("address", cred.Address).Msg("guardian identity registered")
	return cred, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, address, password string) (string, time.Time, error) {
	cred, err := s.credRepo.GetByAddress(ctx, address)
	if err != nil {
		return "", time.Time{}, internalErr("find credential", err)
	}
	if cred == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, cred.PasswordHash)
	if err != nil {
		return "", time.Time{}, internalErr("verify password", err)
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(cred.Address)
	if err != nil {
		return "", time.Time{}, internalErr("generate token", err)
	}

	return token, expiry, nil
}

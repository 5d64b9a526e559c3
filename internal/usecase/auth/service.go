package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/boardline/boardline-backend/internal/adapter/repository"
	"github.com/boardline/boardline-backend/internal/domain"
	"github.com/boardline/boardline-backend/internal/domain/entity"
	"github.com/boardline/boardline-backend/internal/infrastructure/auth"
)

// Service authenticates back-office admins. There is no public sign-up:
// admin accounts are seeded out of band and log in with email/password.
type Service struct {
	adminRepo        repository.AdminUserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSvc           *auth.JWTService
	passwordHasher   *auth.PasswordHasher
	refreshTokenTTL  time.Duration
}

func NewService(
	adminRepo repository.AdminUserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	jwtSvc *auth.JWTService,
	passwordHasher *auth.PasswordHasher,
	refreshTokenTTL time.Duration,
) *Service {
	return &Service{
		adminRepo:        adminRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSvc:           jwtSvc,
		passwordHasher:   passwordHasher,
		refreshTokenTTL:  refreshTokenTTL,
	}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *Service) Login(ctx context.Context, input LoginInput) (*TokenPair, *entity.AdminUser, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if err := s.passwordHasher.Compare(admin.PasswordHash, input.Password); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if err := s.refreshTokenRepo.RevokeByAdminID(ctx, admin.ID); err != nil {
		return nil, nil, fmt.Errorf("revoking old tokens: %w", err)
	}

	tokens, err := s.generateTokenPair(ctx, admin.ID)
	if err != nil {
		return nil, nil, err
	}

	return tokens, admin, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	rt, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if rt.IsRevoked() {
		return nil, domain.ErrTokenRevoked
	}

	if rt.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	if err := s.refreshTokenRepo.Revoke(ctx, rt.ID); err != nil {
		return nil, fmt.Errorf("revoking old token: %w", err)
	}

	return s.generateTokenPair(ctx, rt.AdminID)
}

func (s *Service) Logout(ctx context.Context, adminID uuid.UUID) error {
	if err := s.refreshTokenRepo.RevokeByAdminID(ctx, adminID); err != nil {
		return fmt.Errorf("revoking tokens: %w", err)
	}
	return nil
}

func (s *Service) generateTokenPair(ctx context.Context, adminID uuid.UUID) (*TokenPair, error) {
	accessToken, expiresAt, err := s.jwtSvc.GenerateAccessToken(adminID)
	if err != nil {
		return nil, fmt.Errorf("generating access token: %w", err)
	}

	refreshToken, err := s.jwtSvc.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generating refresh token: %w", err)
	}

	rt := entity.NewRefreshToken(adminID, refreshToken, s.refreshTokenTTL)
	if err := s.refreshTokenRepo.Create(ctx, rt); err != nil {
		return nil, fmt.Errorf("storing refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

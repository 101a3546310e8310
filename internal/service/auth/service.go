package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/auth"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/jwt"
	"github.com/clockwork-hr/timeclock-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	workerRepo       worker.WorkerRepository
	refreshTokenRepo postgresql.RefreshTokenRepository
	jwtService       jwt.Service
}

func NewAuthService(
	workerRepo worker.WorkerRepository,
	refreshTokenRepo postgresql.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		workerRepo:       workerRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

// Login implements auth.AuthService. Unknown usernames and wrong
// passwords surface the same error so the endpoint leaks nothing.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := s.workerRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !account.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return s.issueTokens(ctx, account)
}

// Refresh implements auth.AuthService. Refresh tokens rotate: the
// presented token is revoked and a new pair is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	workerID, _, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := s.refreshTokenRepo.IsRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	account, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}
	if !account.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	if err := s.refreshTokenRepo.Revoke(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, err
	}
	return s.issueTokens(ctx, account)
}

// Logout implements auth.AuthService. Revoking an already-revoked or
// unknown token is a no-op.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, _, err := s.jwtService.DecodeRefreshToken(refreshToken); err != nil {
		slog.Debug("logout with undecodable refresh token", "error", err)
		return nil
	}
	return s.refreshTokenRepo.Revoke(ctx, refreshToken)
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, account worker.Worker) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Username, account.Position)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	tokenID := uuid.NewString()
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(account.ID, tokenID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.Create(ctx, tokenID, account.ID, refreshToken, refreshExpiresAt); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}

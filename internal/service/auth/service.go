package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/auth"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminRepo  auth.Repository
	jwtService jwt.Service
}

func NewAuthService(adminRepo auth.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if errors.Is(err, auth.ErrAdminNotFound) {
		// Same failure as a bad password; do not leak which part was wrong.
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	} else if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load admin account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(admin.ID, admin.Username)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthServiceImpl) UpdateCredentials(ctx context.Context, req auth.UpdateCredentialsRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.CurrentUsername)
	if errors.Is(err, auth.ErrAdminNotFound) {
		return auth.ErrInvalidCredentials
	} else if err != nil {
		return fmt.Errorf("failed to load admin account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return auth.ErrInvalidCredentials
	}

	if req.NewUsername != nil {
		admin.Username = *req.NewUsername
	}
	if req.NewPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		admin.PasswordHash = string(hash)
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return fmt.Errorf("failed to update admin credentials: %w", err)
	}
	return nil
}

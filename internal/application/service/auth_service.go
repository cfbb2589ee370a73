package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/repository"
	"github.com/gymdesk/gymdesk-api/pkg/apperror"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

// AuthService handles staff authentication
type AuthService struct {
	staffRepo  repository.StaffRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(staffRepo repository.StaffRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{staffRepo: staffRepo, jwtManager: jwtManager}
}

// LoginResult carries the issued tokens and the authenticated staff member.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Staff        *entity.Staff
}

// Login authenticates a staff member by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if staff == nil || staff.PasswordHash == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(staff.ID, staff.Email, string(staff.Role), staff.Role.Permissions())
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(staff.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: accessToken, RefreshToken: refreshToken, Staff: staff}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	staffID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(staff.ID, staff.Email, string(staff.Role), staff.Role.Permissions())
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.jwtManager.GenerateRefreshToken(staff.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: accessToken, RefreshToken: newRefresh, Staff: staff}, nil
}

// Me returns the authenticated staff member's profile.
func (s *AuthService) Me(ctx context.Context, staffID string) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}
	return staff, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, staffID, currentPassword, newPassword string) error {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(currentPassword)); err != nil {
		return apperror.ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		return apperror.NewBadRequestError("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff.PasswordHash = string(hash)
	return s.staffRepo.Update(ctx, staff)
}

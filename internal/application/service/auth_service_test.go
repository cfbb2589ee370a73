package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	infraRepo "github.com/gymdesk/gymdesk-api/internal/infrastructure/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
	"github.com/gymdesk/gymdesk-api/pkg/apperror"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

func newAuthService(t *testing.T) (*AuthService, *utils.JWTManager) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	staffRepo := infraRepo.NewStaffRepository(store)
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, staffRepo.Create(context.Background(), &entity.Staff{
		ID:           "s-1",
		Name:         "Cem Aydin",
		Email:        "cem@example.com",
		Role:         enum.RoleManager,
		PasswordHash: string(hash),
	}))

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(staffRepo, jwtManager), jwtManager
}

func TestLogin_IssuesTokensWithRoleClaims(t *testing.T) {
	svc, jwtManager := newAuthService(t)

	result, err := svc.Login(context.Background(), "cem@example.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)

	claims, err := jwtManager.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims.StaffID)
	assert.Equal(t, "cem@example.com", claims.Email)
	assert.Equal(t, string(enum.RoleManager), claims.Role)
	assert.Contains(t, claims.Permissions, string(enum.PermViewFinancials))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "cem@example.com", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRefresh_RotatesTokenPair(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, "cem@example.com", "correct-horse")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "s-1", refreshed.Staff.ID)
}

func TestRefresh_GarbageTokenRejected(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestChangePassword_VerifiesCurrent(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, "s-1", "wrong", "new-password-123")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, "s-1", "correct-horse", "short")
	assert.Error(t, err)

	require.NoError(t, svc.ChangePassword(ctx, "s-1", "correct-horse", "new-password-123"))

	_, err = svc.Login(ctx, "cem@example.com", "new-password-123")
	assert.NoError(t, err)
}

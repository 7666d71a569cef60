package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/service"
)

func newAuthFixture() (service.AuthService, *MockUserRepo, *MockTenantRepo, *domain.Tenant, *domain.User) {
	userRepo := new(MockUserRepo)
	tenantRepo := new(MockTenantRepo)
	cfg := config.JWTConfig{
		Secret:             "test-secret-do-not-use",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "gstbill",
	}
	svc := service.NewAuthService(userRepo, tenantRepo, cfg)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	tenant := &domain.Tenant{ID: uuid.New(), Slug: "acme", IsActive: true}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        "accounts@acme.example",
		PasswordHash: string(hash),
		Role:         domain.RoleAccountant,
		IsActive:     true,
	}
	return svc, userRepo, tenantRepo, tenant, user
}

func TestAuthLogin(t *testing.T) {
	svc, userRepo, tenantRepo, tenant, user := newAuthFixture()
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      user.Email,
		Password:   "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, claims.TenantID)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAccountant, claims.Role)
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	svc, userRepo, tenantRepo, tenant, user := newAuthFixture()
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      user.Email,
		Password:   "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthLogin_UnknownTenantMasksAsInvalidCredentials(t *testing.T) {
	svc, _, tenantRepo, _, _ := newAuthFixture()
	tenantRepo.On("GetBySlug", mock.Anything, "nope").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "nope",
		Email:      "a@b.example",
		Password:   "whatever-pass",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthLogin_InactiveTenantAndUser(t *testing.T) {
	svc, userRepo, tenantRepo, tenant, user := newAuthFixture()

	tenant.IsActive = false
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil).Once()
	_, err := svc.Login(context.Background(), service.LoginInput{TenantSlug: "acme", Email: user.Email, Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrTenantInactive)

	tenant.IsActive = true
	user.IsActive = false
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, user.Email).Return(user, nil)
	_, err = svc.Login(context.Background(), service.LoginInput{TenantSlug: "acme", Email: user.Email, Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthRefreshToken(t *testing.T) {
	svc, userRepo, tenantRepo, tenant, user := newAuthFixture()
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, user.Email).Return(user, nil)
	userRepo.On("GetByID", mock.Anything, tenant.ID, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      user.Email,
		Password:   "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// An access token must not pass as a refresh token.
	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthValidateToken_RejectsGarbage(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture()

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

func TestUserCreate_HashesPassword(t *testing.T) {
	repo := new(MockUserRepo)
	svc := service.NewUserService(repo)
	tenantID := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Create(context.Background(), tenantID, service.CreateUserInput{
		Email:    "clerk@acme.example",
		Password: "correct-horse",
		FullName: "Clerk One",
		Role:     "accountant",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAccountant, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "clerk@acme.example",
		Password: "correct-horse",
		FullName: "Clerk One",
		Role:     "viewer",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserUpdate_ChangesRoleAndActiveFlag(t *testing.T) {
	repo := new(MockUserRepo)
	svc := service.NewUserService(repo)
	tenantID, userID := uuid.New(), uuid.New()
	existing := &domain.User{ID: userID, TenantID: tenantID, FullName: "Clerk One", Role: domain.RoleAccountant, IsActive: true}

	repo.On("GetByID", mock.Anything, tenantID, userID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Update(context.Background(), tenantID, userID, service.UpdateUserInput{
		FullName: "Clerk One",
		Role:     "viewer",
		IsActive: false,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleViewer, user.Role)
	assert.False(t, user.IsActive)
}

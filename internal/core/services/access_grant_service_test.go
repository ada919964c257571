package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/core/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccessGrantService_GetCapability(t *testing.T) {
	grantRepo := new(MockAccessGrantRepository)
	userRepo := new(MockUserRepository)
	svc := services.NewAccessGrantService(grantRepo, userRepo, new(MockSafeRepository))

	userRepo.On("FindUserByID", mock.Anything, "clerk").Return(&domain.User{UserID: "clerk", Role: domain.RoleStandard, IsActive: true}, nil).Once()
	grantRepo.On("ListGrantsByUser", mock.Anything, "clerk").Return([]domain.AccessGrant{{UserID: "clerk", SafeID: "s1"}, {UserID: "clerk", SafeID: "s3"}}, nil).Once()

	capability, err := svc.GetCapability(context.Background(), "clerk")

	require.NoError(t, err)
	assert.False(t, capability.IsAdmin())
	assert.Contains(t, capability.GrantedSafeIDs, "s1")
	assert.Contains(t, capability.GrantedSafeIDs, "s3")
	assert.Len(t, capability.GrantedSafeIDs, 2)
}

func TestAccessGrantService_GetCapabilityAdminSkipsGrants(t *testing.T) {
	grantRepo := new(MockAccessGrantRepository)
	userRepo := new(MockUserRepository)
	svc := services.NewAccessGrantService(grantRepo, userRepo, new(MockSafeRepository))
	userRepo.On("FindUserByID", mock.Anything, "root").Return(&domain.User{UserID: "root", Role: domain.RoleAdmin, IsActive: true}, nil).Once()

	capability, err := svc.GetCapability(context.Background(), "root")

	require.NoError(t, err)
	assert.True(t, capability.IsAdmin())
	grantRepo.AssertNotCalled(t, "ListGrantsByUser", mock.Anything, mock.Anything)
}

func TestAccessGrantService_GetCapabilityInactiveUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewAccessGrantService(new(MockAccessGrantRepository), userRepo, new(MockSafeRepository))
	userRepo.On("FindUserByID", mock.Anything, "gone").Return(&domain.User{UserID: "gone", Role: domain.RoleStandard}, nil).Once()

	_, err := svc.GetCapability(context.Background(), "gone")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAccessGrantService_AssignSafeTwice(t *testing.T) {
	grantRepo := new(MockAccessGrantRepository)
	userRepo := new(MockUserRepository)
	safeRepo := new(MockSafeRepository)
	svc := services.NewAccessGrantService(grantRepo, userRepo, safeRepo, fixedClock())

	userRepo.On("FindUserByID", mock.Anything, "clerk").Return(&domain.User{UserID: "clerk"}, nil)
	safeRepo.On("FindSafeByID", mock.Anything, "s1").Return(&domain.Safe{SafeID: "s1"}, nil)
	grantRepo.On("SaveGrant", mock.Anything, domain.AccessGrant{UserID: "clerk", SafeID: "s1", AssignedAt: testNow, AssignedBy: "admin"}).Return(nil).Once()
	grantRepo.On("SaveGrant", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	req := dto.AssignSafeRequest{UserID: "clerk", SafeID: "s1"}
	grant, err := svc.AssignSafe(context.Background(), adminCap, req)
	require.NoError(t, err)
	assert.Equal(t, "admin", grant.AssignedBy)

	_, err = svc.AssignSafe(context.Background(), adminCap, req)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

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

var adminCap = domain.NewCapability("admin", domain.RoleAdmin)

func TestCategoryService_TypeChangeBlockedWhileInUse(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewCategoryService(categoryRepo, txnRepo)
	categoryRepo.On("FindCategoryByID", mock.Anything, "c1").Return(&domain.Category{CategoryID: "c1", Name: "Sales", Type: domain.Income}, nil).Once()
	txnRepo.On("CountTransactionsByCategory", mock.Anything, "c1").Return(2, nil).Once()

	expense := domain.Expense
	_, err := svc.UpdateCategory(context.Background(), adminCap, "c1", dto.UpdateCategoryRequest{Type: &expense})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	categoryRepo.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything)
}

func TestCategoryService_TypeChangeAllowedWhenUnused(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewCategoryService(categoryRepo, txnRepo, fixedClock())
	categoryRepo.On("FindCategoryByID", mock.Anything, "c1").Return(&domain.Category{CategoryID: "c1", Name: "Sales", Type: domain.Income}, nil).Once()
	txnRepo.On("CountTransactionsByCategory", mock.Anything, "c1").Return(0, nil).Once()
	categoryRepo.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.Type == domain.Expense && c.LastUpdatedBy == "admin"
	})).Return(nil).Once()

	expense := domain.Expense
	category, err := svc.UpdateCategory(context.Background(), adminCap, "c1", dto.UpdateCategoryRequest{Type: &expense})

	require.NoError(t, err)
	assert.Equal(t, domain.Expense, category.Type)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_CreateSubCategoryNeedsParent(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	svc := services.NewCategoryService(categoryRepo, new(MockTransactionRepository))
	categoryRepo.On("FindCategoryByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.CreateSubCategory(context.Background(), adminCap, dto.CreateSubCategoryRequest{CategoryID: "missing", Name: "Fuel"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryService_ListCategoriesRejectsUnknownType(t *testing.T) {
	svc := services.NewCategoryService(new(MockCategoryRepository), new(MockTransactionRepository))
	bogus := domain.CategoryType("TRANSFER")

	_, err := svc.ListCategories(context.Background(), &bogus)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCategoryService_CreateCategoryRequiresAdmin(t *testing.T) {
	svc := services.NewCategoryService(new(MockCategoryRepository), new(MockTransactionRepository))

	_, err := svc.CreateCategory(context.Background(), domain.NewCapability("clerk", domain.RoleStandard), dto.CreateCategoryRequest{Name: "Sales", Type: domain.Income})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

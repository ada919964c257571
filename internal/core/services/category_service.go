package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	txnRepo      portsrepo.TransactionReader
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, txnRepo portsrepo.TransactionReader, options ...ServiceOption) portssvc.CategorySvcFacade {
	svc := &categoryService{
		BaseService:  newBaseService(),
		categoryRepo: categoryRepo,
		txnRepo:      txnRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	if categoryType != nil && !categoryType.IsValid() {
		return nil, fmt.Errorf("%w: unknown category type '%s'", apperrors.ErrValidation, *categoryType)
	}
	return s.categoryRepo.ListCategories(ctx, categoryType)
}

func (s *categoryService) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.categoryRepo.ListSubCategories(ctx, categoryID)
}

func (s *categoryService) CreateCategory(ctx context.Context, cap domain.Capability, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if err := s.RequireAdmin(ctx, cap, "category creation"); err != nil {
		return nil, err
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: category type must be INCOME or EXPENSE", apperrors.ErrValidation)
	}

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        name,
		Type:        req.Type,
		AuditFields: auditFields(cap.UserID, s.Now()),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID), slog.String("type", string(category.Type)))
	return &category, nil
}

// UpdateCategory renames a category or changes its type. Changing the type of a
// category in use would flip the sign of existing movements, so it is refused.
func (s *categoryService) UpdateCategory(ctx context.Context, cap domain.Capability, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	if err := s.RequireAdmin(ctx, cap, "category update"); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name, err := normalizeName(*req.Name)
		if err != nil {
			return nil, err
		}
		category.Name = name
	}
	if req.Type != nil && *req.Type != category.Type {
		if !req.Type.IsValid() {
			return nil, fmt.Errorf("%w: category type must be INCOME or EXPENSE", apperrors.ErrValidation)
		}
		count, err := s.txnRepo.CountTransactionsByCategory(ctx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to count transactions of category %s: %w", categoryID, err)
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: category %s is used by %d transactions", apperrors.ErrConflict, categoryID, count)
		}
		category.Type = *req.Type
	}

	category.LastUpdatedAt = s.Now()
	category.LastUpdatedBy = cap.UserID
	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, cap domain.Capability, categoryID string) error {
	if err := s.RequireAdmin(ctx, cap, "category deletion"); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}

func (s *categoryService) CreateSubCategory(ctx context.Context, cap domain.Capability, req dto.CreateSubCategoryRequest) (*domain.SubCategory, error) {
	if err := s.RequireAdmin(ctx, cap, "sub-category creation"); err != nil {
		return nil, err
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	sub := domain.SubCategory{
		SubCategoryID: uuid.NewString(),
		CategoryID:    req.CategoryID,
		Name:          name,
		AuditFields:   auditFields(cap.UserID, s.Now()),
	}
	if err := s.categoryRepo.SaveSubCategory(ctx, sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *categoryService) UpdateSubCategory(ctx context.Context, cap domain.Capability, subCategoryID string, req dto.UpdateSubCategoryRequest) (*domain.SubCategory, error) {
	if err := s.RequireAdmin(ctx, cap, "sub-category update"); err != nil {
		return nil, err
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	sub, err := s.categoryRepo.FindSubCategoryByID(ctx, subCategoryID)
	if err != nil {
		return nil, err
	}
	sub.Name = name
	sub.LastUpdatedAt = s.Now()
	sub.LastUpdatedBy = cap.UserID
	if err := s.categoryRepo.UpdateSubCategory(ctx, *sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *categoryService) DeleteSubCategory(ctx context.Context, cap domain.Capability, subCategoryID string) error {
	if err := s.RequireAdmin(ctx, cap, "sub-category deletion"); err != nil {
		return err
	}
	return s.categoryRepo.DeleteSubCategory(ctx, subCategoryID)
}

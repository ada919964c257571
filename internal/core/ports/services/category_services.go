package services

import (
	"context"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/dto"
)

// CategoryReaderSvc defines the category lookups
type CategoryReaderSvc interface {
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves categories, optionally only those of one type.
	ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error)

	// ListSubCategories retrieves the sub-categories of a category.
	ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error)
}

// CategoryWriterSvc defines administrative write operations for categories
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, cap domain.Capability, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, cap domain.Capability, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, cap domain.Capability, categoryID string) error

	CreateSubCategory(ctx context.Context, cap domain.Capability, req dto.CreateSubCategoryRequest) (*domain.SubCategory, error)
	UpdateSubCategory(ctx context.Context, cap domain.Capability, subCategoryID string, req dto.UpdateSubCategoryRequest) (*domain.SubCategory, error)
	DeleteSubCategory(ctx context.Context, cap domain.Capability, subCategoryID string) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}

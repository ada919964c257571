package repositories

import (
	"context"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
)

// CategoryReader defines read operations for categories and sub-categories
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves categories ordered by name, optionally only those of one type.
	ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error)

	// FindSubCategoryByID retrieves a specific sub-category by its unique identifier.
	FindSubCategoryByID(ctx context.Context, subCategoryID string) (*domain.SubCategory, error)

	// ListSubCategories retrieves the sub-categories of a category ordered by name.
	ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error)
}

// CategoryWriter defines write operations for categories and sub-categories
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error

	SaveSubCategory(ctx context.Context, subCategory domain.SubCategory) error
	UpdateSubCategory(ctx context.Context, subCategory domain.SubCategory) error
	DeleteSubCategory(ctx context.Context, subCategoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

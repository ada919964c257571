package dto

import "github.com/SscSPs/cashflow_app/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name string              `json:"name" binding:"required,max=100"`
	Type domain.CategoryType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Changing the type is only possible while no transaction uses the category.
type UpdateCategoryRequest struct {
	Name *string              `json:"name" binding:"omitempty,min=1,max=100"`
	Type *domain.CategoryType `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// CreateSubCategoryRequest defines the data needed to create a sub-category.
type CreateSubCategoryRequest struct {
	CategoryID string `json:"categoryID" binding:"required"`
	Name       string `json:"name" binding:"required,max=100"`
}

// UpdateSubCategoryRequest renames a sub-category.
type UpdateSubCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// ListCategoriesParams filters the category lookup.
type ListCategoriesParams struct {
	Type string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// ListSubCategoriesParams selects the parent of the sub-category lookup.
type ListSubCategoriesParams struct {
	CategoryID string `form:"category_id" binding:"required"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryID"`
	Name       string              `json:"name"`
	Type       domain.CategoryType `json:"type"`
}

// SubCategoryResponse defines the data returned for a sub-category.
type SubCategoryResponse struct {
	SubCategoryID string `json:"subCategoryID"`
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Name: c.Name, Type: c.Type}
}

func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}

func ToSubCategoryResponse(s *domain.SubCategory) SubCategoryResponse {
	return SubCategoryResponse{SubCategoryID: s.SubCategoryID, CategoryID: s.CategoryID, Name: s.Name}
}

func ToListSubCategoryResponse(subs []domain.SubCategory) []SubCategoryResponse {
	res := make([]SubCategoryResponse, len(subs))
	for i := range subs {
		res[i] = ToSubCategoryResponse(&subs[i])
	}
	return res
}

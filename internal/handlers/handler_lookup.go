package handlers

import (
	"net/http"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// lookupHandler serves the pickers of the movement form.
type lookupHandler struct {
	categoryService portssvc.CategoryReaderSvc
	contactService  portssvc.ContactSvc
}

func registerLookupRoutes(rg *gin.RouterGroup, categoryService portssvc.CategoryReaderSvc, contactService portssvc.ContactSvc) {
	h := &lookupHandler{categoryService: categoryService, contactService: contactService}

	rg.GET("/categories", h.listCategories)
	rg.GET("/subcategories", h.listSubCategories)
	rg.GET("/contacts", h.listContacts)
}

// listCategories godoc
// @Summary List categories
// @Tags lookups
// @Produce  json
// @Param   type query string false "INCOME or EXPENSE"
// @Success 200 {array} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid type"
// @Failure 500 {object} ErrorResponse "Failed to list categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *lookupHandler) listCategories(c *gin.Context) {
	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	var categoryType *domain.CategoryType
	if params.Type != "" {
		t := domain.CategoryType(params.Type)
		categoryType = &t
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), categoryType)
	if err != nil {
		respondServiceError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// listSubCategories godoc
// @Summary List the sub-categories of a category
// @Tags lookups
// @Produce  json
// @Param   category_id query string true "Parent category ID"
// @Success 200 {array} dto.SubCategoryResponse
// @Failure 400 {object} ErrorResponse "category_id is required"
// @Failure 500 {object} ErrorResponse "Failed to list sub-categories"
// @Security BearerAuth
// @Router /subcategories [get]
func (h *lookupHandler) listSubCategories(c *gin.Context) {
	var params dto.ListSubCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	subs, err := h.categoryService.ListSubCategories(c.Request.Context(), params.CategoryID)
	if err != nil {
		respondServiceError(c, err, "Failed to list sub-categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSubCategoryResponse(subs))
}

// listContacts godoc
// @Summary List counterparties for a movement type
// @Description Customers for INCOME, vendors for EXPENSE.
// @Tags lookups
// @Produce  json
// @Param   type query string true "INCOME or EXPENSE"
// @Success 200 {object} dto.ContactLookupResponse
// @Failure 400 {object} ErrorResponse "Invalid type"
// @Failure 500 {object} ErrorResponse "Failed to list contacts"
// @Security BearerAuth
// @Router /contacts [get]
func (h *lookupHandler) listContacts(c *gin.Context) {
	var params dto.ListContactsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	lookup, err := h.contactService.ListContactsForType(c.Request.Context(), domain.CategoryType(params.Type))
	if err != nil {
		respondServiceError(c, err, "Failed to list contacts")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactLookupResponse(lookup))
}

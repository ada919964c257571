package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/SscSPs/cashflow_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// configHandler handles the administrator's configuration screens: categories and safe grants.
type configHandler struct {
	categoryService    portssvc.CategoryWriterSvc
	accessGrantService portssvc.AccessGrantSvcFacade
}

// registerConfigRoutes registers the administrator-only configuration routes.
func registerConfigRoutes(rg *gin.RouterGroup, categoryService portssvc.CategoryWriterSvc, accessGrantService portssvc.AccessGrantSvcFacade) {
	h := &configHandler{categoryService: categoryService, accessGrantService: accessGrantService}

	admin := rg.Group("/admin", middleware.RequireAdmin())
	{
		admin.POST("/categories", h.createCategory)
		admin.PUT("/categories/:id", h.updateCategory)
		admin.DELETE("/categories/:id", h.deleteCategory)

		admin.POST("/subcategories", h.createSubCategory)
		admin.PUT("/subcategories/:id", h.updateSubCategory)
		admin.DELETE("/subcategories/:id", h.deleteSubCategory)

		admin.GET("/grants", h.listGrants)
		admin.POST("/grants", h.assignSafe)
		admin.DELETE("/grants/:user_id/:safe_id", h.revokeGrant)
	}
}

// createCategory godoc
// @Summary Create a category
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 409 {object} ErrorResponse "Category already exists"
// @Failure 500 {object} ErrorResponse "Failed to create category"
// @Security BearerAuth
// @Router /admin/categories [post]
func (h *configHandler) createCategory(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), capability, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update a category
// @Description The type can only change while no transaction uses the category.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Category in use"
// @Failure 500 {object} ErrorResponse "Failed to update category"
// @Security BearerAuth
// @Router /admin/categories/{id} [put]
func (h *configHandler) updateCategory(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), capability, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Tags admin
// @Param   id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Category in use"
// @Failure 500 {object} ErrorResponse "Failed to delete category"
// @Security BearerAuth
// @Router /admin/categories/{id} [delete]
func (h *configHandler) deleteCategory(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), capability, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}

// createSubCategory godoc
// @Summary Create a sub-category
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   subcategory body dto.CreateSubCategoryRequest true "Sub-category details"
// @Success 201 {object} dto.SubCategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Parent category not found"
// @Failure 500 {object} ErrorResponse "Failed to create sub-category"
// @Security BearerAuth
// @Router /admin/subcategories [post]
func (h *configHandler) createSubCategory(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sub, err := h.categoryService.CreateSubCategory(c.Request.Context(), capability, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create sub-category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSubCategoryResponse(sub))
}

// updateSubCategory godoc
// @Summary Rename a sub-category
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   id path string true "Sub-category ID"
// @Param   subcategory body dto.UpdateSubCategoryRequest true "New name"
// @Success 200 {object} dto.SubCategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Sub-category not found"
// @Failure 500 {object} ErrorResponse "Failed to update sub-category"
// @Security BearerAuth
// @Router /admin/subcategories/{id} [put]
func (h *configHandler) updateSubCategory(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sub, err := h.categoryService.UpdateSubCategory(c.Request.Context(), capability, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update sub-category")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubCategoryResponse(sub))
}

// deleteSubCategory godoc
// @Summary Delete a sub-category
// @Tags admin
// @Param   id path string true "Sub-category ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Sub-category not found"
// @Failure 409 {object} ErrorResponse "Sub-category in use"
// @Failure 500 {object} ErrorResponse "Failed to delete sub-category"
// @Security BearerAuth
// @Router /admin/subcategories/{id} [delete]
func (h *configHandler) deleteSubCategory(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteSubCategory(c.Request.Context(), capability, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete sub-category")
		return
	}
	c.Status(http.StatusNoContent)
}

// listGrants godoc
// @Summary List safe grants
// @Tags admin
// @Produce  json
// @Param   user_id query string false "Only grants of this user"
// @Success 200 {array} dto.GrantResponse
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 500 {object} ErrorResponse "Failed to list grants"
// @Security BearerAuth
// @Router /admin/grants [get]
func (h *configHandler) listGrants(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var userID *string
	if v := c.Query("user_id"); v != "" {
		userID = &v
	}

	grants, err := h.accessGrantService.ListGrants(c.Request.Context(), capability, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list grants")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGrantResponse(grants))
}

// assignSafe godoc
// @Summary Grant a user access to a safe
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   grant body dto.AssignSafeRequest true "User and safe"
// @Success 201 {object} dto.GrantResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "User or safe not found"
// @Failure 409 {object} ErrorResponse "Grant already exists"
// @Failure 500 {object} ErrorResponse "Failed to assign safe"
// @Security BearerAuth
// @Router /admin/grants [post]
func (h *configHandler) assignSafe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var req dto.AssignSafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	grant, err := h.accessGrantService.AssignSafe(c.Request.Context(), capability, req)
	if err != nil {
		respondServiceError(c, err, "Failed to assign safe")
		return
	}

	logger.Info("Safe assigned", slog.String("target_user_id", req.UserID), slog.String("safe_id", req.SafeID))
	c.JSON(http.StatusCreated, dto.ToGrantResponse(grant))
}

// revokeGrant godoc
// @Summary Revoke a user's access to a safe
// @Tags admin
// @Param   user_id path string true "User ID"
// @Param   safe_id path string true "Safe ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Grant not found"
// @Failure 500 {object} ErrorResponse "Failed to revoke grant"
// @Security BearerAuth
// @Router /admin/grants/{user_id}/{safe_id} [delete]
func (h *configHandler) revokeGrant(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	if err := h.accessGrantService.RevokeGrant(c.Request.Context(), capability, c.Param("user_id"), c.Param("safe_id")); err != nil {
		respondServiceError(c, err, "Failed to revoke grant")
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/SscSPs/cashflow_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// safeHandler handles HTTP requests related to safes and their balances.
type safeHandler struct {
	safeService   portssvc.SafeSvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

func newSafeHandler(ss portssvc.SafeSvcFacade, ls portssvc.LedgerSvcFacade) *safeHandler {
	return &safeHandler{
		safeService:   ss,
		ledgerService: ls,
	}
}

// registerSafeRoutes registers routes related to safes.
// Writes and recomputes are restricted to administrators.
func registerSafeRoutes(rg *gin.RouterGroup, safeService portssvc.SafeSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newSafeHandler(safeService, ledgerService)

	safes := rg.Group("/safes")
	{
		safes.GET("", h.listSafes)
		safes.GET("/:id", h.getSafe)
		safes.GET("/:id/transactions", h.listSafeTransactions)

		admin := safes.Group("", middleware.RequireAdmin())
		admin.POST("", h.createSafe)
		admin.PUT("/:id", h.updateSafe)
		admin.DELETE("/:id", h.deleteSafe)
		admin.POST("/recompute", h.recomputeAll)
		admin.POST("/:id/recompute", h.recomputeSafe)
	}
}

// listSafes godoc
// @Summary List safes
// @Description Lists the safes visible to the caller with their cached balances.
// @Tags safes
// @Produce  json
// @Success 200 {array} dto.SafeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list safes"
// @Security BearerAuth
// @Router /safes [get]
func (h *safeHandler) listSafes(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	safes, err := h.safeService.ListSafes(c.Request.Context(), capability)
	if err != nil {
		respondServiceError(c, err, "Failed to list safes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSafeResponse(safes))
}

// getSafe godoc
// @Summary Get a safe by ID
// @Tags safes
// @Produce  json
// @Param   id path string true "Safe ID"
// @Success 200 {object} dto.SafeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Safe not granted"
// @Failure 404 {object} ErrorResponse "Safe not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve safe"
// @Security BearerAuth
// @Router /safes/{id} [get]
func (h *safeHandler) getSafe(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	safe, err := h.safeService.GetSafeByID(c.Request.Context(), capability, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve safe")
		return
	}
	c.JSON(http.StatusOK, dto.ToSafeResponse(safe))
}

// listSafeTransactions godoc
// @Summary Page through a safe's statement
// @Description Returns the safe's movements newest first. Running balances cover the full history.
// @Tags safes
// @Produce  json
// @Param   id path string true "Safe ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.TransactionPageResponse
// @Failure 400 {object} ErrorResponse "Invalid page token"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Safe not granted"
// @Failure 404 {object} ErrorResponse "Safe not found"
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /safes/{id}/transactions [get]
func (h *safeHandler) listSafeTransactions(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var params dto.ListSafeTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.ledgerService.ListSafeTransactions(c.Request.Context(), capability, c.Param("id"), params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionPageResponse(page))
}

// createSafe godoc
// @Summary Create a safe
// @Description Creates a safe with a zero balance. Administrators only.
// @Tags safes
// @Accept  json
// @Produce  json
// @Param   safe body dto.CreateSafeRequest true "Safe details"
// @Success 201 {object} dto.SafeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 409 {object} ErrorResponse "Safe name already used"
// @Failure 500 {object} ErrorResponse "Failed to create safe"
// @Security BearerAuth
// @Router /safes [post]
func (h *safeHandler) createSafe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateSafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	safe, err := h.safeService.CreateSafe(c.Request.Context(), capability, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create safe")
		return
	}

	logger.Info("Safe created successfully", slog.String("safe_id", safe.SafeID))
	c.JSON(http.StatusCreated, dto.ToSafeResponse(safe))
}

// updateSafe godoc
// @Summary Rename a safe
// @Tags safes
// @Accept  json
// @Produce  json
// @Param   id path string true "Safe ID"
// @Param   safe body dto.UpdateSafeRequest true "New name"
// @Success 200 {object} dto.SafeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 404 {object} ErrorResponse "Safe not found"
// @Failure 500 {object} ErrorResponse "Failed to update safe"
// @Security BearerAuth
// @Router /safes/{id} [put]
func (h *safeHandler) updateSafe(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateSafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	safe, err := h.safeService.UpdateSafe(c.Request.Context(), capability, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update safe")
		return
	}
	c.JSON(http.StatusOK, dto.ToSafeResponse(safe))
}

// deleteSafe godoc
// @Summary Delete a safe
// @Description Only safes without movements can be deleted.
// @Tags safes
// @Param   id path string true "Safe ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 404 {object} ErrorResponse "Safe not found"
// @Failure 409 {object} ErrorResponse "Safe still has transactions"
// @Failure 500 {object} ErrorResponse "Failed to delete safe"
// @Security BearerAuth
// @Router /safes/{id} [delete]
func (h *safeHandler) deleteSafe(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	if err := h.safeService.DeleteSafe(c.Request.Context(), capability, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete safe")
		return
	}
	c.Status(http.StatusNoContent)
}

// recomputeSafe godoc
// @Summary Recompute a safe balance
// @Description Recomputes the cached balance from the safe's movements. Safe to run repeatedly.
// @Tags safes
// @Produce  json
// @Param   id path string true "Safe ID"
// @Success 200 {object} dto.RecomputeBalanceResponse
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 404 {object} ErrorResponse "Safe not found"
// @Failure 500 {object} ErrorResponse "Failed to recompute balance"
// @Security BearerAuth
// @Router /safes/{id}/recompute [post]
func (h *safeHandler) recomputeSafe(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	safeID := c.Param("id")
	balance, err := h.ledgerService.RecomputeBalance(c.Request.Context(), capability, safeID)
	if err != nil {
		respondServiceError(c, err, "Failed to recompute balance")
		return
	}
	c.JSON(http.StatusOK, dto.RecomputeBalanceResponse{SafeID: safeID, Balance: balance})
}

// recomputeAll godoc
// @Summary Recompute every safe balance
// @Tags safes
// @Produce  json
// @Success 200 {array} dto.RecomputeBalanceResponse
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 500 {object} ErrorResponse "Failed to recompute balances"
// @Security BearerAuth
// @Router /safes/recompute [post]
func (h *safeHandler) recomputeAll(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	balances, err := h.ledgerService.RecomputeAllBalances(c.Request.Context(), capability)
	if err != nil {
		respondServiceError(c, err, "Failed to recompute balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecomputeBalanceResponses(balances))
}

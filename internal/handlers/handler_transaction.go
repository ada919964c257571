package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/SscSPs/cashflow_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to cash movements and the ledger views.
type transactionHandler struct {
	ledgerService      portssvc.LedgerReaderSvc
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerReaderSvc, ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		ledgerService:      ls,
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(ledgerService, transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.getLedger)
		transactions.GET("/today", h.getToday)
		transactions.POST("", h.createTransaction)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// getLedger godoc
// @Summary Get the ledger
// @Description Returns the movements of every visible safe, newest first, each with its running balance, plus a combined history across safes.
// @Tags transactions
// @Produce  json
// @Param   from query string false "Inclusive lower bound (RFC3339)"
// @Param   to query string false "Inclusive upper bound (RFC3339)"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build ledger"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) getLedger(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	var dateRange *domain.DateRange
	if params.From != nil || params.To != nil {
		dateRange = &domain.DateRange{}
		if params.From != nil {
			dateRange.From = *params.From
		}
		if params.To != nil {
			dateRange.To = *params.To
		}
	}

	view, err := h.ledgerService.GetLedgerView(c.Request.Context(), capability, dateRange)
	if err != nil {
		respondServiceError(c, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(view))
}

// getToday godoc
// @Summary Get today's movements
// @Description Returns today's movements per visible safe with income and expense totals. Running balances are not included.
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.LedgerResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build today view"
// @Security BearerAuth
// @Router /transactions/today [get]
func (h *transactionHandler) getToday(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	view, err := h.ledgerService.GetTodayView(c.Request.Context(), capability)
	if err != nil {
		respondServiceError(c, err, "Failed to build today view")
		return
	}
	c.JSON(http.StatusOK, dto.ToTodayResponse(view))
}

// createTransaction godoc
// @Summary Record a cash movement
// @Description Records a movement dated now and recomputes the safe balance in the same database transaction.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Movement details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown category"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Safe not granted"
// @Failure 500 {object} ErrorResponse "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to create transaction",
		slog.String("safe_id", req.SafeID),
		slog.String("category_id", req.CategoryID),
		slog.String("amount", req.Amount.String()))

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), capability, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Safe not granted"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), capability, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Standard users may only edit their own movements dated today. Only administrators may change the date.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not permitted"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	transactionID := c.Param("id")
	logger.Info("Received request to update transaction", slog.String("transaction_id", transactionID))

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), capability, transactionID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated successfully", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Standard users may only delete their own movements dated today.
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not permitted"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	capability, ok := capabilityOrAbort(c)
	if !ok {
		return
	}

	transactionID := c.Param("id")
	logger.Info("Received request to delete transaction", slog.String("transaction_id", transactionID))

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), capability, transactionID); err != nil {
		respondServiceError(c, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted successfully", slog.String("transaction_id", transactionID))
	c.Status(http.StatusNoContent)
}

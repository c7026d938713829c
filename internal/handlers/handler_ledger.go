package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/RAVEN850972/cam/internal/core/ports/services"
	"github.com/RAVEN850972/cam/internal/dto"
	"github.com/RAVEN850972/cam/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to the company ledger: the
// balance, transaction history, expenses and employee payments.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to the company ledger
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	finance := rg.Group("/finance")
	{
		finance.POST("/balance/initialize", h.initializeBalance)
		finance.GET("/balance", h.getBalance)
		finance.GET("/transactions", h.listTransactions)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.recordExpense)
		expenses.GET("", h.listExpenses)
		expenses.PUT("/:expense_id", h.updateExpense)
		expenses.DELETE("/:expense_id", h.deleteExpense)
	}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.recordPayment)
	}
}

// initializeBalance creates the company balance exactly once.
func (h *ledgerHandler) initializeBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InitializeBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	balance, err := h.ledgerService.InitializeBalance(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "initialize balance")
		return
	}

	logger.Info("Company balance initialized", slog.String("amount", req.Amount.String()))
	c.JSON(http.StatusCreated, dto.ToBalanceResponse(balance))
}

func (h *ledgerHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, err := h.ledgerService.GetBalance(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "get balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

func (h *ledgerHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	expense, err := h.ledgerService.RecordExpense(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "record expense")
		return
	}

	logger.Info("Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

func (h *ledgerHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListExpensesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	expenses, err := h.ledgerService.ListExpenses(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

func (h *ledgerHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expense_id")

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	expense, err := h.ledgerService.UpdateExpense(c.Request.Context(), expenseID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *ledgerHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expense_id")

	if err := h.ledgerService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		respondServiceError(c, logger, err, "delete expense")
		return
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID))
	c.Status(http.StatusNoContent)
}

func (h *ledgerHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	payment, err := h.ledgerService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "record payment")
		return
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("employee_id", payment.EmployeeID),
		slog.Bool("is_penalty", payment.IsPenalty()))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

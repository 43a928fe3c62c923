package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ftracker/ft_backend/internal/apperrors"
	portssvc "github.com/ftracker/ft_backend/internal/core/ports/services"
	"github.com/ftracker/ft_backend/internal/dto"
	"github.com/ftracker/ft_backend/internal/middleware"
)

// transactionHandler handles HTTP requests related to ledger transactions.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{
		ledgerService: ls,
	}
}

// registerTransactionRoutes registers routes related to ledger transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/income", h.recordIncome)
		transactions.POST("/expenses", h.recordExpense)
		transactions.POST("/transfers/usd-dzd", h.transferUsdToDzd)
		transactions.POST("/transfers/paypal-bank", h.transferPaypalToBank)
		transactions.GET("", h.listTransactions)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// writeRecordError maps a record-operation failure to its HTTP response.
func writeRecordError(c *gin.Context, logger *slog.Logger, operation string, err error) {
	if errors.Is(err, apperrors.ErrInsufficientFunds) {
		logger.Warn("Insufficient funds for "+operation, slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error for "+operation, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error("Failed to "+operation, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + operation})
}

// recordIncome godoc
// @Summary Record an income
// @Description Appends an income transaction, computing the fee from the requested fee policy and crediting Bank/USD or PayPal/USD
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record income"
// @Router /transactions/income [post]
func (h *transactionHandler) recordIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record income", slog.String("source", req.Source))

	txn, err := h.ledgerService.RecordIncome(c.Request.Context(), req)
	if err != nil {
		writeRecordError(c, logger, "record income", err)
		return
	}

	logger.Info("Income recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// recordExpense godoc
// @Summary Record an expense
// @Description Appends an expense transaction after checking the spending account holds enough funds
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /transactions/expenses [post]
func (h *transactionHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record expense", slog.String("category", req.Category), slog.String("currency", string(req.Currency)))

	txn, err := h.ledgerService.RecordExpense(c.Request.Context(), req)
	if err != nil {
		writeRecordError(c, logger, "record expense", err)
		return
	}

	logger.Info("Expense recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// transferUsdToDzd godoc
// @Summary Sell bank USD for DZD cash
// @Description Appends a currency sale moving funds from Bank/USD to Cash/DZD at the supplied actual rate
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateUsdDzdTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Failure 500 {object} map[string]string "Failed to record transfer"
// @Router /transactions/transfers/usd-dzd [post]
func (h *transactionHandler) transferUsdToDzd(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUsdDzdTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferUsdToDzd", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to transfer USD to DZD", slog.String("amount_usd", req.AmountUSD.String()))

	txn, err := h.ledgerService.TransferUsdToDzd(c.Request.Context(), req)
	if err != nil {
		writeRecordError(c, logger, "record transfer", err)
		return
	}

	logger.Info("Transfer recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// transferPaypalToBank godoc
// @Summary Move PayPal balance to the bank
// @Description Appends a PayPal withdrawal, deducting the transfer fee per the chosen method
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreatePaypalBankTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Failure 500 {object} map[string]string "Failed to record transfer"
// @Router /transactions/transfers/paypal-bank [post]
func (h *transactionHandler) transferPaypalToBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaypalBankTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferPaypalToBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to transfer PayPal to bank", slog.String("amount_sent", req.AmountSent.String()))

	txn, err := h.ledgerService.TransferPaypalToBank(c.Request.Context(), req)
	if err != nil {
		writeRecordError(c, logger, "record transfer", err)
		return
	}

	logger.Info("Transfer recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List ledger transactions
// @Description Retrieves transactions newest first, optionally filtered by kind and calendar month
// @Tags transactions
// @Produce  json
// @Param   kind query string false "Transaction kind" Enums(INCOME, EXPENSE, TRANSFER_USD_DZD, TRANSFER_PAYPAL_BANK)
// @Param   year query int false "Calendar year (with month)"
// @Param   month query int false "Calendar month 1-12 (with year)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction from the ledger by its ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	logger = logger.With(slog.String("transaction_id", transactionID))
	logger.Info("Received request to delete transaction")

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to delete transaction in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	logger.Info("Transaction deleted successfully")
	c.Status(http.StatusNoContent)
}

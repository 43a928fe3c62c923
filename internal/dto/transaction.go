package dto

import (
	"github.com/ftracker/ft_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to record an income.
// FeeAmount is only consulted when FeePolicy is MANUAL.
type CreateIncomeRequest struct {
	Source      string           `json:"source" binding:"required"`
	GrossAmount decimal.Decimal  `json:"grossAmount" binding:"required,dgt0"`
	FeePolicy   domain.FeePolicy `json:"feePolicy" binding:"required,oneof=NONE PERCENT MANUAL"`
	FeeAmount   *decimal.Decimal `json:"feeAmount"` // Optional, required for MANUAL policy
	ToPaypal    bool             `json:"toPaypal"`
}

// CreateExpenseRequest defines the data needed to record an expense.
// Category and Description are combined into the stored expense label.
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Currency    domain.Currency `json:"currency" binding:"required,oneof=USD DZD"`
}

// CreateUsdDzdTransferRequest defines the data needed to sell USD for DZD cash.
type CreateUsdDzdTransferRequest struct {
	AmountUSD decimal.Decimal `json:"amountUSD" binding:"required,dgt0"`
	Rate      decimal.Decimal `json:"rate" binding:"required,dgt0"`
}

// CreatePaypalBankTransferRequest defines the data needed to move a PayPal
// balance to the bank account.
type CreatePaypalBankTransferRequest struct {
	AmountSent decimal.Decimal       `json:"amountSent" binding:"required,dgt0"`
	Method     domain.TransferMethod `json:"method" binding:"required,oneof=AUTOMATIC MANUAL"`
}

// ListTransactionsParams defines query parameters for listing the ledger.
// Kind filters by transaction kind; Year/Month restrict to a calendar month
// (both must be provided together).
type ListTransactionsParams struct {
	Kind  string `form:"kind" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER_USD_DZD TRANSFER_PAYPAL_BANK"`
	Year  int    `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month int    `form:"month" binding:"omitempty,min=1,max=12"`
}

// TransactionResponse defines the data returned for a ledger transaction.
// Only the variant block matching Kind is populated.
type TransactionResponse struct {
	TransactionID string                            `json:"transactionID"`
	Date          string                            `json:"date"`
	Kind          domain.TransactionKind            `json:"kind"`
	Income        *domain.IncomeDetails             `json:"income,omitempty"`
	Expense       *domain.ExpenseDetails            `json:"expense,omitempty"`
	UsdDzd        *domain.UsdDzdTransferDetails     `json:"usdDzd,omitempty"`
	PaypalBank    *domain.PaypalBankTransferDetails `json:"paypalBank,omitempty"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format("2006-01-02"),
		Kind:          txn.Kind,
		Income:        txn.Income,
		Expense:       txn.Expense,
		UsdDzd:        txn.UsdDzd,
		PaypalBank:    txn.PaypalBank,
	}
}

// ToTransactionResponses converts a slice of domain transactions to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

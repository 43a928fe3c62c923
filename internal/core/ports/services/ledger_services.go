package services

import (
	"context"

	"github.com/ftracker/ft_backend/internal/core/domain"
	"github.com/ftracker/ft_backend/internal/dto"
)

// LedgerSvcFacade defines the operations that mutate and list the ledger.
// All record operations run the sufficiency guard against balances derived
// from the ledger prior to the proposal, and persist before any derived view
// can observe the new transaction.
type LedgerSvcFacade interface {
	// RecordIncome appends an income transaction, deriving the fee from the
	// requested fee policy.
	RecordIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Transaction, error)

	// RecordExpense appends an expense transaction after the sufficiency check.
	RecordExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Transaction, error)

	// TransferUsdToDzd appends a bank-to-cash currency sale after the
	// sufficiency check.
	TransferUsdToDzd(ctx context.Context, req dto.CreateUsdDzdTransferRequest) (*domain.Transaction, error)

	// TransferPaypalToBank appends a PayPal withdrawal after the sufficiency
	// check.
	TransferPaypalToBank(ctx context.Context, req dto.CreatePaypalBankTransferRequest) (*domain.Transaction, error)

	// ListTransactions retrieves ledger transactions newest first, optionally
	// filtered by kind and calendar month.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// DeleteTransaction removes a transaction by ID.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

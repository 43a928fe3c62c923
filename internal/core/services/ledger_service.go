package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ftracker/ft_backend/internal/core/domain"
	portsrepo "github.com/ftracker/ft_backend/internal/core/ports/repositories"
	portssvc "github.com/ftracker/ft_backend/internal/core/ports/services"
	"github.com/ftracker/ft_backend/internal/dto"
)

// OverdraftPolicy selects how strictly the sufficiency guard is enforced.
type OverdraftPolicy string

const (
	// OverdraftAdvisory runs the guard against balances read before the
	// append. Another writer hitting the store between the read and the
	// insert can still overdraw an account.
	OverdraftAdvisory OverdraftPolicy = "advisory"

	// OverdraftEnforced re-runs the guard and the insert inside a single
	// database transaction, serializing against concurrent writers.
	OverdraftEnforced OverdraftPolicy = "enforced"
)

// ledgerService provides the ledger mutation and listing operations.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	overdraft  OverdraftPolicy
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, overdraft OverdraftPolicy) portssvc.LedgerSvcFacade {
	if overdraft != OverdraftEnforced {
		overdraft = OverdraftAdvisory
	}
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		overdraft:  overdraft,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// RecordIncome appends an income transaction. Incomes only credit an
// account, so no sufficiency check applies.
func (s *ledgerService) RecordIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Transaction, error) {
	txn, err := domain.NewIncome(uuid.NewString(), time.Now().UTC(), req.Source, req.GrossAmount, req.FeePolicy, req.FeeAmount, req.ToPaypal)
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save income transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save income: %w", err)
	}

	s.LogInfo(ctx, "Income recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("net_amount", txn.Income.NetAmount.String()),
		slog.Bool("to_paypal", txn.Income.ToPaypal))
	return &txn, nil
}

// RecordExpense appends an expense transaction after the sufficiency check
// against the drawing account.
func (s *ledgerService) RecordExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Transaction, error) {
	label := req.Category
	if req.Description != "" {
		label = req.Category + " - " + req.Description
	}

	txn, err := domain.NewExpense(uuid.NewString(), time.Now().UTC(), label, req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	if err := s.saveGuarded(ctx, txn, req.Amount, req.Currency); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", req.Amount.String()),
		slog.String("currency", string(req.Currency)))
	return &txn, nil
}

// TransferUsdToDzd appends a bank-to-cash currency sale after the
// sufficiency check against the bank account.
func (s *ledgerService) TransferUsdToDzd(ctx context.Context, req dto.CreateUsdDzdTransferRequest) (*domain.Transaction, error) {
	txn, err := domain.NewUsdDzdTransfer(uuid.NewString(), time.Now().UTC(), req.AmountUSD, req.Rate)
	if err != nil {
		return nil, err
	}

	if err := s.saveGuarded(ctx, txn, req.AmountUSD, domain.CurrencyUSD); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "USD to DZD transfer recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount_usd", req.AmountUSD.String()),
		slog.String("amount_dzd", txn.UsdDzd.AmountDZD.String()))
	return &txn, nil
}

// TransferPaypalToBank appends a PayPal withdrawal after the sufficiency
// check against the pending PayPal balance.
func (s *ledgerService) TransferPaypalToBank(ctx context.Context, req dto.CreatePaypalBankTransferRequest) (*domain.Transaction, error) {
	txn, err := domain.NewPaypalBankTransfer(uuid.NewString(), time.Now().UTC(), req.AmountSent, req.Method)
	if err != nil {
		return nil, err
	}

	if err := s.saveGuarded(ctx, txn, req.AmountSent, domain.CurrencyUSD); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "PayPal to bank transfer recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount_sent", req.AmountSent.String()),
		slog.String("amount_received", txn.PaypalBank.AmountReceived.String()))
	return &txn, nil
}

// saveGuarded persists a debiting transaction behind the sufficiency guard.
// Persistence always comes first: nothing is visible to derived views until
// the store has confirmed the append, and on failure nothing is kept.
func (s *ledgerService) saveGuarded(ctx context.Context, txn domain.Transaction, amount decimal.Decimal, currency domain.Currency) error {
	guard := func(ledger []domain.Transaction) error {
		return domain.CheckSufficiency(domain.ComputeBalances(ledger), txn.Kind, amount, currency)
	}

	if s.overdraft == OverdraftEnforced {
		if err := s.ledgerRepo.SaveTransactionChecked(ctx, txn, guard); err != nil {
			s.LogWarn(ctx, "Guarded save rejected or failed",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("kind", string(txn.Kind)),
				slog.String("error", err.Error()))
			return err
		}
		return nil
	}

	// Advisory mode: read then decide. The check uses balances derived from
	// the ledger prior to this proposal.
	ledger, err := s.ledgerRepo.FindAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for sufficiency check")
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	if err := guard(ledger); err != nil {
		s.LogWarn(ctx, "Sufficiency check rejected transaction",
			slog.String("kind", string(txn.Kind)),
			slog.String("error", err.Error()))
		return err
	}
	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// ListTransactions retrieves ledger transactions newest first, optionally
// filtered by kind and calendar month.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	ledger, err := s.ledgerRepo.FindAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for listing")
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	var monthStart, monthEnd time.Time
	if params.Year != 0 && params.Month != 0 {
		monthStart = time.Date(params.Year, time.Month(params.Month), 1, 0, 0, 0, 0, time.UTC)
		monthEnd = monthStart.AddDate(0, 1, 0)
	}

	filtered := make([]domain.Transaction, 0, len(ledger))
	for _, txn := range ledger {
		if params.Kind != "" && txn.Kind != domain.TransactionKind(params.Kind) {
			continue
		}
		if !monthStart.IsZero() && (txn.Date.Before(monthStart) || !txn.Date.Before(monthEnd)) {
			continue
		}
		filtered = append(filtered, txn)
	}

	// Newest first; within a date, latest appended first.
	for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(filtered)))
	return filtered, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.ledgerRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ftracker/ft_backend/internal/core/domain"
	portsrepo "github.com/ftracker/ft_backend/internal/core/ports/repositories"
	portssvc "github.com/ftracker/ft_backend/internal/core/ports/services"
)

// reportingService implements the ReportingSvcFacade interface. Every report
// is a pure fold over a fresh full scan of the ledger.
type reportingService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerReader
	settingsRepo portsrepo.SettingsRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(ledgerRepo portsrepo.LedgerReader, settingsRepo portsrepo.SettingsRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Balances derives the current balance of all three accounts.
func (s *reportingService) Balances(ctx context.Context) (domain.Balances, error) {
	ledger, err := s.ledgerRepo.FindAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for balance derivation")
		return domain.Balances{}, fmt.Errorf("failed to load ledger: %w", err)
	}

	balances := domain.ComputeBalances(ledger)
	s.LogDebug(ctx, "Balances derived",
		slog.Int("transaction_count", len(ledger)),
		slog.String("bank_usd", balances.BankUSD.String()),
		slog.String("paypal_usd", balances.PaypalUSD.String()),
		slog.String("cash_dzd", balances.CashDZD.String()))
	return balances, nil
}

// MonthlySummary derives income and spending totals for one calendar month.
func (s *reportingService) MonthlySummary(ctx context.Context, year int, month time.Month) (domain.MonthlySummary, error) {
	ledger, err := s.ledgerRepo.FindAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for monthly summary")
		return domain.MonthlySummary{}, fmt.Errorf("failed to load ledger: %w", err)
	}

	summary := domain.ComputeMonthlySummary(ledger, year, month)
	s.LogDebug(ctx, "Monthly summary derived",
		slog.Int("year", year),
		slog.Int("month", int(month)),
		slog.String("earned", summary.Earned.String()))
	return summary, nil
}

// NetWorth derives the combined USD worth of all accounts using the
// informational display rate.
func (s *reportingService) NetWorth(ctx context.Context) (decimal.Decimal, error) {
	balances, err := s.Balances(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	rate, err := s.settingsRepo.GetDisplayRate(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load display rate for net worth")
		return decimal.Zero, fmt.Errorf("failed to load display rate: %w", err)
	}

	return balances.NetWorthUSD(rate), nil
}

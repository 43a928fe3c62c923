package services

import (
	"context"
	"time"

	"github.com/ftracker/ft_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade defines the read-only derivations over the ledger.
// Every call recomputes from the full ledger; there is no cached state.
type ReportingSvcFacade interface {
	// Balances derives the current balance of all three accounts.
	Balances(ctx context.Context) (domain.Balances, error)

	// MonthlySummary derives income and spending totals for one calendar month.
	MonthlySummary(ctx context.Context, year int, month time.Month) (domain.MonthlySummary, error)

	// NetWorth derives the combined USD worth of all accounts using the
	// informational display rate.
	NetWorth(ctx context.Context) (decimal.Decimal, error)
}

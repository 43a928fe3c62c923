package domain

import (
	"fmt"
	"time"

	"github.com/ftracker/ft_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Balances holds the derived point-in-time balance of each account. It is
// never stored; it is recomputed from the full ledger on every read.
type Balances struct {
	BankUSD   decimal.Decimal `json:"bankUSD"`
	PaypalUSD decimal.Decimal `json:"paypalUSD"`
	CashDZD   decimal.Decimal `json:"cashDZD"`
}

// MonthlySummary holds the income and spending totals for one calendar month.
// Transfers move money between accounts and never contribute to either side.
type MonthlySummary struct {
	Earned   decimal.Decimal `json:"earned"`
	SpentUSD decimal.Decimal `json:"spentUSD"`
	SpentDZD decimal.Decimal `json:"spentDZD"`
}

// ComputeBalances folds the full transaction sequence into the three account
// balances. The fold is pure and commutative: every rule is an addition or
// subtraction, so the result does not depend on iteration order.
func ComputeBalances(transactions []Transaction) Balances {
	var b Balances
	for _, t := range transactions {
		switch t.Kind {
		case KindIncome:
			if t.Income.ToPaypal {
				b.PaypalUSD = b.PaypalUSD.Add(t.Income.NetAmount)
			} else {
				b.BankUSD = b.BankUSD.Add(t.Income.NetAmount)
			}
		case KindExpense:
			if t.Expense.Currency == CurrencyUSD {
				b.BankUSD = b.BankUSD.Sub(t.Expense.Amount)
			} else {
				b.CashDZD = b.CashDZD.Sub(t.Expense.Amount)
			}
		case KindTransferUsdDzd:
			b.BankUSD = b.BankUSD.Sub(t.UsdDzd.AmountUSD)
			b.CashDZD = b.CashDZD.Add(t.UsdDzd.AmountDZD)
		case KindTransferPaypalBank:
			b.PaypalUSD = b.PaypalUSD.Sub(t.PaypalBank.AmountSent)
			b.BankUSD = b.BankUSD.Add(t.PaypalBank.AmountReceived)
		}
	}
	return b
}

// ComputeMonthlySummary folds the transactions whose date falls within the
// given calendar month. Dates are compared as a real range, not a string
// prefix, so month and year boundaries behave at day resolution.
func ComputeMonthlySummary(transactions []Transaction, year int, month time.Month) MonthlySummary {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var s MonthlySummary
	for _, t := range transactions {
		if t.Date.Before(start) || !t.Date.Before(end) {
			continue
		}
		switch t.Kind {
		case KindIncome:
			s.Earned = s.Earned.Add(t.Income.NetAmount)
		case KindExpense:
			if t.Expense.Currency == CurrencyUSD {
				s.SpentUSD = s.SpentUSD.Add(t.Expense.Amount)
			} else {
				s.SpentDZD = s.SpentDZD.Add(t.Expense.Amount)
			}
		case KindTransferUsdDzd, KindTransferPaypalBank:
			// Transfers are account movements, not earnings or spending.
		}
	}
	return s
}

// NetWorthUSD reports the combined worth of all three accounts in USD, using
// the informational display rate to convert the DZD cash balance. A
// non-positive rate makes the cash term zero rather than dividing by it.
func (b Balances) NetWorthUSD(displayRate decimal.Decimal) decimal.Decimal {
	total := b.BankUSD.Add(b.PaypalUSD)
	if displayRate.IsPositive() {
		total = total.Add(b.CashDZD.Div(displayRate))
	}
	return total
}

// CheckSufficiency decides whether the account a proposed transaction draws
// from can cover the given amount. It must be called with balances derived
// from the ledger state prior to the proposal; a failure carries
// apperrors.ErrInsufficientFunds and names the short account.
func CheckSufficiency(b Balances, kind TransactionKind, amount decimal.Decimal, currency Currency) error {
	switch kind {
	case KindIncome:
		return nil
	case KindExpense:
		if currency == CurrencyDZD {
			if b.CashDZD.LessThan(amount) {
				return fmt.Errorf("%w: cash balance %s DZD is below %s DZD", apperrors.ErrInsufficientFunds, b.CashDZD, amount)
			}
			return nil
		}
		if b.BankUSD.LessThan(amount) {
			return fmt.Errorf("%w: bank balance %s USD is below %s USD", apperrors.ErrInsufficientFunds, b.BankUSD, amount)
		}
		return nil
	case KindTransferUsdDzd:
		if b.BankUSD.LessThan(amount) {
			return fmt.Errorf("%w: bank balance %s USD is below %s USD", apperrors.ErrInsufficientFunds, b.BankUSD, amount)
		}
		return nil
	case KindTransferPaypalBank:
		if b.PaypalUSD.LessThan(amount) {
			return fmt.Errorf("%w: paypal balance %s USD is below %s USD", apperrors.ErrInsufficientFunds, b.PaypalUSD, amount)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, kind)
	}
}

package mapping

import (
	"fmt"
	"time"

	"github.com/ftracker/ft_backend/internal/core/domain"
	"github.com/ftracker/ft_backend/internal/models"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ToModelTransaction converts a domain Transaction to its persisted payload.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		Date:          d.Date.Format(dateLayout),
		Kind:          string(d.Kind),
	}
	switch d.Kind {
	case domain.KindIncome:
		m.Source = strPtr(d.Income.Source)
		m.GrossAmount = decPtr(d.Income.GrossAmount)
		m.FeeAmount = decPtr(d.Income.FeeAmount)
		m.NetAmount = decPtr(d.Income.NetAmount)
		m.ToPaypal = boolPtr(d.Income.ToPaypal)
	case domain.KindExpense:
		m.Label = strPtr(d.Expense.Label)
		m.Amount = decPtr(d.Expense.Amount)
		m.Currency = strPtr(string(d.Expense.Currency))
	case domain.KindTransferUsdDzd:
		m.AmountUSD = decPtr(d.UsdDzd.AmountUSD)
		m.Rate = decPtr(d.UsdDzd.Rate)
		m.AmountDZD = decPtr(d.UsdDzd.AmountDZD)
	case domain.KindTransferPaypalBank:
		m.AmountSent = decPtr(d.PaypalBank.AmountSent)
		m.TransferFee = decPtr(d.PaypalBank.Fee)
		m.AmountReceived = decPtr(d.PaypalBank.AmountReceived)
	}
	return m
}

// ToDomainTransaction converts a persisted payload back to a domain
// Transaction, rejecting payloads whose variant fields are missing.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	date, err := time.ParseInLocation(dateLayout, m.Date, time.UTC)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid transaction date %q: %w", m.Date, err)
	}

	d := domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          date,
		Kind:          domain.TransactionKind(m.Kind),
	}

	switch d.Kind {
	case domain.KindIncome:
		if m.GrossAmount == nil || m.FeeAmount == nil || m.NetAmount == nil {
			return domain.Transaction{}, fmt.Errorf("income payload %s is missing amount fields", m.TransactionID)
		}
		d.Income = &domain.IncomeDetails{
			Source:      strVal(m.Source),
			GrossAmount: *m.GrossAmount,
			FeeAmount:   *m.FeeAmount,
			NetAmount:   *m.NetAmount,
			ToPaypal:    m.ToPaypal != nil && *m.ToPaypal,
		}
	case domain.KindExpense:
		if m.Amount == nil || m.Currency == nil {
			return domain.Transaction{}, fmt.Errorf("expense payload %s is missing amount fields", m.TransactionID)
		}
		d.Expense = &domain.ExpenseDetails{
			Label:    strVal(m.Label),
			Amount:   *m.Amount,
			Currency: domain.Currency(*m.Currency),
		}
	case domain.KindTransferUsdDzd:
		if m.AmountUSD == nil || m.Rate == nil || m.AmountDZD == nil {
			return domain.Transaction{}, fmt.Errorf("transfer payload %s is missing amount fields", m.TransactionID)
		}
		d.UsdDzd = &domain.UsdDzdTransferDetails{
			AmountUSD: *m.AmountUSD,
			Rate:      *m.Rate,
			AmountDZD: *m.AmountDZD,
		}
	case domain.KindTransferPaypalBank:
		if m.AmountSent == nil || m.TransferFee == nil || m.AmountReceived == nil {
			return domain.Transaction{}, fmt.Errorf("transfer payload %s is missing amount fields", m.TransactionID)
		}
		d.PaypalBank = &domain.PaypalBankTransferDetails{
			AmountSent:     *m.AmountSent,
			Fee:            *m.TransferFee,
			AmountReceived: *m.AmountReceived,
		}
	default:
		return domain.Transaction{}, fmt.Errorf("unknown transaction kind %q for %s", m.Kind, m.TransactionID)
	}

	return d, nil
}

func strPtr(s string) *string { return &s }

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolPtr(b bool) *bool { return &b }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

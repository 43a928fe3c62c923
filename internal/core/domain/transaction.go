package domain

import (
	"fmt"
	"time"

	"github.com/ftracker/ft_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind discriminates the closed set of ledger transaction variants.
type TransactionKind string

const (
	KindIncome             TransactionKind = "INCOME"
	KindExpense            TransactionKind = "EXPENSE"
	KindTransferUsdDzd     TransactionKind = "TRANSFER_USD_DZD"
	KindTransferPaypalBank TransactionKind = "TRANSFER_PAYPAL_BANK"
)

// Currency identifies which account an expense draws from.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyDZD Currency = "DZD"
)

// FeePolicy selects how the fee on an income is derived.
type FeePolicy string

const (
	FeePolicyNone    FeePolicy = "NONE"
	FeePolicyPercent FeePolicy = "PERCENT"
	FeePolicyManual  FeePolicy = "MANUAL"
)

// TransferMethod selects how a PayPal withdrawal is executed. The manual
// method carries a fixed service fee, the automatic one is free.
type TransferMethod string

const (
	TransferMethodAutomatic TransferMethod = "AUTOMATIC"
	TransferMethodManual    TransferMethod = "MANUAL"
)

var (
	// percentFeeRate is the platform cut applied under FeePolicyPercent.
	percentFeeRate = decimal.New(1, -1) // 0.1

	// manualTransferFee is the fixed charge for a manual PayPal withdrawal.
	manualTransferFee = decimal.NewFromInt(5)
)

// IncomeDetails holds the variant fields of an INCOME transaction.
// NetAmount is always GrossAmount - FeeAmount; it is computed at construction
// and never set independently.
type IncomeDetails struct {
	Source      string          `json:"source"`
	GrossAmount decimal.Decimal `json:"grossAmount"`
	FeeAmount   decimal.Decimal `json:"feeAmount"`
	NetAmount   decimal.Decimal `json:"netAmount"`
	ToPaypal    bool            `json:"toPaypal"`
}

// ExpenseDetails holds the variant fields of an EXPENSE transaction.
type ExpenseDetails struct {
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// UsdDzdTransferDetails holds the variant fields of a TRANSFER_USD_DZD
// transaction. AmountDZD is always AmountUSD * Rate.
type UsdDzdTransferDetails struct {
	AmountUSD decimal.Decimal `json:"amountUSD"`
	Rate      decimal.Decimal `json:"rate"`
	AmountDZD decimal.Decimal `json:"amountDZD"`
}

// PaypalBankTransferDetails holds the variant fields of a
// TRANSFER_PAYPAL_BANK transaction. AmountReceived is always AmountSent - Fee.
type PaypalBankTransferDetails struct {
	AmountSent     decimal.Decimal `json:"amountSent"`
	Fee            decimal.Decimal `json:"fee"`
	AmountReceived decimal.Decimal `json:"amountReceived"`
}

// Transaction is one immutable ledger event. Exactly one of the variant
// detail pointers is non-nil, matching Kind.
type Transaction struct {
	TransactionID string                     `json:"transactionID"`
	Date          time.Time                  `json:"date"`
	Kind          TransactionKind            `json:"kind"`
	Income        *IncomeDetails             `json:"income,omitempty"`
	Expense       *ExpenseDetails            `json:"expense,omitempty"`
	UsdDzd        *UsdDzdTransferDetails     `json:"usdDzd,omitempty"`
	PaypalBank    *PaypalBankTransferDetails `json:"paypalBank,omitempty"`
}

// ComputeIncomeFee derives the fee amount for an income under the given
// policy. manualFee is only consulted under FeePolicyManual and must be
// non-negative.
func ComputeIncomeFee(policy FeePolicy, gross decimal.Decimal, manualFee *decimal.Decimal) (decimal.Decimal, error) {
	switch policy {
	case FeePolicyNone:
		return decimal.Zero, nil
	case FeePolicyPercent:
		return gross.Mul(percentFeeRate), nil
	case FeePolicyManual:
		if manualFee == nil {
			return decimal.Zero, fmt.Errorf("%w: manual fee amount is required", apperrors.ErrValidation)
		}
		if manualFee.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: fee amount must not be negative", apperrors.ErrValidation)
		}
		return *manualFee, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown fee policy %q", apperrors.ErrValidation, policy)
	}
}

// TransferFee derives the fee for a PayPal withdrawal from the chosen method.
func TransferFee(method TransferMethod) (decimal.Decimal, error) {
	switch method {
	case TransferMethodAutomatic:
		return decimal.Zero, nil
	case TransferMethodManual:
		return manualTransferFee, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown transfer method %q", apperrors.ErrValidation, method)
	}
}

// NewIncome constructs an INCOME transaction, deriving the fee from the
// policy and the net amount from gross - fee.
func NewIncome(id string, now time.Time, source string, gross decimal.Decimal, policy FeePolicy, manualFee *decimal.Decimal, toPaypal bool) (Transaction, error) {
	if gross.LessThanOrEqual(decimal.Zero) {
		return Transaction{}, fmt.Errorf("%w: gross amount must be positive", apperrors.ErrValidation)
	}
	fee, err := ComputeIncomeFee(policy, gross, manualFee)
	if err != nil {
		return Transaction{}, err
	}
	if fee.GreaterThan(gross) {
		return Transaction{}, fmt.Errorf("%w: fee amount exceeds gross amount", apperrors.ErrValidation)
	}
	return Transaction{
		TransactionID: id,
		Date:          dateOnly(now),
		Kind:          KindIncome,
		Income: &IncomeDetails{
			Source:      source,
			GrossAmount: gross,
			FeeAmount:   fee,
			NetAmount:   gross.Sub(fee),
			ToPaypal:    toPaypal,
		},
	}, nil
}

// NewExpense constructs an EXPENSE transaction.
func NewExpense(id string, now time.Time, label string, amount decimal.Decimal, currency Currency) (Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Transaction{}, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}
	if currency != CurrencyUSD && currency != CurrencyDZD {
		return Transaction{}, fmt.Errorf("%w: unknown currency %q", apperrors.ErrValidation, currency)
	}
	return Transaction{
		TransactionID: id,
		Date:          dateOnly(now),
		Kind:          KindExpense,
		Expense: &ExpenseDetails{
			Label:    label,
			Amount:   amount,
			Currency: currency,
		},
	}, nil
}

// NewUsdDzdTransfer constructs a TRANSFER_USD_DZD transaction, deriving the
// credited DZD amount from amountUSD * rate.
func NewUsdDzdTransfer(id string, now time.Time, amountUSD, rate decimal.Decimal) (Transaction, error) {
	if amountUSD.LessThanOrEqual(decimal.Zero) {
		return Transaction{}, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return Transaction{}, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	return Transaction{
		TransactionID: id,
		Date:          dateOnly(now),
		Kind:          KindTransferUsdDzd,
		UsdDzd: &UsdDzdTransferDetails{
			AmountUSD: amountUSD,
			Rate:      rate,
			AmountDZD: amountUSD.Mul(rate),
		},
	}, nil
}

// NewPaypalBankTransfer constructs a TRANSFER_PAYPAL_BANK transaction,
// deriving the fee from the method and the received amount from sent - fee.
func NewPaypalBankTransfer(id string, now time.Time, amountSent decimal.Decimal, method TransferMethod) (Transaction, error) {
	if amountSent.LessThanOrEqual(decimal.Zero) {
		return Transaction{}, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	fee, err := TransferFee(method)
	if err != nil {
		return Transaction{}, err
	}
	if fee.GreaterThan(amountSent) {
		return Transaction{}, fmt.Errorf("%w: transfer fee exceeds amount sent", apperrors.ErrValidation)
	}
	return Transaction{
		TransactionID: id,
		Date:          dateOnly(now),
		Kind:          KindTransferPaypalBank,
		PaypalBank: &PaypalBankTransferDetails{
			AmountSent:     amountSent,
			Fee:            fee,
			AmountReceived: amountSent.Sub(fee),
		},
	}, nil
}

// Validate checks the structural invariants of a transaction: the variant
// details match the kind and the derived fields are consistent. Constructed
// transactions always pass; this guards data loaded from storage.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	switch t.Kind {
	case KindIncome:
		if t.Income == nil {
			return fmt.Errorf("income details are required for kind %s", t.Kind)
		}
		if t.Income.FeeAmount.IsNegative() {
			return fmt.Errorf("fee amount must not be negative")
		}
		if !t.Income.NetAmount.Equal(t.Income.GrossAmount.Sub(t.Income.FeeAmount)) {
			return fmt.Errorf("net amount does not equal gross minus fee")
		}
	case KindExpense:
		if t.Expense == nil {
			return fmt.Errorf("expense details are required for kind %s", t.Kind)
		}
		if t.Expense.Currency != CurrencyUSD && t.Expense.Currency != CurrencyDZD {
			return fmt.Errorf("unknown expense currency %q", t.Expense.Currency)
		}
	case KindTransferUsdDzd:
		if t.UsdDzd == nil {
			return fmt.Errorf("transfer details are required for kind %s", t.Kind)
		}
		if !t.UsdDzd.AmountDZD.Equal(t.UsdDzd.AmountUSD.Mul(t.UsdDzd.Rate)) {
			return fmt.Errorf("DZD amount does not equal USD amount times rate")
		}
	case KindTransferPaypalBank:
		if t.PaypalBank == nil {
			return fmt.Errorf("transfer details are required for kind %s", t.Kind)
		}
		if !t.PaypalBank.AmountReceived.Equal(t.PaypalBank.AmountSent.Sub(t.PaypalBank.Fee)) {
			return fmt.Errorf("received amount does not equal sent minus fee")
		}
	default:
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	return nil
}

// dateOnly truncates a timestamp to its calendar date in UTC. Ledger
// transactions carry dates, not times.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

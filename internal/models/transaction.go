package models

import "github.com/shopspring/decimal"

// Transaction is the persisted row payload for a ledger transaction. The
// variant fields are flattened into one JSONB document keyed by kind, the
// way the transactions table stores them; only the fields belonging to the
// kind are set.
type Transaction struct {
	TransactionID string `json:"id"`
	Date          string `json:"date"` // YYYY-MM-DD
	Kind          string `json:"kind"`

	// INCOME
	Source      *string          `json:"source,omitempty"`
	GrossAmount *decimal.Decimal `json:"grossAmount,omitempty"`
	FeeAmount   *decimal.Decimal `json:"feeAmount,omitempty"`
	NetAmount   *decimal.Decimal `json:"netAmount,omitempty"`
	ToPaypal    *bool            `json:"toPaypal,omitempty"`

	// EXPENSE
	Label    *string          `json:"label,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Currency *string          `json:"currency,omitempty"`

	// TRANSFER_USD_DZD
	AmountUSD *decimal.Decimal `json:"amountUSD,omitempty"`
	Rate      *decimal.Decimal `json:"rate,omitempty"`
	AmountDZD *decimal.Decimal `json:"amountDZD,omitempty"`

	// TRANSFER_PAYPAL_BANK
	AmountSent     *decimal.Decimal `json:"amountSent,omitempty"`
	TransferFee    *decimal.Decimal `json:"transferFee,omitempty"`
	AmountReceived *decimal.Decimal `json:"amountReceived,omitempty"`
}

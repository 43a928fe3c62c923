package dto

import (
	"github.com/ftracker/ft_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalancesResponse defines the balances report. The DZD equivalents and the
// net worth are informational conversions using the display rate; they are
// never used for transfer math.
type BalancesResponse struct {
	BankUSD        decimal.Decimal `json:"bankUSD"`
	PaypalUSD      decimal.Decimal `json:"paypalUSD"`
	CashDZD        decimal.Decimal `json:"cashDZD"`
	BankDZDEquiv   decimal.Decimal `json:"bankDZDEquiv"`
	PaypalDZDEquiv decimal.Decimal `json:"paypalDZDEquiv"`
	NetWorthUSD    decimal.Decimal `json:"netWorthUSD"`
	DisplayRate    decimal.Decimal `json:"displayRate"`
}

// MonthlySummaryResponse defines the monthly report for one calendar month.
type MonthlySummaryResponse struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Earned   decimal.Decimal `json:"earned"`
	SpentUSD decimal.Decimal `json:"spentUSD"`
	SpentDZD decimal.Decimal `json:"spentDZD"`
}

// MonthlySummaryParams defines query parameters for the monthly report.
type MonthlySummaryParams struct {
	Year  int `form:"year" binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// ToBalancesResponse converts derived balances plus the display rate into
// the report DTO.
func ToBalancesResponse(b domain.Balances, displayRate decimal.Decimal) BalancesResponse {
	return BalancesResponse{
		BankUSD:        b.BankUSD,
		PaypalUSD:      b.PaypalUSD,
		CashDZD:        b.CashDZD,
		BankDZDEquiv:   b.BankUSD.Mul(displayRate),
		PaypalDZDEquiv: b.PaypalUSD.Mul(displayRate),
		NetWorthUSD:    b.NetWorthUSD(displayRate),
		DisplayRate:    displayRate,
	}
}

// ToMonthlySummaryResponse converts a derived monthly summary into its DTO.
func ToMonthlySummaryResponse(s domain.MonthlySummary, year, month int) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Year:     year,
		Month:    month,
		Earned:   s.Earned,
		SpentUSD: s.SpentUSD,
		SpentDZD: s.SpentDZD,
	}
}

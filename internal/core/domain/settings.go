package domain

import "github.com/shopspring/decimal"

// Settings holds the single mutable application setting: the informational
// USD to DZD display rate. It is only used for display conversion and net
// worth; transfer math always uses the per-transaction rate.
type Settings struct {
	DisplayRate decimal.Decimal `json:"displayRate"`
}

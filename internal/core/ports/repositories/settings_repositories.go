package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// SettingsRepository defines operations for the application settings store.
type SettingsRepository interface {
	// GetDisplayRate retrieves the informational USD to DZD display rate.
	GetDisplayRate(ctx context.Context) (decimal.Decimal, error)

	// UpdateDisplayRate persists a new display rate.
	UpdateDisplayRate(ctx context.Context, rate decimal.Decimal) error
}

package services

import (
	"context"

	"github.com/ftracker/ft_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettingsSvcFacade defines operations on the mutable application settings.
type SettingsSvcFacade interface {
	// GetSettings retrieves the current settings.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// UpdateDisplayRate validates and persists a new display rate.
	UpdateDisplayRate(ctx context.Context, rate decimal.Decimal) (*domain.Settings, error)
}

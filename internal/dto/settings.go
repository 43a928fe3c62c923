package dto

import (
	"github.com/ftracker/ft_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateDisplayRateRequest defines the data needed to change the display rate.
type UpdateDisplayRateRequest struct {
	DisplayRate decimal.Decimal `json:"displayRate" binding:"required,dgt0"`
}

// SettingsResponse defines the data returned for the application settings.
type SettingsResponse struct {
	DisplayRate decimal.Decimal `json:"displayRate"`
}

// ToSettingsResponse converts domain settings to the response DTO.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{DisplayRate: s.DisplayRate}
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/ftracker/ft_backend/internal/apperrors"
	"github.com/ftracker/ft_backend/internal/core/domain"
	portsrepo "github.com/ftracker/ft_backend/internal/core/ports/repositories"
	portssvc "github.com/ftracker/ft_backend/internal/core/ports/services"
)

// settingsService implements the SettingsSvcFacade interface.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings retrieves the current settings.
func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	rate, err := s.settingsRepo.GetDisplayRate(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load display rate")
		return nil, fmt.Errorf("failed to load display rate: %w", err)
	}
	return &domain.Settings{DisplayRate: rate}, nil
}

// UpdateDisplayRate validates and persists a new display rate.
func (s *settingsService) UpdateDisplayRate(ctx context.Context, rate decimal.Decimal) (*domain.Settings, error) {
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: display rate must be positive", apperrors.ErrValidation)
	}

	if err := s.settingsRepo.UpdateDisplayRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to update display rate", slog.String("rate", rate.String()))
		return nil, fmt.Errorf("failed to update display rate: %w", err)
	}

	s.LogInfo(ctx, "Display rate updated", slog.String("rate", rate.String()))
	return &domain.Settings{DisplayRate: rate}, nil
}

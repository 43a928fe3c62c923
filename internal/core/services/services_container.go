package services

import (
	portsrepo "github.com/ftracker/ft_backend/internal/core/ports/repositories"
	portssvc "github.com/ftracker/ft_backend/internal/core/ports/services"
	"github.com/ftracker/ft_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.LedgerRepo, OverdraftPolicy(cfg.OverdraftPolicy))
	container.Reporting = NewReportingService(repos.LedgerRepo, repos.SettingsRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)

	return container
}

// Compile time interface implementation checks
var (
	_ portssvc.LedgerSvcFacade    = (*ledgerService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
	_ portssvc.SettingsSvcFacade  = (*settingsService)(nil)
)

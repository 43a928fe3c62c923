package services

// ServiceContainer groups all service facades for injection into the
// handler layer.
type ServiceContainer struct {
	Ledger    LedgerSvcFacade
	Reporting ReportingSvcFacade
	Settings  SettingsSvcFacade
}

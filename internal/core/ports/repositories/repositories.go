package repositories

// RepositoryProvider groups all repository facades for injection into the
// service layer.
type RepositoryProvider struct {
	LedgerRepo   LedgerRepositoryFacade
	SettingsRepo SettingsRepository
}

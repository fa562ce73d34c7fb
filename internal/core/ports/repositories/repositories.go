package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepository
	OrganizationRepo OrganizationRepository
	AccountRepo      BankAccountRepository
	TransactionRepo  TransactionRepository
	RecurringRepo    RecurringBillRepository
	LeadRepo         LeadRepository
	ReportingRepo    ReportingRepository
	ServiceTokenRepo ServiceTokenRepository
}

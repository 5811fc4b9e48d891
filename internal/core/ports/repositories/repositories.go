package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo             UserRepositoryFacade
	BusinessRepo         BusinessRepositoryFacade
	AccountantClientRepo AccountantClientRepositoryFacade
	DocumentRepo         DocumentRepositoryFacade
	TransactionRepo      TransactionRepositoryFacade
	InvoiceRepo          InvoiceRepositoryFacade
	VatReturnRepo        VatReturnRepositoryFacade
	ActivityLogRepo      ActivityLogRepositoryFacade
	ClientInvitationRepo ClientInvitationRepositoryFacade
}

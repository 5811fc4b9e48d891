package memory

import (
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires a fresh, empty in-memory store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:             newUserRepository(),
		BusinessRepo:         newBusinessRepository(),
		AccountantClientRepo: newAccountantClientRepository(),
		DocumentRepo:         newDocumentRepository(),
		TransactionRepo:      newTransactionRepository(),
		InvoiceRepo:          newInvoiceRepository(),
		VatReturnRepo:        newVatReturnRepository(),
		ActivityLogRepo:      newActivityLogRepository(),
		ClientInvitationRepo: newClientInvitationRepository(),
	}
}

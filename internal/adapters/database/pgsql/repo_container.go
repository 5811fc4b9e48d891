package pgsql

import (
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:             newPgxUserRepository(dbPool),
		BusinessRepo:         newPgxBusinessRepository(dbPool),
		AccountantClientRepo: newPgxAccountantClientRepository(dbPool),
		DocumentRepo:         newPgxDocumentRepository(dbPool),
		TransactionRepo:      newPgxTransactionRepository(dbPool),
		InvoiceRepo:          newPgxInvoiceRepository(dbPool),
		VatReturnRepo:        newPgxVatReturnRepository(dbPool),
		ActivityLogRepo:      newPgxActivityLogRepository(dbPool),
		ClientInvitationRepo: newPgxClientInvitationRepository(dbPool),
	}
}

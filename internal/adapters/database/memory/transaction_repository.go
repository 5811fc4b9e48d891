package memory

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
)

type transactionRepository struct {
	transactions *table[domain.Transaction]
}

func newTransactionRepository() *transactionRepository {
	return &transactionRepository{
		transactions: newTable("transaction", func(t domain.Transaction) string { return t.ID }, cloneTransaction),
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func (r *transactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	return r.transactions.get(transactionID)
}

func (r *transactionRepository) ListTransactionsByBusiness(_ context.Context, businessID string) ([]domain.Transaction, error) {
	return r.transactions.filter(func(t domain.Transaction) bool { return t.BusinessID == businessID }), nil
}

func (r *transactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	return r.transactions.insert(txn, nil)
}

func (r *transactionRepository) UpdateTransaction(_ context.Context, transactionID string, patch domain.TransactionPatch, now time.Time) (*domain.Transaction, error) {
	return r.transactions.update(transactionID, func(t *domain.Transaction) error {
		if err := t.CheckVersion("transaction", transactionID, patch.ExpectedVersion); err != nil {
			return err
		}
		t.Apply(patch)
		t.Touch(now)
		return nil
	})
}

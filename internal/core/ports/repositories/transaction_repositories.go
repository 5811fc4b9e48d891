package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactionsByBusiness(ctx context.Context, businessID string) ([]domain.Transaction, error)
}

type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch, now time.Time) (*domain.Transaction, error)
}

type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

package services

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/dto"
)

type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, transactionID, requestingUserID string) (*domain.Transaction, error)
	ListTransactionsByBusiness(ctx context.Context, businessID, requestingUserID string) ([]domain.Transaction, error)
}

type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, businessID string, req dto.CreateTransactionRequest, requestingUserID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error)
}

type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

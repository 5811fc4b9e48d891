package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/SscSPs/taxbooks_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, opts ...ServiceOption) portssvc.TransactionSvcFacade {
	s := &transactionService{transactionRepo: transactionRepo}
	s.apply(opts)
	return s
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, businessID string, req dto.CreateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	if req.Amount == nil || req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must be a non-negative number")
	}
	if domain.IsNegativeMoney(req.VATAmount) {
		return nil, apperrors.NewValidationFailedError("vatAmount must be non-negative")
	}
	if req.TransactionDate == nil {
		return nil, apperrors.NewValidationFailedError("transactionDate is required")
	}
	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}

	amount := domain.RoundMoney(*req.Amount)
	vat := domain.RoundMoneyPtr(req.VATAmount)
	net := domain.RoundMoneyPtr(req.NetAmount)
	if net == nil {
		net = accounting.NetOfVAT(amount, vat)
	}

	txn := domain.Transaction{
		ID:              uuid.NewString(),
		BusinessID:      businessID,
		DocumentID:      req.DocumentID,
		Type:            req.Type,
		Amount:          amount,
		VATAmount:       vat,
		NetAmount:       net,
		Description:     req.Description,
		Category:        req.Category,
		Vendor:          req.Vendor,
		Reference:       req.Reference,
		TransactionDate: req.TransactionDate.Time,
		CreatedBy:       requestingUserID,
		AuditFields:     domain.NewAuditFields(s.Now()),
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.ID),
		slog.String("business_id", businessID),
		slog.String("type", string(txn.Type)))
	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  businessID,
		Action:      domain.ActionTransactionCreated,
		Description: fmt.Sprintf("Recorded %s of £%s", txn.Type, utils.FormatMoney(txn.Amount)),
		Metadata:    map[string]any{"transactionId": txn.ID},
	})
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	if err := s.AuthorizeBusiness(ctx, requestingUserID, txn.BusinessID); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactionsByBusiness(ctx context.Context, businessID, requestingUserID string) ([]domain.Transaction, error) {
	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactionsByBusiness(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("business_id", businessID))
		return nil, err
	}
	return txns, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	if domain.IsNegativeMoney(req.Amount) || domain.IsNegativeMoney(req.VATAmount) {
		return nil, apperrors.NewValidationFailedError("amounts must be non-negative")
	}
	existing, err := s.GetTransactionByID(ctx, transactionID, requestingUserID)
	if err != nil {
		return nil, err
	}

	txn, err := s.transactionRepo.UpdateTransaction(ctx, transactionID, req.ToPatch(), s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  existing.BusinessID,
		Action:      domain.ActionTransactionUpdated,
		Description: fmt.Sprintf("Updated transaction %s", txn.Description),
		Metadata:    map[string]any{"transactionId": txn.ID},
	})
	return txn, nil
}

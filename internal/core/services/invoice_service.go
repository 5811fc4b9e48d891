package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/utils/accounting"
	"github.com/google/uuid"
)

const invoiceNumberAttempts = 5

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, opts ...ServiceOption) portssvc.InvoiceSvcFacade {
	s := &invoiceService{invoiceRepo: invoiceRepo}
	s.apply(opts)
	return s
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// newInvoiceNumber returns INV-<year>-<6 uppercase hex chars>.
func newInvoiceNumber(year int) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("INV-%d-%s", year, strings.ToUpper(suffix))
}

func (s *invoiceService) CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest, requestingUserID string) (*domain.Invoice, error) {
	if req.Amount == nil || req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must be a non-negative number")
	}
	if req.IssueDate == nil || req.DueDate == nil {
		return nil, apperrors.NewValidationFailedError("issueDate and dueDate are required")
	}
	if req.DueDate.Before(req.IssueDate.Time) {
		return nil, apperrors.NewValidationFailedError("dueDate must not be before issueDate")
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
	status := domain.InvoiceStatusDraft
	if req.Status != nil {
		status = *req.Status
	}
	items := req.Items
	if len(items) == 0 {
		items = json.RawMessage("[]")
	}

	now := s.Now()
	invoice := domain.Invoice{
		ID:            uuid.NewString(),
		BusinessID:    businessID,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientAddress: req.ClientAddress,
		Amount:        amount,
		VATAmount:     vat,
		NetAmount:     net,
		VATRate:       domain.RoundMoneyPtr(req.VATRate),
		Status:        status,
		IssueDate:     req.IssueDate.Time,
		DueDate:       req.DueDate.Time,
		Items:         items,
		CreatedBy:     requestingUserID,
		AuditFields:   domain.NewAuditFields(now),
	}

	var err error
	for attempt := 0; attempt < invoiceNumberAttempts; attempt++ {
		invoice.InvoiceNumber = newInvoiceNumber(now.Year())
		err = s.invoiceRepo.SaveInvoice(ctx, invoice)
		if !errors.Is(err, apperrors.ErrDuplicate) {
			break
		}
		s.LogDebug(ctx, "Invoice number collision, retrying", slog.String("invoice_number", invoice.InvoiceNumber))
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.ID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  businessID,
		Action:      domain.ActionInvoiceCreated,
		Description: fmt.Sprintf("Created invoice %s for %s", invoice.InvoiceNumber, invoice.ClientName),
		Metadata:    map[string]any{"invoiceId": invoice.ID},
	})
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID, requestingUserID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	if err := s.AuthorizeBusiness(ctx, requestingUserID, invoice.BusinessID); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoicesByBusiness(ctx context.Context, businessID, requestingUserID string) ([]domain.Invoice, error) {
	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListInvoicesByBusiness(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("business_id", businessID))
		return nil, err
	}
	return invoices, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, requestingUserID string) (*domain.Invoice, error) {
	if domain.IsNegativeMoney(req.Amount) || domain.IsNegativeMoney(req.VATAmount) {
		return nil, apperrors.NewValidationFailedError("amounts must be non-negative")
	}
	existing, err := s.GetInvoiceByID(ctx, invoiceID, requestingUserID)
	if err != nil {
		return nil, err
	}
	issue, due := existing.IssueDate, existing.DueDate
	if req.IssueDate != nil {
		issue = req.IssueDate.Time
	}
	if req.DueDate != nil {
		due = req.DueDate.Time
	}
	if due.Before(issue) {
		return nil, apperrors.NewValidationFailedError("dueDate must not be before issueDate")
	}

	invoice, err := s.invoiceRepo.UpdateInvoice(ctx, invoiceID, req.ToPatch(), s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  existing.BusinessID,
		Action:      domain.ActionInvoiceUpdated,
		Description: fmt.Sprintf("Updated invoice %s", invoice.InvoiceNumber),
		Metadata:    map[string]any{"invoiceId": invoice.ID, "status": string(invoice.Status)},
	})
	return invoice, nil
}

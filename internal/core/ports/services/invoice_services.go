package services

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/dto"
)

type InvoiceReaderSvc interface {
	GetInvoiceByID(ctx context.Context, invoiceID, requestingUserID string) (*domain.Invoice, error)
	ListInvoicesByBusiness(ctx context.Context, businessID, requestingUserID string) ([]domain.Invoice, error)
}

type InvoiceWriterSvc interface {
	// CreateInvoice assigns a generated INV-<year>-<suffix> number.
	CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest, requestingUserID string) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, requestingUserID string) (*domain.Invoice, error)
}

type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}

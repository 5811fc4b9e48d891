package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoicesByBusiness(ctx context.Context, businessID string) ([]domain.Invoice, error)
}

type InvoiceWriter interface {
	// SaveInvoice persists a new invoice. A duplicate invoice number within a business yields apperrors.ErrDuplicate.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoice(ctx context.Context, invoiceID string, patch domain.InvoicePatch, now time.Time) (*domain.Invoice, error)
}

type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

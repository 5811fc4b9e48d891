package memory

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
)

type invoiceRepository struct {
	invoices *table[domain.Invoice]
}

func newInvoiceRepository() *invoiceRepository {
	return &invoiceRepository{
		invoices: newTable("invoice", func(i domain.Invoice) string { return i.ID }, cloneInvoice),
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*invoiceRepository)(nil)

func (r *invoiceRepository) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.invoices.get(invoiceID)
}

func (r *invoiceRepository) ListInvoicesByBusiness(_ context.Context, businessID string) ([]domain.Invoice, error) {
	return r.invoices.filter(func(i domain.Invoice) bool { return i.BusinessID == businessID }), nil
}

func (r *invoiceRepository) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	return r.invoices.insert(invoice, func(existing domain.Invoice) bool {
		return existing.BusinessID == invoice.BusinessID && existing.InvoiceNumber == invoice.InvoiceNumber
	})
}

func (r *invoiceRepository) UpdateInvoice(_ context.Context, invoiceID string, patch domain.InvoicePatch, now time.Time) (*domain.Invoice, error) {
	return r.invoices.update(invoiceID, func(i *domain.Invoice) error {
		if err := i.CheckVersion("invoice", invoiceID, patch.ExpectedVersion); err != nil {
			return err
		}
		i.Apply(patch)
		i.Touch(now)
		return nil
	})
}

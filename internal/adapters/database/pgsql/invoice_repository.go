package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `id, business_id, invoice_number, client_name, client_email, client_address,
	amount, vat_amount, net_amount, vat_rate, status, issue_date, due_date, items, created_by,
	created_at, updated_at, version`

const fullInvoiceSelectQuery = `SELECT ` + invoiceColumns + ` FROM invoices `

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var (
		i     domain.Invoice
		items []byte
	)
	err := row.Scan(
		&i.ID, &i.BusinessID, &i.InvoiceNumber, &i.ClientName, &i.ClientEmail, &i.ClientAddress,
		&i.Amount, &i.VATAmount, &i.NetAmount, &i.VATRate, &i.Status, &i.IssueDate, &i.DueDate, &items, &i.CreatedBy,
		&i.CreatedAt, &i.UpdatedAt, &i.Version,
	)
	i.Items = items
	return i, err
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, i domain.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	items := []byte(i.Items)
	if len(items) == 0 {
		items = []byte("[]")
	}
	_, err := r.Pool.Exec(ctx, query,
		i.ID, i.BusinessID, i.InvoiceNumber, i.ClientName, i.ClientEmail, i.ClientAddress,
		i.Amount, i.VATAmount, i.NetAmount, i.VATRate, i.Status, i.IssueDate, i.DueDate, items, i.CreatedBy,
		i.CreatedAt, i.UpdatedAt, i.Version,
	)
	if err != nil {
		return mapWriteError("invoice", i.ID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return queryOne(ctx, r.Pool, "invoice", invoiceID, scanInvoice, fullInvoiceSelectQuery+`WHERE id = $1`, invoiceID)
}

func (r *PgxInvoiceRepository) ListInvoicesByBusiness(ctx context.Context, businessID string) ([]domain.Invoice, error) {
	return queryList(ctx, r.Pool, "invoice", scanInvoice,
		fullInvoiceSelectQuery+`WHERE business_id = $1 ORDER BY created_at, seq`, businessID)
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoiceID string, patch domain.InvoicePatch, now time.Time) (*domain.Invoice, error) {
	q := psql.Update("invoices")
	q = setIf(q, "client_name", patch.ClientName)
	q = setIf(q, "client_email", patch.ClientEmail)
	q = setIf(q, "client_address", patch.ClientAddress)
	q = setIf(q, "amount", domain.RoundMoneyPtr(patch.Amount))
	q = setIf(q, "vat_amount", domain.RoundMoneyPtr(patch.VATAmount))
	q = setIf(q, "net_amount", domain.RoundMoneyPtr(patch.NetAmount))
	q = setIf(q, "vat_rate", domain.RoundMoneyPtr(patch.VATRate))
	q = setIf(q, "status", patch.Status)
	q = setIf(q, "issue_date", patch.IssueDate)
	q = setIf(q, "due_date", patch.DueDate)
	if patch.Items != nil && len(*patch.Items) > 0 {
		q = q.Set("items", []byte(*patch.Items))
	}

	return applyPatch(ctx, &r.BaseRepository, versionedUpdate{
		entity: "invoice", table: "invoices", id: invoiceID, columns: invoiceColumns,
		expected: patch.ExpectedVersion, now: now,
	}, q, scanInvoice)
}

package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVatReturnRepository struct {
	BaseRepository
}

func newPgxVatReturnRepository(pool *pgxpool.Pool) portsrepo.VatReturnRepositoryFacade {
	return &PgxVatReturnRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VatReturnRepositoryFacade = (*PgxVatReturnRepository)(nil)

const vatReturnColumns = `id, business_id, period_start, period_end, vat_due, vat_reclaimed, net_vat_due,
	total_sales, total_purchases, status, due_date, submitted_at, approved_by, approved_at, created_by,
	created_at, updated_at, version`

const fullVatReturnSelectQuery = `SELECT ` + vatReturnColumns + ` FROM vat_returns `

func scanVatReturn(row pgx.Row) (domain.VatReturn, error) {
	var v domain.VatReturn
	err := row.Scan(
		&v.ID, &v.BusinessID, &v.PeriodStart, &v.PeriodEnd, &v.VATDue, &v.VATReclaimed, &v.NetVATDue,
		&v.TotalSales, &v.TotalPurchases, &v.Status, &v.DueDate, &v.SubmittedAt, &v.ApprovedBy, &v.ApprovedAt, &v.CreatedBy,
		&v.CreatedAt, &v.UpdatedAt, &v.Version,
	)
	return v, err
}

func (r *PgxVatReturnRepository) SaveVatReturn(ctx context.Context, v domain.VatReturn) error {
	query := `
		INSERT INTO vat_returns (` + vatReturnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		v.ID, v.BusinessID, v.PeriodStart, v.PeriodEnd, v.VATDue, v.VATReclaimed, v.NetVATDue,
		v.TotalSales, v.TotalPurchases, v.Status, v.DueDate, v.SubmittedAt, v.ApprovedBy, v.ApprovedAt, v.CreatedBy,
		v.CreatedAt, v.UpdatedAt, v.Version,
	)
	if err != nil {
		return mapWriteError("vat return", v.ID, err)
	}
	return nil
}

func (r *PgxVatReturnRepository) FindVatReturnByID(ctx context.Context, vatReturnID string) (*domain.VatReturn, error) {
	return queryOne(ctx, r.Pool, "vat return", vatReturnID, scanVatReturn,
		fullVatReturnSelectQuery+`WHERE id = $1`, vatReturnID)
}

func (r *PgxVatReturnRepository) ListVatReturnsByBusiness(ctx context.Context, businessID string) ([]domain.VatReturn, error) {
	return queryList(ctx, r.Pool, "vat return", scanVatReturn,
		fullVatReturnSelectQuery+`WHERE business_id = $1 ORDER BY created_at, seq`, businessID)
}

func (r *PgxVatReturnRepository) UpdateVatReturn(ctx context.Context, vatReturnID string, patch domain.VatReturnPatch, now time.Time) (*domain.VatReturn, error) {
	q := psql.Update("vat_returns")
	q = setIf(q, "period_start", patch.PeriodStart)
	q = setIf(q, "period_end", patch.PeriodEnd)
	q = setIf(q, "vat_due", domain.RoundMoneyPtr(patch.VATDue))
	q = setIf(q, "vat_reclaimed", domain.RoundMoneyPtr(patch.VATReclaimed))
	q = setIf(q, "net_vat_due", domain.RoundMoneyPtr(patch.NetVATDue))
	q = setIf(q, "total_sales", domain.RoundMoneyPtr(patch.TotalSales))
	q = setIf(q, "total_purchases", domain.RoundMoneyPtr(patch.TotalPurchases))
	q = setIf(q, "status", patch.Status)
	q = setIf(q, "due_date", patch.DueDate)
	q = setIf(q, "submitted_at", patch.SubmittedAt)
	q = setIf(q, "approved_by", patch.ApprovedBy)
	q = setIf(q, "approved_at", patch.ApprovedAt)

	return applyPatch(ctx, &r.BaseRepository, versionedUpdate{
		entity: "vat return", table: "vat_returns", id: vatReturnID, columns: vatReturnColumns,
		expected: patch.ExpectedVersion, now: now,
	}, q, scanVatReturn)
}

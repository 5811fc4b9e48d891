package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBusinessRepository struct {
	BaseRepository
}

func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryFacade {
	return &PgxBusinessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

const businessColumns = `id, owner_id, company_name, company_number, utr, vat_number, vat_scheme,
	business_type, industry, address, city, postcode, is_active, is_primary,
	created_at, updated_at, version`

const fullBusinessSelectQuery = `SELECT ` + businessColumns + ` FROM businesses `

func scanBusiness(row pgx.Row) (domain.Business, error) {
	var b domain.Business
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.CompanyName, &b.CompanyNumber, &b.UTR, &b.VATNumber, &b.VATScheme,
		&b.BusinessType, &b.Industry, &b.Address, &b.City, &b.Postcode, &b.IsActive, &b.IsPrimary,
		&b.CreatedAt, &b.UpdatedAt, &b.Version,
	)
	return b, err
}

func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, b domain.Business) error {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		b.ID, b.OwnerID, b.CompanyName, b.CompanyNumber, b.UTR, b.VATNumber, b.VATScheme,
		b.BusinessType, b.Industry, b.Address, b.City, b.Postcode, b.IsActive, b.IsPrimary,
		b.CreatedAt, b.UpdatedAt, b.Version,
	)
	if err != nil {
		return mapWriteError("business", b.ID, err)
	}
	return nil
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	return queryOne(ctx, r.Pool, "business", businessID, scanBusiness, fullBusinessSelectQuery+`WHERE id = $1`, businessID)
}

func (r *PgxBusinessRepository) ListBusinessesByOwner(ctx context.Context, ownerID string) ([]domain.Business, error) {
	return queryList(ctx, r.Pool, "business", scanBusiness,
		fullBusinessSelectQuery+`WHERE owner_id = $1 ORDER BY created_at, seq`, ownerID)
}

func (r *PgxBusinessRepository) FindBusinessesByIDs(ctx context.Context, businessIDs []string) (map[string]domain.Business, error) {
	out := make(map[string]domain.Business, len(businessIDs))
	if len(businessIDs) == 0 {
		return out, nil
	}
	businesses, err := queryList(ctx, r.Pool, "business", scanBusiness, fullBusinessSelectQuery+`WHERE id = ANY($1)`, businessIDs)
	if err != nil {
		return nil, err
	}
	for _, b := range businesses {
		out[b.ID] = b
	}
	return out, nil
}

func (r *PgxBusinessRepository) UpdateBusiness(ctx context.Context, businessID string, patch domain.BusinessPatch, now time.Time) (*domain.Business, error) {
	q := psql.Update("businesses")
	q = setIf(q, "company_name", patch.CompanyName)
	q = setIf(q, "company_number", patch.CompanyNumber)
	q = setIf(q, "utr", patch.UTR)
	q = setIf(q, "vat_number", patch.VATNumber)
	q = setIf(q, "vat_scheme", patch.VATScheme)
	q = setIf(q, "business_type", patch.BusinessType)
	q = setIf(q, "industry", patch.Industry)
	q = setIf(q, "address", patch.Address)
	q = setIf(q, "city", patch.City)
	q = setIf(q, "postcode", patch.Postcode)
	q = setIf(q, "is_active", patch.IsActive)
	q = setIf(q, "is_primary", patch.IsPrimary)

	return applyPatch(ctx, &r.BaseRepository, versionedUpdate{
		entity: "business", table: "businesses", id: businessID, columns: businessColumns,
		expected: patch.ExpectedVersion, now: now,
	}, q, scanBusiness)
}

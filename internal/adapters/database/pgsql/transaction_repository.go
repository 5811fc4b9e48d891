package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `id, business_id, document_id, type, amount, vat_amount, net_amount,
	description, category, vendor, reference, transaction_date, created_by,
	created_at, updated_at, version`

const fullTransactionSelectQuery = `SELECT ` + transactionColumns + ` FROM transactions `

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.BusinessID, &t.DocumentID, &t.Type, &t.Amount, &t.VATAmount, &t.NetAmount,
		&t.Description, &t.Category, &t.Vendor, &t.Reference, &t.TransactionDate, &t.CreatedBy,
		&t.CreatedAt, &t.UpdatedAt, &t.Version,
	)
	return t, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, t domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		t.ID, t.BusinessID, t.DocumentID, t.Type, t.Amount, t.VATAmount, t.NetAmount,
		t.Description, t.Category, t.Vendor, t.Reference, t.TransactionDate, t.CreatedBy,
		t.CreatedAt, t.UpdatedAt, t.Version,
	)
	if err != nil {
		return mapWriteError("transaction", t.ID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return queryOne(ctx, r.Pool, "transaction", transactionID, scanTransaction,
		fullTransactionSelectQuery+`WHERE id = $1`, transactionID)
}

func (r *PgxTransactionRepository) ListTransactionsByBusiness(ctx context.Context, businessID string) ([]domain.Transaction, error) {
	return queryList(ctx, r.Pool, "transaction", scanTransaction,
		fullTransactionSelectQuery+`WHERE business_id = $1 ORDER BY created_at, seq`, businessID)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch, now time.Time) (*domain.Transaction, error) {
	q := psql.Update("transactions")
	q = setIf(q, "document_id", patch.DocumentID)
	q = setIf(q, "type", patch.Type)
	q = setIf(q, "amount", domain.RoundMoneyPtr(patch.Amount))
	q = setIf(q, "vat_amount", domain.RoundMoneyPtr(patch.VATAmount))
	q = setIf(q, "net_amount", domain.RoundMoneyPtr(patch.NetAmount))
	q = setIf(q, "description", patch.Description)
	q = setIf(q, "category", patch.Category)
	q = setIf(q, "vendor", patch.Vendor)
	q = setIf(q, "reference", patch.Reference)
	q = setIf(q, "transaction_date", patch.TransactionDate)

	return applyPatch(ctx, &r.BaseRepository, versionedUpdate{
		entity: "transaction", table: "transactions", id: transactionID, columns: transactionColumns,
		expected: patch.ExpectedVersion, now: now,
	}, q, scanTransaction)
}

package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentColumns = `id, business_id, uploaded_by, file_name, file_type, file_size, document_type,
	status, ocr_data, extracted_amount, extracted_date, extracted_vendor, category,
	vat_amount, net_amount, is_approved, created_at, updated_at, version`

const fullDocumentSelectQuery = `SELECT ` + documentColumns + ` FROM documents `

func scanDocument(row pgx.Row) (domain.Document, error) {
	var (
		d   domain.Document
		ocr []byte
	)
	err := row.Scan(
		&d.ID, &d.BusinessID, &d.UploadedBy, &d.FileName, &d.FileType, &d.FileSize, &d.DocumentType,
		&d.Status, &ocr, &d.ExtractedAmount, &d.ExtractedDate, &d.ExtractedVendor, &d.Category,
		&d.VATAmount, &d.NetAmount, &d.IsApproved, &d.CreatedAt, &d.UpdatedAt, &d.Version,
	)
	if len(ocr) > 0 {
		d.OCRData = ocr
	}
	return d, err
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, d domain.Document) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		d.ID, d.BusinessID, d.UploadedBy, d.FileName, d.FileType, d.FileSize, d.DocumentType,
		d.Status, nullableJSON(d.OCRData), d.ExtractedAmount, d.ExtractedDate, d.ExtractedVendor, d.Category,
		d.VATAmount, d.NetAmount, d.IsApproved, d.CreatedAt, d.UpdatedAt, d.Version,
	)
	if err != nil {
		return mapWriteError("document", d.ID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	return queryOne(ctx, r.Pool, "document", documentID, scanDocument, fullDocumentSelectQuery+`WHERE id = $1`, documentID)
}

func (r *PgxDocumentRepository) ListDocumentsByBusiness(ctx context.Context, businessID string) ([]domain.Document, error) {
	return queryList(ctx, r.Pool, "document", scanDocument,
		fullDocumentSelectQuery+`WHERE business_id = $1 ORDER BY created_at, seq`, businessID)
}

func (r *PgxDocumentRepository) ListDocumentsByStatus(ctx context.Context, status domain.DocumentStatus) ([]domain.Document, error) {
	return queryList(ctx, r.Pool, "document", scanDocument,
		fullDocumentSelectQuery+`WHERE status = $1 ORDER BY created_at, seq`, status)
}

func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, documentID string, patch domain.DocumentPatch, now time.Time) (*domain.Document, error) {
	q := psql.Update("documents")
	q = setIf(q, "file_name", patch.FileName)
	q = setIf(q, "document_type", patch.DocumentType)
	q = setIf(q, "status", patch.Status)
	if patch.OCRData != nil {
		q = q.Set("ocr_data", nullableJSON(*patch.OCRData))
	}
	q = setIf(q, "extracted_amount", domain.RoundMoneyPtr(patch.ExtractedAmount))
	q = setIf(q, "extracted_date", patch.ExtractedDate)
	q = setIf(q, "extracted_vendor", patch.ExtractedVendor)
	q = setIf(q, "category", patch.Category)
	q = setIf(q, "vat_amount", domain.RoundMoneyPtr(patch.VATAmount))
	q = setIf(q, "net_amount", domain.RoundMoneyPtr(patch.NetAmount))
	q = setIf(q, "is_approved", patch.IsApproved)

	return applyPatch(ctx, &r.BaseRepository, versionedUpdate{
		entity: "document", table: "documents", id: documentID, columns: documentColumns,
		expected: patch.ExpectedVersion, now: now,
	}, q, scanDocument)
}

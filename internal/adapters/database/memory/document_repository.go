package memory

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
)

type documentRepository struct {
	documents *table[domain.Document]
}

func newDocumentRepository() *documentRepository {
	return &documentRepository{
		documents: newTable("document", func(d domain.Document) string { return d.ID }, cloneDocument),
	}
}

var _ portsrepo.DocumentRepositoryFacade = (*documentRepository)(nil)

func (r *documentRepository) FindDocumentByID(_ context.Context, documentID string) (*domain.Document, error) {
	return r.documents.get(documentID)
}

func (r *documentRepository) ListDocumentsByBusiness(_ context.Context, businessID string) ([]domain.Document, error) {
	return r.documents.filter(func(d domain.Document) bool { return d.BusinessID == businessID }), nil
}

func (r *documentRepository) ListDocumentsByStatus(_ context.Context, status domain.DocumentStatus) ([]domain.Document, error) {
	return r.documents.filter(func(d domain.Document) bool { return d.Status == status }), nil
}

func (r *documentRepository) SaveDocument(_ context.Context, document domain.Document) error {
	return r.documents.insert(document, nil)
}

func (r *documentRepository) UpdateDocument(_ context.Context, documentID string, patch domain.DocumentPatch, now time.Time) (*domain.Document, error) {
	return r.documents.update(documentID, func(d *domain.Document) error {
		if err := d.CheckVersion("document", documentID, patch.ExpectedVersion); err != nil {
			return err
		}
		d.Apply(patch)
		d.Touch(now)
		return nil
	})
}

package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

type DocumentReader interface {
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocumentsByBusiness(ctx context.Context, businessID string) ([]domain.Document, error)
	ListDocumentsByStatus(ctx context.Context, status domain.DocumentStatus) ([]domain.Document, error)
}

type DocumentWriter interface {
	SaveDocument(ctx context.Context, document domain.Document) error
	UpdateDocument(ctx context.Context, documentID string, patch domain.DocumentPatch, now time.Time) (*domain.Document, error)
}

type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

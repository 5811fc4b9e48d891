package services

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/dto"
)

type DocumentReaderSvc interface {
	GetDocumentByID(ctx context.Context, documentID, requestingUserID string) (*domain.Document, error)
	ListDocumentsByBusiness(ctx context.Context, businessID, requestingUserID string) ([]domain.Document, error)
	// ListDocumentsByStatus is limited to businesses the caller can access.
	ListDocumentsByStatus(ctx context.Context, status domain.DocumentStatus, requestingUserID string) ([]domain.Document, error)
}

type DocumentWriterSvc interface {
	CreateDocument(ctx context.Context, businessID string, req dto.CreateDocumentRequest, requestingUserID string) (*domain.Document, error)
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, requestingUserID string) (*domain.Document, error)
}

type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/google/uuid"
)

type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
}

func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, opts ...ServiceOption) portssvc.DocumentSvcFacade {
	s := &documentService{documentRepo: documentRepo}
	s.apply(opts)
	return s
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) CreateDocument(ctx context.Context, businessID string, req dto.CreateDocumentRequest, requestingUserID string) (*domain.Document, error) {
	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}

	status := domain.DocumentStatusPending
	if req.Status != nil {
		status = *req.Status
	}
	doc := domain.Document{
		ID:              uuid.NewString(),
		BusinessID:      businessID,
		UploadedBy:      requestingUserID,
		FileName:        req.FileName,
		FileType:        req.FileType,
		FileSize:        req.FileSize,
		DocumentType:    req.DocumentType,
		Status:          status,
		OCRData:         req.OCRData,
		ExtractedAmount: domain.RoundMoneyPtr(req.ExtractedAmount),
		ExtractedDate:   req.ExtractedDateTime(),
		ExtractedVendor: req.ExtractedVendor,
		Category:        req.Category,
		VATAmount:       domain.RoundMoneyPtr(req.VATAmount),
		NetAmount:       domain.RoundMoneyPtr(req.NetAmount),
		AuditFields:     domain.NewAuditFields(s.Now()),
	}
	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save document", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "Document uploaded", slog.String("document_id", doc.ID), slog.String("business_id", businessID))
	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  businessID,
		Action:      domain.ActionDocumentUploaded,
		Description: fmt.Sprintf("Uploaded %s", doc.FileName),
		Metadata:    map[string]any{"documentId": doc.ID},
	})
	return &doc, nil
}

func (s *documentService) GetDocumentByID(ctx context.Context, documentID, requestingUserID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get document", slog.String("document_id", documentID))
		}
		return nil, err
	}
	if err := s.AuthorizeBusiness(ctx, requestingUserID, doc.BusinessID); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListDocumentsByBusiness(ctx context.Context, businessID, requestingUserID string) ([]domain.Document, error) {
	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}
	docs, err := s.documentRepo.ListDocumentsByBusiness(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.String("business_id", businessID))
		return nil, err
	}
	return docs, nil
}

func (s *documentService) ListDocumentsByStatus(ctx context.Context, status domain.DocumentStatus, requestingUserID string) ([]domain.Document, error) {
	docs, err := s.documentRepo.ListDocumentsByStatus(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents by status", slog.String("status", string(status)))
		return nil, err
	}
	if s.BusinessAuthorizer == nil {
		return docs, nil
	}

	ids, err := s.BusinessAuthorizer.AccessibleBusinessIDs(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	allowed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}
	visible := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		if _, ok := allowed[d.BusinessID]; ok {
			visible = append(visible, d)
		}
	}
	return visible, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, requestingUserID string) (*domain.Document, error) {
	existing, err := s.GetDocumentByID(ctx, documentID, requestingUserID)
	if err != nil {
		return nil, err
	}

	doc, err := s.documentRepo.UpdateDocument(ctx, documentID, req.ToPatch(), s.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update document", slog.String("document_id", documentID))
		}
		return nil, err
	}

	s.RecordActivity(ctx, portssvc.ActivityEntry{
		UserID:      requestingUserID,
		BusinessID:  existing.BusinessID,
		Action:      domain.ActionDocumentUpdated,
		Description: fmt.Sprintf("Updated %s", doc.FileName),
		Metadata:    map[string]any{"documentId": doc.ID, "status": string(doc.Status)},
	})
	return doc, nil
}

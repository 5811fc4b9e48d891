package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateDocumentRequest registers an uploaded file's metadata.
type CreateDocumentRequest struct {
	FileName        string                 `json:"fileName" binding:"required"`
	FileType        string                 `json:"fileType" binding:"required"`
	FileSize        int64                  `json:"fileSize" binding:"gte=0"`
	DocumentType    *domain.DocumentType   `json:"documentType" binding:"omitempty,oneof=invoice receipt bank_statement contract"`
	Status          *domain.DocumentStatus `json:"status" binding:"omitempty,oneof=pending processing processed review_needed approved rejected"`
	OCRData         json.RawMessage        `json:"ocrData"`
	ExtractedAmount *decimal.Decimal       `json:"extractedAmount" binding:"omitempty,money"`
	ExtractedDate   *Date                  `json:"extractedDate"`
	ExtractedVendor *string                `json:"extractedVendor"`
	Category        *string                `json:"category"`
	VATAmount       *decimal.Decimal       `json:"vatAmount" binding:"omitempty,money"`
	NetAmount       *decimal.Decimal       `json:"netAmount" binding:"omitempty,money"`
}

type UpdateDocumentRequest struct {
	FileName        *string                `json:"fileName" binding:"omitempty,min=1"`
	DocumentType    *domain.DocumentType   `json:"documentType" binding:"omitempty,oneof=invoice receipt bank_statement contract"`
	Status          *domain.DocumentStatus `json:"status" binding:"omitempty,oneof=pending processing processed review_needed approved rejected"`
	OCRData         *json.RawMessage       `json:"ocrData"`
	ExtractedAmount *decimal.Decimal       `json:"extractedAmount" binding:"omitempty,money"`
	ExtractedDate   *Date                  `json:"extractedDate"`
	ExtractedVendor *string                `json:"extractedVendor"`
	Category        *string                `json:"category"`
	VATAmount       *decimal.Decimal       `json:"vatAmount" binding:"omitempty,money"`
	NetAmount       *decimal.Decimal       `json:"netAmount" binding:"omitempty,money"`
	IsApproved      *bool                  `json:"isApproved"`
	Version         *int                   `json:"version"`
}

func (r UpdateDocumentRequest) ToPatch() domain.DocumentPatch {
	return domain.DocumentPatch{
		FileName:        r.FileName,
		DocumentType:    r.DocumentType,
		Status:          r.Status,
		OCRData:         r.OCRData,
		ExtractedAmount: r.ExtractedAmount,
		ExtractedDate:   timePtr(r.ExtractedDate),
		ExtractedVendor: r.ExtractedVendor,
		Category:        r.Category,
		VATAmount:       r.VATAmount,
		NetAmount:       r.NetAmount,
		IsApproved:      r.IsApproved,
		ExpectedVersion: r.Version,
	}
}

// ExtractedDateTime returns the optional extracted date as a time.
func (r CreateDocumentRequest) ExtractedDateTime() *time.Time {
	return timePtr(r.ExtractedDate)
}

// ListDocumentsParams filters GET /api/documents.
type ListDocumentsParams struct {
	Status domain.DocumentStatus `form:"status" binding:"required,oneof=pending processing processed review_needed approved rejected"`
}

type DocumentResponse struct {
	ID              string                 `json:"id"`
	BusinessID      string                 `json:"businessId"`
	UploadedBy      string                 `json:"uploadedBy"`
	FileName        string                 `json:"fileName"`
	FileType        string                 `json:"fileType"`
	FileSize        int64                  `json:"fileSize"`
	DocumentType    *domain.DocumentType   `json:"documentType,omitempty"`
	Status          domain.DocumentStatus  `json:"status"`
	OCRData         json.RawMessage        `json:"ocrData,omitempty"`
	ExtractedAmount *string                `json:"extractedAmount,omitempty"`
	ExtractedDate   *time.Time             `json:"extractedDate,omitempty"`
	ExtractedVendor *string                `json:"extractedVendor,omitempty"`
	Category        *string                `json:"category,omitempty"`
	VATAmount       *string                `json:"vatAmount,omitempty"`
	NetAmount       *string                `json:"netAmount,omitempty"`
	IsApproved      bool                   `json:"isApproved"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
	Version         int                    `json:"version"`
}

func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:              d.ID,
		BusinessID:      d.BusinessID,
		UploadedBy:      d.UploadedBy,
		FileName:        d.FileName,
		FileType:        d.FileType,
		FileSize:        d.FileSize,
		DocumentType:    d.DocumentType,
		Status:          d.Status,
		OCRData:         d.OCRData,
		ExtractedAmount: utils.FormatMoneyPtr(d.ExtractedAmount),
		ExtractedDate:   d.ExtractedDate,
		ExtractedVendor: d.ExtractedVendor,
		Category:        d.Category,
		VATAmount:       utils.FormatMoneyPtr(d.VATAmount),
		NetAmount:       utils.FormatMoneyPtr(d.NetAmount),
		IsApproved:      d.IsApproved,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		Version:         d.Version,
	}
}

func ToDocumentResponses(docs []domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, len(docs))
	for i := range docs {
		out[i] = ToDocumentResponse(&docs[i])
	}
	return out
}

package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type DocumentType string

const (
	DocumentTypeInvoice       DocumentType = "invoice"
	DocumentTypeReceipt       DocumentType = "receipt"
	DocumentTypeBankStatement DocumentType = "bank_statement"
	DocumentTypeContract      DocumentType = "contract"
)

func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeInvoice, DocumentTypeReceipt, DocumentTypeBankStatement, DocumentTypeContract:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocumentStatusPending      DocumentStatus = "pending"
	DocumentStatusProcessing   DocumentStatus = "processing"
	DocumentStatusProcessed    DocumentStatus = "processed"
	DocumentStatusReviewNeeded DocumentStatus = "review_needed"
	DocumentStatusApproved     DocumentStatus = "approved"
	DocumentStatusRejected     DocumentStatus = "rejected"
)

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusProcessing, DocumentStatusProcessed,
		DocumentStatusReviewNeeded, DocumentStatusApproved, DocumentStatusRejected:
		return true
	}
	return false
}

// Document is an uploaded file's metadata plus whatever was extracted from it.
type Document struct {
	ID              string           `json:"id"`
	BusinessID      string           `json:"businessId"`
	UploadedBy      string           `json:"uploadedBy"`
	FileName        string           `json:"fileName"`
	FileType        string           `json:"fileType"`
	FileSize        int64            `json:"fileSize"`
	DocumentType    *DocumentType    `json:"documentType,omitempty"`
	Status          DocumentStatus   `json:"status"`
	OCRData         json.RawMessage  `json:"ocrData,omitempty"`
	ExtractedAmount *decimal.Decimal `json:"extractedAmount,omitempty"`
	ExtractedDate   *time.Time       `json:"extractedDate,omitempty"`
	ExtractedVendor *string          `json:"extractedVendor,omitempty"`
	Category        *string          `json:"category,omitempty"`
	VATAmount       *decimal.Decimal `json:"vatAmount,omitempty"`
	NetAmount       *decimal.Decimal `json:"netAmount,omitempty"`
	IsApproved      bool             `json:"isApproved"`
	AuditFields
}

type DocumentPatch struct {
	FileName        *string
	DocumentType    *DocumentType
	Status          *DocumentStatus
	OCRData         *json.RawMessage
	ExtractedAmount *decimal.Decimal
	ExtractedDate   *time.Time
	ExtractedVendor *string
	Category        *string
	VATAmount       *decimal.Decimal
	NetAmount       *decimal.Decimal
	IsApproved      *bool
	ExpectedVersion *int
}

func (d *Document) Apply(p DocumentPatch) {
	set(&d.FileName, p.FileName)
	setOpt(&d.DocumentType, p.DocumentType)
	set(&d.Status, p.Status)
	set(&d.OCRData, p.OCRData)
	setOpt(&d.ExtractedAmount, RoundMoneyPtr(p.ExtractedAmount))
	setOpt(&d.ExtractedDate, p.ExtractedDate)
	setOpt(&d.ExtractedVendor, p.ExtractedVendor)
	setOpt(&d.Category, p.Category)
	setOpt(&d.VATAmount, RoundMoneyPtr(p.VATAmount))
	setOpt(&d.NetAmount, RoundMoneyPtr(p.NetAmount))
	set(&d.IsApproved, p.IsApproved)
}

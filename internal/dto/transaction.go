package dto

import (
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	DocumentID      *string                `json:"documentId"`
	Type            domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount          *decimal.Decimal       `json:"amount" binding:"required,money"`
	VATAmount       *decimal.Decimal       `json:"vatAmount" binding:"omitempty,money"`
	NetAmount       *decimal.Decimal       `json:"netAmount" binding:"omitempty,money"`
	Description     string                 `json:"description" binding:"required"`
	Category        string                 `json:"category" binding:"required"`
	Vendor          *string                `json:"vendor"`
	Reference       *string                `json:"reference"`
	TransactionDate *Date                  `json:"transactionDate" binding:"required"`
}

type UpdateTransactionRequest struct {
	DocumentID      *string                 `json:"documentId"`
	Type            *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Amount          *decimal.Decimal        `json:"amount" binding:"omitempty,money"`
	VATAmount       *decimal.Decimal        `json:"vatAmount" binding:"omitempty,money"`
	NetAmount       *decimal.Decimal        `json:"netAmount" binding:"omitempty,money"`
	Description     *string                 `json:"description" binding:"omitempty,min=1"`
	Category        *string                 `json:"category" binding:"omitempty,min=1"`
	Vendor          *string                 `json:"vendor"`
	Reference       *string                 `json:"reference"`
	TransactionDate *Date                   `json:"transactionDate"`
	Version         *int                    `json:"version"`
}

func (r UpdateTransactionRequest) ToPatch() domain.TransactionPatch {
	return domain.TransactionPatch{
		DocumentID:      r.DocumentID,
		Type:            r.Type,
		Amount:          r.Amount,
		VATAmount:       r.VATAmount,
		NetAmount:       r.NetAmount,
		Description:     r.Description,
		Category:        r.Category,
		Vendor:          r.Vendor,
		Reference:       r.Reference,
		TransactionDate: timePtr(r.TransactionDate),
		ExpectedVersion: r.Version,
	}
}

// YearParams is the optional ?year= query used by the dashboard and the export.
type YearParams struct {
	Year int `form:"year" binding:"omitempty,gte=1900,lte=9999"`
}

type TransactionResponse struct {
	ID              string                 `json:"id"`
	BusinessID      string                 `json:"businessId"`
	DocumentID      *string                `json:"documentId,omitempty"`
	Type            domain.TransactionType `json:"type"`
	Amount          string                 `json:"amount"`
	VATAmount       *string                `json:"vatAmount,omitempty"`
	NetAmount       *string                `json:"netAmount,omitempty"`
	Description     string                 `json:"description"`
	Category        string                 `json:"category"`
	Vendor          *string                `json:"vendor,omitempty"`
	Reference       *string                `json:"reference,omitempty"`
	TransactionDate time.Time              `json:"transactionDate"`
	CreatedBy       string                 `json:"createdBy"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
	Version         int                    `json:"version"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		BusinessID:      t.BusinessID,
		DocumentID:      t.DocumentID,
		Type:            t.Type,
		Amount:          utils.FormatMoney(t.Amount),
		VATAmount:       utils.FormatMoneyPtr(t.VATAmount),
		NetAmount:       utils.FormatMoneyPtr(t.NetAmount),
		Description:     t.Description,
		Category:        t.Category,
		Vendor:          t.Vendor,
		Reference:       t.Reference,
		TransactionDate: t.TransactionDate,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		Version:         t.Version,
	}
}

func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}

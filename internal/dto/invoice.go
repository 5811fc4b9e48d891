package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest omits the invoice number, which the service generates.
type CreateInvoiceRequest struct {
	ClientName    string                `json:"clientName" binding:"required"`
	ClientEmail   *string               `json:"clientEmail" binding:"omitempty,email"`
	ClientAddress *string               `json:"clientAddress"`
	Amount        *decimal.Decimal      `json:"amount" binding:"required,money"`
	VATAmount     *decimal.Decimal      `json:"vatAmount" binding:"omitempty,money"`
	NetAmount     *decimal.Decimal      `json:"netAmount" binding:"omitempty,money"`
	VATRate       *decimal.Decimal      `json:"vatRate" binding:"omitempty,money"`
	Status        *domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=draft sent paid overdue"`
	IssueDate     *Date                 `json:"issueDate" binding:"required"`
	DueDate       *Date                 `json:"dueDate" binding:"required"`
	Items         json.RawMessage       `json:"items"`
}

type UpdateInvoiceRequest struct {
	ClientName    *string               `json:"clientName" binding:"omitempty,min=1"`
	ClientEmail   *string               `json:"clientEmail" binding:"omitempty,email"`
	ClientAddress *string               `json:"clientAddress"`
	Amount        *decimal.Decimal      `json:"amount" binding:"omitempty,money"`
	VATAmount     *decimal.Decimal      `json:"vatAmount" binding:"omitempty,money"`
	NetAmount     *decimal.Decimal      `json:"netAmount" binding:"omitempty,money"`
	VATRate       *decimal.Decimal      `json:"vatRate" binding:"omitempty,money"`
	Status        *domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=draft sent paid overdue"`
	IssueDate     *Date                 `json:"issueDate"`
	DueDate       *Date                 `json:"dueDate"`
	Items         *json.RawMessage      `json:"items"`
	Version       *int                  `json:"version"`
}

func (r UpdateInvoiceRequest) ToPatch() domain.InvoicePatch {
	return domain.InvoicePatch{
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientAddress:   r.ClientAddress,
		Amount:          r.Amount,
		VATAmount:       r.VATAmount,
		NetAmount:       r.NetAmount,
		VATRate:         r.VATRate,
		Status:          r.Status,
		IssueDate:       timePtr(r.IssueDate),
		DueDate:         timePtr(r.DueDate),
		Items:           r.Items,
		ExpectedVersion: r.Version,
	}
}

type InvoiceResponse struct {
	ID            string               `json:"id"`
	BusinessID    string               `json:"businessId"`
	InvoiceNumber string               `json:"invoiceNumber"`
	ClientName    string               `json:"clientName"`
	ClientEmail   *string              `json:"clientEmail,omitempty"`
	ClientAddress *string              `json:"clientAddress,omitempty"`
	Amount        string               `json:"amount"`
	VATAmount     *string              `json:"vatAmount,omitempty"`
	NetAmount     *string              `json:"netAmount,omitempty"`
	VATRate       *string              `json:"vatRate,omitempty"`
	Status        domain.InvoiceStatus `json:"status"`
	IssueDate     time.Time            `json:"issueDate"`
	DueDate       time.Time            `json:"dueDate"`
	Items         json.RawMessage      `json:"items"`
	CreatedBy     string               `json:"createdBy"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	Version       int                  `json:"version"`
}

func ToInvoiceResponse(i *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID,
		BusinessID:    i.BusinessID,
		InvoiceNumber: i.InvoiceNumber,
		ClientName:    i.ClientName,
		ClientEmail:   i.ClientEmail,
		ClientAddress: i.ClientAddress,
		Amount:        utils.FormatMoney(i.Amount),
		VATAmount:     utils.FormatMoneyPtr(i.VATAmount),
		NetAmount:     utils.FormatMoneyPtr(i.NetAmount),
		VATRate:       utils.FormatMoneyPtr(i.VATRate),
		Status:        i.Status,
		IssueDate:     i.IssueDate,
		DueDate:       i.DueDate,
		Items:         i.Items,
		CreatedBy:     i.CreatedBy,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
		Version:       i.Version,
	}
}

func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}

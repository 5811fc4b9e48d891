package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// Invoice is a sales invoice raised by a business.
type Invoice struct {
	ID            string           `json:"id"`
	BusinessID    string           `json:"businessId"`
	InvoiceNumber string           `json:"invoiceNumber"`
	ClientName    string           `json:"clientName"`
	ClientEmail   *string          `json:"clientEmail,omitempty"`
	ClientAddress *string          `json:"clientAddress,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	VATAmount     *decimal.Decimal `json:"vatAmount,omitempty"`
	NetAmount     *decimal.Decimal `json:"netAmount,omitempty"`
	VATRate       *decimal.Decimal `json:"vatRate,omitempty"` // percentage, e.g. 20.00
	Status        InvoiceStatus    `json:"status"`
	IssueDate     time.Time        `json:"issueDate"`
	DueDate       time.Time        `json:"dueDate"`
	Items         json.RawMessage  `json:"items"`
	CreatedBy     string           `json:"createdBy"`
	AuditFields
}

type InvoicePatch struct {
	ClientName      *string
	ClientEmail     *string
	ClientAddress   *string
	Amount          *decimal.Decimal
	VATAmount       *decimal.Decimal
	NetAmount       *decimal.Decimal
	VATRate         *decimal.Decimal
	Status          *InvoiceStatus
	IssueDate       *time.Time
	DueDate         *time.Time
	Items           *json.RawMessage
	ExpectedVersion *int
}

func (i *Invoice) Apply(p InvoicePatch) {
	set(&i.ClientName, p.ClientName)
	setOpt(&i.ClientEmail, p.ClientEmail)
	setOpt(&i.ClientAddress, p.ClientAddress)
	if p.Amount != nil {
		i.Amount = RoundMoney(*p.Amount)
	}
	setOpt(&i.VATAmount, RoundMoneyPtr(p.VATAmount))
	setOpt(&i.NetAmount, RoundMoneyPtr(p.NetAmount))
	setOpt(&i.VATRate, RoundMoneyPtr(p.VATRate))
	set(&i.Status, p.Status)
	set(&i.IssueDate, p.IssueDate)
	set(&i.DueDate, p.DueDate)
	set(&i.Items, p.Items)
}

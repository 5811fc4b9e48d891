package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type VatReturnStatus string

const (
	VatReturnStatusDraft           VatReturnStatus = "draft"
	VatReturnStatusPendingApproval VatReturnStatus = "pending_approval"
	VatReturnStatusApproved        VatReturnStatus = "approved"
	VatReturnStatusSubmitted       VatReturnStatus = "submitted"
)

func (s VatReturnStatus) IsValid() bool {
	switch s {
	case VatReturnStatusDraft, VatReturnStatusPendingApproval, VatReturnStatusApproved, VatReturnStatusSubmitted:
		return true
	}
	return false
}

// IsPending reports whether the return still counts towards outstanding VAT.
func (s VatReturnStatus) IsPending() bool {
	return s == VatReturnStatusDraft || s == VatReturnStatusPendingApproval
}

// VatReturn is a VAT return for one accounting period.
type VatReturn struct {
	ID             string           `json:"id"`
	BusinessID     string           `json:"businessId"`
	PeriodStart    time.Time        `json:"periodStart"`
	PeriodEnd      time.Time        `json:"periodEnd"`
	VATDue         decimal.Decimal  `json:"vatDue"`
	VATReclaimed   *decimal.Decimal `json:"vatReclaimed,omitempty"`
	NetVATDue      *decimal.Decimal `json:"netVatDue,omitempty"`
	TotalSales     *decimal.Decimal `json:"totalSales,omitempty"`
	TotalPurchases *decimal.Decimal `json:"totalPurchases,omitempty"`
	Status         VatReturnStatus  `json:"status"`
	DueDate        time.Time        `json:"dueDate"`
	SubmittedAt    *time.Time       `json:"submittedAt,omitempty"`
	ApprovedBy     *string          `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time       `json:"approvedAt,omitempty"`
	CreatedBy      string           `json:"createdBy"`
	AuditFields
}

type VatReturnPatch struct {
	PeriodStart     *time.Time
	PeriodEnd       *time.Time
	VATDue          *decimal.Decimal
	VATReclaimed    *decimal.Decimal
	NetVATDue       *decimal.Decimal
	TotalSales      *decimal.Decimal
	TotalPurchases  *decimal.Decimal
	Status          *VatReturnStatus
	DueDate         *time.Time
	SubmittedAt     *time.Time
	ApprovedBy      *string
	ApprovedAt      *time.Time
	ExpectedVersion *int
}

func (v *VatReturn) Apply(p VatReturnPatch) {
	set(&v.PeriodStart, p.PeriodStart)
	set(&v.PeriodEnd, p.PeriodEnd)
	if p.VATDue != nil {
		v.VATDue = RoundMoney(*p.VATDue)
	}
	setOpt(&v.VATReclaimed, RoundMoneyPtr(p.VATReclaimed))
	setOpt(&v.NetVATDue, RoundMoneyPtr(p.NetVATDue))
	setOpt(&v.TotalSales, RoundMoneyPtr(p.TotalSales))
	setOpt(&v.TotalPurchases, RoundMoneyPtr(p.TotalPurchases))
	set(&v.Status, p.Status)
	set(&v.DueDate, p.DueDate)
	setOpt(&v.SubmittedAt, p.SubmittedAt)
	setOpt(&v.ApprovedBy, p.ApprovedBy)
	setOpt(&v.ApprovedAt, p.ApprovedAt)
}

package dto

import (
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/shopspring/decimal"
)

type CreateVatReturnRequest struct {
	PeriodStart    *Date                   `json:"periodStart" binding:"required"`
	PeriodEnd      *Date                   `json:"periodEnd" binding:"required"`
	VATDue         *decimal.Decimal        `json:"vatDue" binding:"required,money"`
	VATReclaimed   *decimal.Decimal        `json:"vatReclaimed" binding:"omitempty,money"`
	NetVATDue      *decimal.Decimal        `json:"netVatDue"`
	TotalSales     *decimal.Decimal        `json:"totalSales" binding:"omitempty,money"`
	TotalPurchases *decimal.Decimal        `json:"totalPurchases" binding:"omitempty,money"`
	Status         *domain.VatReturnStatus `json:"status" binding:"omitempty,oneof=draft pending_approval"`
	DueDate        *Date                   `json:"dueDate" binding:"required"`
}

// UpdateVatReturnRequest: moving to approved or submitted stamps the matching audit fields.
type UpdateVatReturnRequest struct {
	PeriodStart    *Date                   `json:"periodStart"`
	PeriodEnd      *Date                   `json:"periodEnd"`
	VATDue         *decimal.Decimal        `json:"vatDue" binding:"omitempty,money"`
	VATReclaimed   *decimal.Decimal        `json:"vatReclaimed" binding:"omitempty,money"`
	NetVATDue      *decimal.Decimal        `json:"netVatDue"`
	TotalSales     *decimal.Decimal        `json:"totalSales" binding:"omitempty,money"`
	TotalPurchases *decimal.Decimal        `json:"totalPurchases" binding:"omitempty,money"`
	Status         *domain.VatReturnStatus `json:"status" binding:"omitempty,oneof=draft pending_approval approved submitted"`
	DueDate        *Date                   `json:"dueDate"`
	Version        *int                    `json:"version"`
}

func (r UpdateVatReturnRequest) ToPatch() domain.VatReturnPatch {
	return domain.VatReturnPatch{
		PeriodStart:     timePtr(r.PeriodStart),
		PeriodEnd:       timePtr(r.PeriodEnd),
		VATDue:          r.VATDue,
		VATReclaimed:    r.VATReclaimed,
		NetVATDue:       r.NetVATDue,
		TotalSales:      r.TotalSales,
		TotalPurchases:  r.TotalPurchases,
		Status:          r.Status,
		DueDate:         timePtr(r.DueDate),
		ExpectedVersion: r.Version,
	}
}

type VatReturnResponse struct {
	ID             string                 `json:"id"`
	BusinessID     string                 `json:"businessId"`
	PeriodStart    time.Time              `json:"periodStart"`
	PeriodEnd      time.Time              `json:"periodEnd"`
	VATDue         string                 `json:"vatDue"`
	VATReclaimed   *string                `json:"vatReclaimed,omitempty"`
	NetVATDue      *string                `json:"netVatDue,omitempty"`
	TotalSales     *string                `json:"totalSales,omitempty"`
	TotalPurchases *string                `json:"totalPurchases,omitempty"`
	Status         domain.VatReturnStatus `json:"status"`
	DueDate        time.Time              `json:"dueDate"`
	SubmittedAt    *time.Time             `json:"submittedAt,omitempty"`
	ApprovedBy     *string                `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time             `json:"approvedAt,omitempty"`
	CreatedBy      string                 `json:"createdBy"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	Version        int                    `json:"version"`
}

func ToVatReturnResponse(v *domain.VatReturn) VatReturnResponse {
	return VatReturnResponse{
		ID:             v.ID,
		BusinessID:     v.BusinessID,
		PeriodStart:    v.PeriodStart,
		PeriodEnd:      v.PeriodEnd,
		VATDue:         utils.FormatMoney(v.VATDue),
		VATReclaimed:   utils.FormatMoneyPtr(v.VATReclaimed),
		NetVATDue:      utils.FormatMoneyPtr(v.NetVATDue),
		TotalSales:     utils.FormatMoneyPtr(v.TotalSales),
		TotalPurchases: utils.FormatMoneyPtr(v.TotalPurchases),
		Status:         v.Status,
		DueDate:        v.DueDate,
		SubmittedAt:    v.SubmittedAt,
		ApprovedBy:     v.ApprovedBy,
		ApprovedAt:     v.ApprovedAt,
		CreatedBy:      v.CreatedBy,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
		Version:        v.Version,
	}
}

func ToVatReturnResponses(returns []domain.VatReturn) []VatReturnResponse {
	out := make([]VatReturnResponse, len(returns))
	for i := range returns {
		out[i] = ToVatReturnResponse(&returns[i])
	}
	return out
}

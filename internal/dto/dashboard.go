package dto

import (
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/utils"
)

// DashboardStatsParams is the query of GET /api/dashboard/stats. Year defaults to the current UTC year.
type DashboardStatsParams struct {
	BusinessID string `form:"businessId" binding:"required"`
	Year       int    `form:"year" binding:"omitempty,gte=1900,lte=9999"`
}

// DashboardStatsResponse renders money as fixed two-decimal strings.
type DashboardStatsResponse struct {
	BusinessID        string `json:"businessId"`
	Year              int    `json:"year"`
	Revenue           string `json:"revenue"`
	Expenses          string `json:"expenses"`
	Profit            string `json:"profit"`
	VATDue            string `json:"vatDue"`
	PendingVATReturns int    `json:"pendingVatReturns"`
}

func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		BusinessID:        s.BusinessID,
		Year:              s.Year,
		Revenue:           utils.FormatMoney(s.Revenue),
		Expenses:          utils.FormatMoney(s.Expenses),
		Profit:            utils.FormatMoney(s.Profit),
		VATDue:            utils.FormatMoney(s.VATDue),
		PendingVATReturns: s.PendingVATReturns,
	}
}

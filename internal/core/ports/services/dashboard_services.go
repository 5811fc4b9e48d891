package services

import (
	"context"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

type DashboardSvcFacade interface {
	// ComputeDashboardStats aggregates the business's transactions for a UTC calendar year and its pending VAT returns.
	ComputeDashboardStats(ctx context.Context, businessID string, year int, requestingUserID string) (*domain.DashboardStats, error)
	// ExportTransactions renders the year's transactions as an .xlsx workbook.
	ExportTransactions(ctx context.Context, businessID string, year int, requestingUserID string) ([]byte, error)
}

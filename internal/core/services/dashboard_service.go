package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Transactions"

type dashboardService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	vatReturnRepo   portsrepo.VatReturnReader
}

func NewDashboardService(transactionRepo portsrepo.TransactionReader, vatReturnRepo portsrepo.VatReturnReader, opts ...ServiceOption) portssvc.DashboardSvcFacade {
	s := &dashboardService{transactionRepo: transactionRepo, vatReturnRepo: vatReturnRepo}
	s.apply(opts)
	return s
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) ComputeDashboardStats(ctx context.Context, businessID string, year int, requestingUserID string) (*domain.DashboardStats, error) {
	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}

	txns, err := s.transactionsForYear(ctx, businessID, year)
	if err != nil {
		return nil, err
	}
	totals := accounting.SumTransactions(txns)

	returns, err := s.vatReturnRepo.ListVatReturnsByBusiness(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list VAT returns for dashboard", slog.String("business_id", businessID))
		return nil, err
	}
	pending, nearest := pendingVatReturns(returns)

	stats := &domain.DashboardStats{
		BusinessID:        businessID,
		Year:              year,
		Revenue:           domain.RoundMoney(totals.Income),
		Expenses:          domain.RoundMoney(totals.Expense),
		Profit:            domain.RoundMoney(totals.Profit()),
		VATDue:            decimal.Zero,
		PendingVATReturns: pending,
	}
	if nearest != nil {
		stats.VATDue = domain.RoundMoney(nearest.VATDue)
	}

	s.LogDebug(ctx, "Dashboard stats computed",
		slog.String("business_id", businessID),
		slog.Int("year", year),
		slog.Int("transactions", len(txns)),
		slog.Int("pending_vat_returns", pending))
	return stats, nil
}

// pendingVatReturns counts returns still awaiting approval or submission and picks
// the one due soonest. Ties go to the earlier CreatedAt, then to storage order.
func pendingVatReturns(returns []domain.VatReturn) (int, *domain.VatReturn) {
	count := 0
	var nearest *domain.VatReturn
	for i := range returns {
		vr := &returns[i]
		if !vr.Status.IsPending() {
			continue
		}
		count++
		if nearest == nil ||
			vr.DueDate.Before(nearest.DueDate) ||
			(vr.DueDate.Equal(nearest.DueDate) && vr.CreatedAt.Before(nearest.CreatedAt)) {
			nearest = vr
		}
	}
	return count, nearest
}

func (s *dashboardService) transactionsForYear(ctx context.Context, businessID string, year int) ([]domain.Transaction, error) {
	all, err := s.transactionRepo.ListTransactionsByBusiness(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for dashboard", slog.String("business_id", businessID))
		return nil, err
	}
	txns := make([]domain.Transaction, 0, len(all))
	for _, t := range all {
		if t.TransactionDate.UTC().Year() == year {
			txns = append(txns, t)
		}
	}
	return txns, nil
}

func (s *dashboardService) ExportTransactions(ctx context.Context, businessID string, year int, requestingUserID string) ([]byte, error) {
	if err := s.AuthorizeBusiness(ctx, requestingUserID, businessID); err != nil {
		return nil, err
	}
	txns, err := s.transactionsForYear(ctx, businessID, year)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.LogError(ctx, err, "Failed to close workbook")
		}
	}()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []any{"Date", "Type", "Description", "Category", "Vendor", "Reference", "Amount", "VAT", "Net"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, t := range txns {
		values := []any{
			t.TransactionDate.UTC().Format("2006-01-02"),
			string(t.Type),
			t.Description,
			t.Category,
			derefString(t.Vendor),
			derefString(t.Reference),
			t.Amount.InexactFloat64(),
			optionalFloat(t.VATAmount),
			optionalFloat(t.NetAmount),
		}
		if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
	}

	totals := accounting.SumTransactions(txns)
	summary := [][]any{
		{"Total income", totals.Income.InexactFloat64()},
		{"Total expenses", totals.Expense.InexactFloat64()},
		{"Profit", totals.Profit().InexactFloat64()},
	}
	row++
	firstTotal := row
	for _, line := range summary {
		if err := f.SetSheetRow(exportSheet, fmt.Sprintf("F%d", row), &line); err != nil {
			return nil, fmt.Errorf("failed to write totals: %w", err)
		}
		row++
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}
	if len(txns) > 0 {
		if err := f.SetCellStyle(exportSheet, "G2", fmt.Sprintf("I%d", len(txns)+1), moneyStyle); err != nil {
			return nil, fmt.Errorf("failed to style amounts: %w", err)
		}
	}
	if err := f.SetCellStyle(exportSheet, fmt.Sprintf("G%d", firstTotal), fmt.Sprintf("G%d", row-1), moneyStyle); err != nil {
		return nil, fmt.Errorf("failed to style totals: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.LogError(ctx, err, "Failed to render workbook", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	s.LogInfo(ctx, "Transactions exported",
		slog.String("business_id", businessID),
		slog.Int("year", year),
		slog.Int("rows", len(txns)))
	return buf.Bytes(), nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalFloat(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.InexactFloat64()
}

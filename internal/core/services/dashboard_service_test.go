package services_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type DashboardServiceTestSuite struct {
	containerSuite
	client   *domain.User
	business *domain.Business
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.containerSuite.SetupTest()
	s.client = s.newUser("john@example.co.uk", domain.RoleClient)
	s.business = s.newBusiness(s.client.ID, "Smith Consulting Ltd")
}

func (s *DashboardServiceTestSuite) addTxn(kind domain.TransactionType, amount string, date *dto.Date) {
	_, err := s.svc.Transaction.CreateTransaction(s.ctx, s.business.ID, dto.CreateTransactionRequest{
		Type:            kind,
		Amount:          dec(amount),
		Description:     string(kind),
		Category:        "general",
		TransactionDate: date,
	}, s.client.ID)
	s.Require().NoError(err)
}

func (s *DashboardServiceTestSuite) addReturn(vatDue string, due *dto.Date, status domain.VatReturnStatus) *domain.VatReturn {
	vr, err := s.svc.VatReturn.CreateVatReturn(s.ctx, s.business.ID, dto.CreateVatReturnRequest{
		PeriodStart: day(2024, 1, 1),
		PeriodEnd:   day(2024, 3, 31),
		VATDue:      dec(vatDue),
		DueDate:     due,
	}, s.client.ID)
	s.Require().NoError(err)
	if status != domain.VatReturnStatusDraft {
		vr, err = s.svc.VatReturn.UpdateVatReturn(s.ctx, vr.ID, dto.UpdateVatReturnRequest{Status: &status}, s.client.ID)
		s.Require().NoError(err)
	}
	return vr
}

func (s *DashboardServiceTestSuite) TestYearTotals() {
	s.addTxn(domain.TransactionTypeIncome, "1000.00", day(2024, 2, 10))
	s.addTxn(domain.TransactionTypeIncome, "500", day(2024, 11, 30))
	s.addTxn(domain.TransactionTypeExpense, "300.00", day(2024, 5, 1))
	s.addTxn(domain.TransactionTypeIncome, "999.99", day(2023, 12, 31))
	s.addTxn(domain.TransactionTypeExpense, "42.00", day(2025, 1, 1))

	stats, err := s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2024, s.client.ID)
	s.Require().NoError(err)

	s.Equal("1500.00", stats.Revenue.StringFixed(2))
	s.Equal("300.00", stats.Expenses.StringFixed(2))
	s.Equal("1200.00", stats.Profit.StringFixed(2))
	s.True(stats.VATDue.IsZero())
	s.Equal(0, stats.PendingVATReturns)
	s.Equal(2024, stats.Year)
}

func (s *DashboardServiceTestSuite) TestYearFilterUsesUTC() {
	// 23:30 on 31 Dec 2024 in UTC-5 is already 2025 in UTC.
	ny := time.FixedZone("UTC-5", -5*60*60)
	s.addTxn(domain.TransactionTypeIncome, "100", &dto.Date{Time: time.Date(2024, 12, 31, 23, 30, 0, 0, ny)})

	stats, err := s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2024, s.client.ID)
	s.Require().NoError(err)
	s.True(stats.Revenue.IsZero())

	stats, err = s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2025, s.client.ID)
	s.Require().NoError(err)
	s.Equal("100.00", stats.Revenue.StringFixed(2))
}

func (s *DashboardServiceTestSuite) TestNegativeProfit() {
	s.addTxn(domain.TransactionTypeIncome, "100", day(2024, 1, 1))
	s.addTxn(domain.TransactionTypeExpense, "250.50", day(2024, 1, 2))

	stats, err := s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2024, s.client.ID)
	s.Require().NoError(err)
	s.Equal("-150.50", stats.Profit.StringFixed(2))
}

func (s *DashboardServiceTestSuite) TestVATDueFromNearestPendingReturn() {
	s.addReturn("900.00", day(2024, 11, 7), domain.VatReturnStatusDraft)
	s.addReturn("250.00", day(2024, 8, 7), domain.VatReturnStatusPendingApproval)
	s.addReturn("75.00", day(2024, 5, 7), domain.VatReturnStatusSubmitted)

	stats, err := s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2024, s.client.ID)
	s.Require().NoError(err)
	s.Equal("250.00", stats.VATDue.StringFixed(2))
	s.Equal(2, stats.PendingVATReturns)
}

func (s *DashboardServiceTestSuite) TestVATDueTieBreaksOnCreatedAt() {
	due := time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC)
	later := domain.VatReturn{
		ID: uuid.NewString(), BusinessID: s.business.ID, VATDue: decimal.RequireFromString("10"),
		Status: domain.VatReturnStatusDraft, DueDate: due,
		AuditFields: domain.NewAuditFields(s.now.Add(time.Hour)),
	}
	earlier := later
	earlier.ID = uuid.NewString()
	earlier.VATDue = decimal.RequireFromString("20")
	earlier.AuditFields = domain.NewAuditFields(s.now)
	s.Require().NoError(s.repos.VatReturnRepo.SaveVatReturn(s.ctx, later))
	s.Require().NoError(s.repos.VatReturnRepo.SaveVatReturn(s.ctx, earlier))

	stats, err := s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2024, s.client.ID)
	s.Require().NoError(err)
	s.Equal("20.00", stats.VATDue.StringFixed(2))
}

func (s *DashboardServiceTestSuite) TestIdempotent() {
	s.addTxn(domain.TransactionTypeIncome, "1000", day(2024, 2, 10))
	s.addReturn("120.00", day(2024, 8, 7), domain.VatReturnStatusDraft)

	first, err := s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2024, s.client.ID)
	s.Require().NoError(err)
	second, err := s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2024, s.client.ID)
	s.Require().NoError(err)
	s.Equal(dto.ToDashboardStatsResponse(first), dto.ToDashboardStatsResponse(second))
}

func (s *DashboardServiceTestSuite) TestForbiddenForStranger() {
	stranger := s.newUser("stranger@example.co.uk", domain.RoleClient)
	_, err := s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2024, stranger.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.svc.Dashboard.ComputeDashboardStats(s.ctx, "missing", 2024, s.client.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *DashboardServiceTestSuite) TestGrantedAccountantSeesStats() {
	accountant := s.newUser("sarah@accountingfirm.co.uk", domain.RoleAccountant)
	s.addTxn(domain.TransactionTypeIncome, "10", day(2024, 2, 10))

	_, err := s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2024, accountant.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	s.grant(s.business.ID, accountant.ID, s.client.ID)
	stats, err := s.svc.Dashboard.ComputeDashboardStats(s.ctx, s.business.ID, 2024, accountant.ID)
	s.Require().NoError(err)
	s.Equal("10.00", stats.Revenue.StringFixed(2))
}

func (s *DashboardServiceTestSuite) TestExportTransactions() {
	s.addTxn(domain.TransactionTypeIncome, "1000.00", day(2024, 2, 10))
	s.addTxn(domain.TransactionTypeExpense, "300.00", day(2024, 5, 1))
	s.addTxn(domain.TransactionTypeIncome, "5.00", day(2023, 5, 1))

	data, err := s.svc.Dashboard.ExportTransactions(s.ctx, s.business.ID, 2024, s.client.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	s.Require().NoError(err)
	s.Require().GreaterOrEqual(len(rows), 3)
	s.Equal("Date", rows[0][0])
	s.Equal("2024-02-10", rows[1][0])
	s.Equal("income", rows[1][1])
	s.Equal("2024-05-01", rows[2][0])

	profit, err := f.GetCellValue("Transactions", "F7")
	s.Require().NoError(err)
	s.Equal("Profit", profit)
}

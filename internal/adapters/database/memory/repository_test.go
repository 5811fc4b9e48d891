package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/adapters/database/memory"
	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	now   time.Time
}

func (suite *MemoryRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider()
	suite.now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (suite *MemoryRepositoryTestSuite) newUser(email string, role domain.UserRole) domain.User {
	return domain.User{
		ID:          uuid.NewString(),
		Email:       email,
		FirstName:   "Test",
		LastName:    "User",
		Role:        role,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(suite.now),
	}
}

func (suite *MemoryRepositoryTestSuite) newTransaction(businessID string, amount string) domain.Transaction {
	return domain.Transaction{
		ID:              uuid.NewString(),
		BusinessID:      businessID,
		Type:            domain.TransactionTypeIncome,
		Amount:          decimal.RequireFromString(amount),
		Description:     "Consulting",
		Category:        "sales",
		TransactionDate: suite.now,
		CreatedBy:       "u1",
		AuditFields:     domain.NewAuditFields(suite.now),
	}
}

func (suite *MemoryRepositoryTestSuite) TestUser_RoundTrip() {
	user := suite.newUser("john.smith@example.co.uk", domain.RoleClient)
	suite.Require().NoError(suite.repos.UserRepo.SaveUser(suite.ctx, user))

	found, err := suite.repos.UserRepo.FindUserByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal(user, *found)

	byEmail, err := suite.repos.UserRepo.FindUserByEmail(suite.ctx, user.Email)
	suite.Require().NoError(err)
	suite.Equal(user.ID, byEmail.ID)
}

func (suite *MemoryRepositoryTestSuite) TestUser_EmailIsCaseSensitive() {
	user := suite.newUser("john.smith@example.co.uk", domain.RoleClient)
	suite.Require().NoError(suite.repos.UserRepo.SaveUser(suite.ctx, user))

	_, err := suite.repos.UserRepo.FindUserByEmail(suite.ctx, "John.Smith@example.co.uk")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryRepositoryTestSuite) TestUser_DuplicateEmailRejected() {
	suite.Require().NoError(suite.repos.UserRepo.SaveUser(suite.ctx, suite.newUser("dup@example.com", domain.RoleClient)))

	err := suite.repos.UserRepo.SaveUser(suite.ctx, suite.newUser("dup@example.com", domain.RoleAccountant))
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *MemoryRepositoryTestSuite) TestSave_DuplicateIDNeverOverwrites() {
	txn := suite.newTransaction("b1", "100.00")
	suite.Require().NoError(suite.repos.TransactionRepo.SaveTransaction(suite.ctx, txn))

	clash := txn
	clash.Amount = decimal.NewFromInt(999)
	err := suite.repos.TransactionRepo.SaveTransaction(suite.ctx, clash)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	stored, err := suite.repos.TransactionRepo.FindTransactionByID(suite.ctx, txn.ID)
	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("100.00").Equal(stored.Amount))
}

func (suite *MemoryRepositoryTestSuite) TestFind_UnknownIDIsNotFound() {
	_, err := suite.repos.BusinessRepo.FindBusinessByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repos.InvoiceRepo.FindInvoiceByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repos.VatReturnRepo.FindVatReturnByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repos.ClientInvitationRepo.FindClientInvitationByToken(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryRepositoryTestSuite) TestUpdate_UnknownIDIsNotFoundAndCreatesNothing() {
	desc := "x"
	_, err := suite.repos.TransactionRepo.UpdateTransaction(suite.ctx, "missing", domain.TransactionPatch{Description: &desc}, suite.now)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repos.TransactionRepo.FindTransactionByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryRepositoryTestSuite) TestUpdate_PreservesUntouchedFieldsAndBumpsVersion() {
	txn := suite.newTransaction("b1", "250.00")
	suite.Require().NoError(suite.repos.TransactionRepo.SaveTransaction(suite.ctx, txn))

	category := "consulting"
	later := suite.now.Add(time.Hour)
	updated, err := suite.repos.TransactionRepo.UpdateTransaction(suite.ctx, txn.ID, domain.TransactionPatch{Category: &category}, later)
	suite.Require().NoError(err)

	suite.Equal("consulting", updated.Category)
	suite.Equal(txn.Description, updated.Description)
	suite.True(txn.Amount.Equal(updated.Amount))
	suite.Equal(txn.CreatedAt, updated.CreatedAt)
	suite.Equal(later, updated.UpdatedAt)
	suite.Equal(2, updated.Version)

	stored, err := suite.repos.TransactionRepo.FindTransactionByID(suite.ctx, txn.ID)
	suite.Require().NoError(err)
	suite.Equal(*updated, *stored)
}

func (suite *MemoryRepositoryTestSuite) TestUpdate_StaleVersionConflictsAndLeavesRowUntouched() {
	txn := suite.newTransaction("b1", "10.00")
	suite.Require().NoError(suite.repos.TransactionRepo.SaveTransaction(suite.ctx, txn))

	desc := "first"
	_, err := suite.repos.TransactionRepo.UpdateTransaction(suite.ctx, txn.ID, domain.TransactionPatch{Description: &desc}, suite.now)
	suite.Require().NoError(err)

	stale := 1
	desc2 := "second"
	_, err = suite.repos.TransactionRepo.UpdateTransaction(suite.ctx, txn.ID,
		domain.TransactionPatch{Description: &desc2, ExpectedVersion: &stale}, suite.now)
	suite.ErrorIs(err, apperrors.ErrConflict)

	stored, err := suite.repos.TransactionRepo.FindTransactionByID(suite.ctx, txn.ID)
	suite.Require().NoError(err)
	suite.Equal("first", stored.Description)
	suite.Equal(2, stored.Version)
}

func (suite *MemoryRepositoryTestSuite) TestList_FiltersInInsertionOrderAndIsNeverNil() {
	empty, err := suite.repos.TransactionRepo.ListTransactionsByBusiness(suite.ctx, "b1")
	suite.Require().NoError(err)
	suite.NotNil(empty)
	suite.Empty(empty)

	first := suite.newTransaction("b1", "1.00")
	other := suite.newTransaction("b2", "2.00")
	second := suite.newTransaction("b1", "3.00")
	for _, txn := range []domain.Transaction{first, other, second} {
		suite.Require().NoError(suite.repos.TransactionRepo.SaveTransaction(suite.ctx, txn))
	}

	listed, err := suite.repos.TransactionRepo.ListTransactionsByBusiness(suite.ctx, "b1")
	suite.Require().NoError(err)
	suite.Require().Len(listed, 2)
	suite.Equal(first.ID, listed[0].ID)
	suite.Equal(second.ID, listed[1].ID)
}

func (suite *MemoryRepositoryTestSuite) TestDocuments_ListByStatus() {
	mk := func(status domain.DocumentStatus) domain.Document {
		return domain.Document{
			ID: uuid.NewString(), BusinessID: "b1", UploadedBy: "u1", FileName: "r.pdf",
			FileType: "application/pdf", Status: status, AuditFields: domain.NewAuditFields(suite.now),
		}
	}
	pending := mk(domain.DocumentStatusPending)
	suite.Require().NoError(suite.repos.DocumentRepo.SaveDocument(suite.ctx, pending))
	suite.Require().NoError(suite.repos.DocumentRepo.SaveDocument(suite.ctx, mk(domain.DocumentStatusApproved)))

	listed, err := suite.repos.DocumentRepo.ListDocumentsByStatus(suite.ctx, domain.DocumentStatusPending)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(pending.ID, listed[0].ID)
}

func (suite *MemoryRepositoryTestSuite) TestReturnedRecordsDoNotAliasStore() {
	phone := "07700 900000"
	user := suite.newUser("alias@example.com", domain.RoleClient)
	user.Phone = &phone
	suite.Require().NoError(suite.repos.UserRepo.SaveUser(suite.ctx, user))

	found, err := suite.repos.UserRepo.FindUserByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	*found.Phone = "changed"
	found.FirstName = "changed"

	again, err := suite.repos.UserRepo.FindUserByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("07700 900000", *again.Phone)
	suite.Equal("Test", again.FirstName)
}

func (suite *MemoryRepositoryTestSuite) grant(accountantID, clientID, businessID string) domain.AccountantClient {
	return domain.AccountantClient{
		ID: uuid.NewString(), AccountantID: accountantID, ClientID: clientID, BusinessID: businessID,
		CreatedAt: suite.now, UpdatedAt: suite.now,
	}
}

func (suite *MemoryRepositoryTestSuite) TestGrants_AssignIsIdempotent() {
	first, err := suite.repos.AccountantClientRepo.AssignAccountantToClient(suite.ctx, suite.grant("a1", "c1", "b1"))
	suite.Require().NoError(err)
	suite.True(first.HasAccess)

	second, err := suite.repos.AccountantClientRepo.AssignAccountantToClient(suite.ctx, suite.grant("a1", "c1", "b1"))
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)

	grants, err := suite.repos.AccountantClientRepo.ListGrantsByAccountant(suite.ctx, "a1")
	suite.Require().NoError(err)
	suite.Len(grants, 1)
}

func (suite *MemoryRepositoryTestSuite) TestGrants_RevokeThenReassign() {
	_, err := suite.repos.AccountantClientRepo.AssignAccountantToClient(suite.ctx, suite.grant("a1", "c1", "b1"))
	suite.Require().NoError(err)

	n, err := suite.repos.AccountantClientRepo.RevokeAccountantAccess(suite.ctx,
		domain.GrantKey{AccountantID: "a1", ClientID: "c1", BusinessID: "b1"}, suite.now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Equal(1, n)

	_, err = suite.repos.AccountantClientRepo.FindGrant(suite.ctx, "a1", "b1")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	grants, err := suite.repos.AccountantClientRepo.ListGrantsByClient(suite.ctx, "c1")
	suite.Require().NoError(err)
	suite.Require().Len(grants, 1)
	suite.False(grants[0].HasAccess)

	reassigned, err := suite.repos.AccountantClientRepo.AssignAccountantToClient(suite.ctx, suite.grant("a1", "c1", "b1"))
	suite.Require().NoError(err)
	suite.True(reassigned.HasAccess)
	suite.Equal(grants[0].ID, reassigned.ID)

	active, err := suite.repos.AccountantClientRepo.FindGrant(suite.ctx, "a1", "b1")
	suite.Require().NoError(err)
	suite.Equal(reassigned.ID, active.ID)
}

func (suite *MemoryRepositoryTestSuite) TestGrants_RevokeUnknownIsNotFound() {
	_, err := suite.repos.AccountantClientRepo.RevokeAccountantAccess(suite.ctx,
		domain.GrantKey{AccountantID: "a1", ClientID: "c1", BusinessID: "b1"}, suite.now)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryRepositoryTestSuite) TestActivityLogs_ListByUserAndBusiness() {
	b1 := "b1"
	entries := []domain.ActivityLog{
		{ID: uuid.NewString(), UserID: "u1", BusinessID: &b1, Action: domain.ActionInvoiceCreated, CreatedAt: suite.now},
		{ID: uuid.NewString(), UserID: "u1", Action: domain.ActionLogin, CreatedAt: suite.now},
		{ID: uuid.NewString(), UserID: "u2", BusinessID: &b1, Action: domain.ActionDocumentUploaded, CreatedAt: suite.now},
	}
	for _, e := range entries {
		suite.Require().NoError(suite.repos.ActivityLogRepo.SaveActivityLog(suite.ctx, e))
	}

	byUser, err := suite.repos.ActivityLogRepo.ListActivityLogsByUser(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Len(byUser, 2)

	byBusiness, err := suite.repos.ActivityLogRepo.ListActivityLogsByBusiness(suite.ctx, "b1")
	suite.Require().NoError(err)
	suite.Require().Len(byBusiness, 2)
	suite.Equal(entries[0].ID, byBusiness[0].ID)
	suite.Equal(entries[2].ID, byBusiness[1].ID)
}

func (suite *MemoryRepositoryTestSuite) TestInvitations_DuplicateTokenRejected() {
	inv := domain.ClientInvitation{
		ID: uuid.NewString(), AccountantID: "a1", Email: "x@example.com", Token: "tok",
		Status: domain.InvitationStatusPending, ExpiresAt: suite.now.Add(48 * time.Hour), CreatedAt: suite.now, UpdatedAt: suite.now,
	}
	suite.Require().NoError(suite.repos.ClientInvitationRepo.SaveClientInvitation(suite.ctx, inv))

	clash := inv
	clash.ID = uuid.NewString()
	err := suite.repos.ClientInvitationRepo.SaveClientInvitation(suite.ctx, clash)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *MemoryRepositoryTestSuite) TestConcurrentWritesAreSafe() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			txn := suite.newTransaction("b1", fmt.Sprintf("%d.00", i))
			suite.NoError(suite.repos.TransactionRepo.SaveTransaction(suite.ctx, txn))
			_, _ = suite.repos.TransactionRepo.ListTransactionsByBusiness(suite.ctx, "b1")
		}(i)
	}
	wg.Wait()

	listed, err := suite.repos.TransactionRepo.ListTransactionsByBusiness(suite.ctx, "b1")
	suite.Require().NoError(err)
	suite.Len(listed, 50)
}

func TestMemoryRepositories(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

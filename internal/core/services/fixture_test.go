package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/adapters/database/memory"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/taxbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/core/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/platform/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// containerSuite wires every service against a fresh in-memory store and a controllable clock.
type containerSuite struct {
	suite.Suite
	ctx   context.Context
	now   time.Time
	repos portsrepo.RepositoryProvider
	svc   *portssvc.ServiceContainer
}

func (s *containerSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s.repos = memory.NewRepositoryProvider()
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "taxbooks-test",
		InvitationTTL:     48 * time.Hour,
	}
	s.svc = services.NewServiceContainer(cfg, s.repos, services.WithClock(func() time.Time { return s.now }))
}

// advance moves the clock forward.
func (s *containerSuite) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

// newUser stores a user directly; password hashing is not needed for these flows.
func (s *containerSuite) newUser(email string, role domain.UserRole) *domain.User {
	u := domain.User{
		ID:          uuid.NewString(),
		Email:       email,
		FirstName:   "Test",
		LastName:    string(role),
		Role:        role,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(s.now),
	}
	s.Require().NoError(s.repos.UserRepo.SaveUser(s.ctx, u))
	return &u
}

func (s *containerSuite) newBusiness(ownerID, name string) *domain.Business {
	b, err := s.svc.Business.CreateBusiness(s.ctx, dto.CreateBusinessRequest{
		CompanyName:  name,
		BusinessType: domain.BusinessTypeLimitedCompany,
	}, ownerID)
	s.Require().NoError(err)
	return b
}

func (s *containerSuite) grant(businessID, accountantID, ownerID string) {
	_, err := s.svc.Accountant.AssignAccountant(s.ctx, businessID, dto.AssignAccountantRequest{AccountantID: accountantID}, ownerID)
	s.Require().NoError(err)
}

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func day(year int, month time.Month, d int) *dto.Date {
	return &dto.Date{Time: time.Date(year, month, d, 0, 0, 0, 0, time.UTC)}
}

func userIDs(users []domain.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

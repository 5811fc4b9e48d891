package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock BusinessService ---
type MockBusinessService struct {
	mock.Mock
}

func (m *MockBusinessService) GetBusinessByID(ctx context.Context, businessID, requestingUserID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessService) ListBusinesses(ctx context.Context, requestingUserID string) ([]domain.Business, error) {
	args := m.Called(ctx, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, ownerID string) (*domain.Business, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessService) UpdateBusiness(ctx context.Context, businessID string, req dto.UpdateBusinessRequest, requestingUserID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

var _ portssvc.BusinessSvcFacade = (*MockBusinessService)(nil)

// --- Mock AccountantService ---
type MockAccountantService struct {
	mock.Mock
}

func (m *MockAccountantService) ClientsOf(ctx context.Context, accountantID string) ([]domain.User, error) {
	args := m.Called(ctx, accountantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockAccountantService) AccountantsOf(ctx context.Context, clientID string) ([]domain.User, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockAccountantService) CanAccessBusiness(ctx context.Context, userID, businessID string) (bool, error) {
	args := m.Called(ctx, userID, businessID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountantService) AuthorizeBusinessAccess(ctx context.Context, userID, businessID string) error {
	args := m.Called(ctx, userID, businessID)
	return args.Error(0)
}

func (m *MockAccountantService) AccessibleBusinessIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccountantService) ListMyClients(ctx context.Context, requestingUserID string) ([]domain.User, error) {
	args := m.Called(ctx, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockAccountantService) AssignAccountant(ctx context.Context, businessID string, req dto.AssignAccountantRequest, requestingUserID string) (*domain.AccountantClient, error) {
	args := m.Called(ctx, businessID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountantClient), args.Error(1)
}

func (m *MockAccountantService) RevokeAccountant(ctx context.Context, businessID, accountantID, requestingUserID string) error {
	args := m.Called(ctx, businessID, accountantID, requestingUserID)
	return args.Error(0)
}

func (m *MockAccountantService) InviteClient(ctx context.Context, req dto.InviteClientRequest, accountantID string) (*domain.ClientInvitation, error) {
	args := m.Called(ctx, req, accountantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientInvitation), args.Error(1)
}

func (m *MockAccountantService) AcceptInvitation(ctx context.Context, token string, req dto.AcceptInvitationRequest, clientID string) (*domain.AccountantClient, error) {
	args := m.Called(ctx, token, req, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountantClient), args.Error(1)
}

var _ portssvc.AccountantSvcFacade = (*MockAccountantService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) ComputeDashboardStats(ctx context.Context, businessID string, year int, requestingUserID string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, businessID, year, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockDashboardService) ExportTransactions(ctx context.Context, businessID string, year int, requestingUserID string) ([]byte, error) {
	args := m.Called(ctx, businessID, year, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

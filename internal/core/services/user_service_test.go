package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/core/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository (based on UserService usage) ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error) {
	args := m.Called(ctx, userIDs)
	var users map[string]domain.User
	if args.Get(0) != nil {
		users = args.Get(0).(map[string]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userID string, patch domain.UserPatch, now time.Time) (*domain.User, error) {
	args := m.Called(ctx, userID, patch, now)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	now          time.Time
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewUserService(suite.mockUserRepo, services.WithClock(func() time.Time { return suite.now }))
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:     "jane@example.co.uk",
		Password:  "correct-horse",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.Role == domain.RoleClient &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash) &&
			u.Version == 1 &&
			u.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.ID)
	suite.True(user.IsActive)
	suite.Equal(domain.RoleClient, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_AccountantRole() {
	ctx := context.Background()
	role := domain.RoleAccountant
	req := dto.RegisterRequest{Email: "acc@example.co.uk", Password: "password123", FirstName: "A", LastName: "B", Role: &role}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAccountant, user.Role)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "taken@example.co.uk", Password: "password123", FirstName: "A", LastName: "B"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(&domain.User{ID: "existing"}, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_AdminRejected() {
	role := domain.RoleAdmin
	req := dto.RegisterRequest{Email: "root@example.co.uk", Password: "password123", FirstName: "A", LastName: "B", Role: &role}

	user, err := suite.service.Register(context.Background(), req)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestRegister_SaveError() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "jane@example.co.uk", Password: "password123", FirstName: "A", LastName: "B"}
	expectedErr := errors.New("database error")

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(expectedErr).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
}

func (suite *UserServiceTestSuite) storedUser(password string, active bool) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{ID: "user-1", Email: "jane@example.co.uk", PasswordHash: hash, Role: domain.RoleClient, IsActive: active}
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	stored := suite.storedUser("password123", true)
	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, stored.Email, "password123")

	suite.Require().NoError(err)
	suite.Equal(stored.ID, user.ID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	stored := suite.storedUser("password123", true)
	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, stored.Email, "not-the-password")

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.co.uk").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "ghost@example.co.uk", "password123")

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_InactiveUser() {
	ctx := context.Background()
	stored := suite.storedUser("password123", false)
	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, stored.Email, "password123")

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_RepoError() {
	ctx := context.Background()
	expectedErr := errors.New("database error")
	suite.mockUserRepo.On("FindUserByID", ctx, "user-1").Return(nil, expectedErr).Once()

	user, err := suite.service.GetUserByID(ctx, "user-1")

	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_RehashesPassword() {
	ctx := context.Background()
	newPassword := "new-password-1"
	firstName := "Janet"
	version := 1
	req := dto.UpdateProfileRequest{FirstName: &firstName, Password: &newPassword, Version: &version}
	updated := &domain.User{ID: "user-1", FirstName: firstName}

	suite.mockUserRepo.On("UpdateUser", ctx, "user-1", mock.MatchedBy(func(p domain.UserPatch) bool {
		return p.PasswordHash != nil &&
			utils.CheckPasswordHash(newPassword, *p.PasswordHash) &&
			p.FirstName != nil && *p.FirstName == firstName &&
			p.ExpectedVersion != nil && *p.ExpectedVersion == 1 &&
			p.Role == nil
	}), suite.now).Return(updated, nil).Once()

	user, err := suite.service.UpdateProfile(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Equal(firstName, user.FirstName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateProfile_Conflict() {
	ctx := context.Background()
	stale := 3
	req := dto.UpdateProfileRequest{Version: &stale}
	suite.mockUserRepo.On("UpdateUser", ctx, "user-1", mock.AnythingOfType("domain.UserPatch"), suite.now).
		Return(nil, apperrors.NewConflictError("user", "user-1", 3, 4)).Once()

	user, err := suite.service.UpdateProfile(ctx, "user-1", req)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

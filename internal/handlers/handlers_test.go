package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/handlers"
	"github.com/SscSPs/taxbooks_app/internal/platform/config"
	"github.com/SscSPs/taxbooks_app/internal/platform/metrics"
	"github.com/SscSPs/taxbooks_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-for-handlers"

type HandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockUserService       *MockUserService
	mockTokenService      *MockTokenService
	mockBusinessService   *MockBusinessService
	mockAccountantService *MockAccountantService
	mockDashboardService  *MockDashboardService
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)
	suite.mockBusinessService = new(MockBusinessService)
	suite.mockAccountantService = new(MockAccountantService)
	suite.mockDashboardService = new(MockDashboardService)

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	container := &portssvc.ServiceContainer{
		User:       suite.mockUserService,
		Token:      suite.mockTokenService,
		Business:   suite.mockBusinessService,
		Accountant: suite.mockAccountantService,
		Dashboard:  suite.mockDashboardService,
	}

	registry := prometheus.NewRegistry()
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, handlers.Platform{
		Metrics:  metrics.New(registry, "test"),
		Gatherer: registry,
	})
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockUserService.AssertExpectations(suite.T())
	suite.mockTokenService.AssertExpectations(suite.T())
	suite.mockBusinessService.AssertExpectations(suite.T())
	suite.mockAccountantService.AssertExpectations(suite.T())
	suite.mockDashboardService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, _, err := utils.GenerateJWT(userID, string(role), testJWTSecret, time.Hour, "test-issuer")
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, url, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func testUser(id string, role domain.UserRole) *domain.User {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:           id,
		Email:        id + "@example.com",
		PasswordHash: "$2a$10$hash",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(now),
	}
}

func testBusiness(id, ownerID string) *domain.Business {
	return &domain.Business{
		ID:           id,
		OwnerID:      ownerID,
		CompanyName:  "Acme Ltd",
		BusinessType: domain.BusinessTypeLimitedCompany,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)),
	}
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestMetricsEndpoint() {
	suite.do(http.MethodGet, "/health", "", nil)
	w := suite.do(http.MethodGet, "/metrics", "", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestSwaggerDisabledInProduction() {
	w := suite.do(http.MethodGet, "/swagger/index.html", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	user := testUser("user-1", domain.RoleClient)
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	suite.mockUserService.On("Authenticate", mock.Anything, "user-1@example.com", "correct-horse").Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", expiresAt, nil).Once()

	w := suite.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "user-1@example.com", Password: "correct-horse"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.True(expiresAt.Equal(resp.ExpiresAt))
	suite.Equal("user-1", resp.User.ID)
	suite.NotContains(w.Body.String(), "hash")
}

func (suite *HandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockUserService.On("Authenticate", mock.Anything, "user-1@example.com", "wrong").
		Return(nil, apperrors.NewUnauthorizedError("invalid email or password")).Once()

	w := suite.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "user-1@example.com", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("invalid email or password", suite.errorBody(w))
	suite.mockTokenService.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_MalformedBody() {
	w := suite.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "not-an-email"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.True(strings.HasPrefix(suite.errorBody(w), "Invalid request format"))
	suite.mockUserService.AssertNotCalled(suite.T(), "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRegister_Created() {
	req := dto.RegisterRequest{Email: "new@example.com", Password: "long-enough-pw", FirstName: "New", LastName: "Person"}
	user := testUser("user-2", domain.RoleClient)

	suite.mockUserService.On("Register", mock.Anything, req).Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", time.Now().Add(time.Hour), nil).Once()

	w := suite.do(http.MethodPost, "/api/auth/register", "", req)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestRegister_DuplicateEmail() {
	req := dto.RegisterRequest{Email: "taken@example.com", Password: "long-enough-pw", FirstName: "A", LastName: "B"}
	suite.mockUserService.On("Register", mock.Anything, req).
		Return(nil, apperrors.NewDuplicateError("email taken@example.com is already registered")).Once()

	w := suite.do(http.MethodPost, "/api/auth/register", "", req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("email taken@example.com is already registered", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestProtectedRoute_RequiresToken() {
	w := suite.do(http.MethodGet, "/api/businesses", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodGet, "/api/businesses", "not-a-jwt", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	suite.mockBusinessService.AssertNotCalled(suite.T(), "ListBusinesses", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListBusinesses_EmptyIsArray() {
	token := suite.generateTestToken("user-1", domain.RoleClient)
	suite.mockBusinessService.On("ListBusinesses", mock.AnythingOfType("*context.valueCtx"), "user-1").Return([]domain.Business{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/businesses", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetBusiness_ErrorMapping() {
	token := suite.generateTestToken("user-1", domain.RoleClient)

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", apperrors.NewNotFoundError("business", "biz-1"), http.StatusNotFound, "business biz-1 not found"},
		{"forbidden", apperrors.NewForbiddenError("no access to business biz-1"), http.StatusForbidden, "no access to business biz-1"},
		{"bare sentinel", apperrors.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"internal", errors.New("connection reset by peer"), http.StatusInternalServerError, "Failed to retrieve business"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockBusinessService.On("GetBusinessByID", mock.Anything, "biz-1", "user-1").Return(nil, tc.err).Once()

			w := suite.do(http.MethodGet, "/api/businesses/biz-1", token, nil)

			suite.Equal(tc.wantStatus, w.Code)
			suite.Equal(tc.wantMsg, suite.errorBody(w))
		})
	}
}

func (suite *HandlerTestSuite) TestGetBusiness_Success() {
	token := suite.generateTestToken("acct-1", domain.RoleAccountant)
	suite.mockBusinessService.On("GetBusinessByID", mock.Anything, "biz-1", "acct-1").Return(testBusiness("biz-1", "user-1"), nil).Once()

	w := suite.do(http.MethodGet, "/api/businesses/biz-1", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BusinessResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("biz-1", resp.ID)
	suite.Equal("user-1", resp.OwnerID)
	suite.Equal(1, resp.Version)
}

func (suite *HandlerTestSuite) TestUpdateBusiness_VersionConflict() {
	token := suite.generateTestToken("user-1", domain.RoleClient)
	name := "Renamed Ltd"
	version := 1

	suite.mockBusinessService.On("UpdateBusiness", mock.Anything, "biz-1",
		mock.MatchedBy(func(r dto.UpdateBusinessRequest) bool {
			return r.Version != nil && *r.Version == 1 && r.CompanyName != nil && *r.CompanyName == name
		}), "user-1").
		Return(nil, apperrors.NewConflictError("business", "biz-1", 1, 2)).Once()

	w := suite.do(http.MethodPut, "/api/businesses/biz-1", token, dto.UpdateBusinessRequest{CompanyName: &name, Version: &version})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorBody(w), "expected version 1, found 2")
}

func (suite *HandlerTestSuite) TestCreateBusiness_InvalidBusinessType() {
	token := suite.generateTestToken("user-1", domain.RoleClient)

	w := suite.do(http.MethodPost, "/api/businesses", token, map[string]string{"companyName": "Acme", "businessType": "charity"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBusinessService.AssertNotCalled(suite.T(), "CreateBusiness", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDashboardStats() {
	token := suite.generateTestToken("user-1", domain.RoleClient)
	stats := &domain.DashboardStats{
		BusinessID:        "biz-1",
		Year:              2024,
		Revenue:           decimal.RequireFromString("1500"),
		Expenses:          decimal.RequireFromString("2000.5"),
		Profit:            decimal.RequireFromString("-500.5"),
		VATDue:            decimal.RequireFromString("300"),
		PendingVATReturns: 1,
	}
	suite.mockDashboardService.On("ComputeDashboardStats", mock.Anything, "biz-1", 2024, "user-1").Return(stats, nil).Once()

	w := suite.do(http.MethodGet, "/api/dashboard/stats?businessId=biz-1&year=2024", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{
		"businessId": "biz-1",
		"year": 2024,
		"revenue": "1500.00",
		"expenses": "2000.50",
		"profit": "-500.50",
		"vatDue": "300.00",
		"pendingVatReturns": 1
	}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestDashboardStats_DefaultsToCurrentYear() {
	token := suite.generateTestToken("user-1", domain.RoleClient)
	year := time.Now().UTC().Year()
	suite.mockDashboardService.On("ComputeDashboardStats", mock.Anything, "biz-1", year, "user-1").
		Return(&domain.DashboardStats{BusinessID: "biz-1", Year: year}, nil).Once()

	w := suite.do(http.MethodGet, "/api/dashboard/stats?businessId=biz-1", token, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestDashboardStats_MissingBusinessID() {
	token := suite.generateTestToken("user-1", domain.RoleClient)

	w := suite.do(http.MethodGet, "/api/dashboard/stats", token, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDashboardService.AssertNotCalled(suite.T(), "ComputeDashboardStats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestExportTransactions() {
	token := suite.generateTestToken("user-1", domain.RoleClient)
	content := []byte("PK\x03\x04workbook")
	suite.mockDashboardService.On("ExportTransactions", mock.Anything, "biz-1", 2023, "user-1").Return(content, nil).Once()

	w := suite.do(http.MethodGet, "/api/businesses/biz-1/transactions/export?year=2023", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="transactions-2023.xlsx"`, w.Header().Get("Content-Disposition"))
	suite.Equal(content, w.Body.Bytes())
}

func (suite *HandlerTestSuite) TestListMyClients_NotAccountant() {
	token := suite.generateTestToken("user-1", domain.RoleClient)
	suite.mockAccountantService.On("ListMyClients", mock.Anything, "user-1").
		Return(nil, apperrors.NewForbiddenError("only accountants can list clients")).Once()

	w := suite.do(http.MethodGet, "/api/accountant/clients", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestListMyClients() {
	token := suite.generateTestToken("acct-1", domain.RoleAccountant)
	suite.mockAccountantService.On("ListMyClients", mock.Anything, "acct-1").
		Return([]domain.User{*testUser("client-b", domain.RoleClient), *testUser("client-a", domain.RoleClient)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/accountant/clients", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("client-b", resp[0].ID)
	suite.Equal("client-a", resp[1].ID)
}

func (suite *HandlerTestSuite) TestAssignAccountant() {
	token := suite.generateTestToken("user-1", domain.RoleClient)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	grant := &domain.AccountantClient{
		ID: "grant-1", AccountantID: "acct-1", ClientID: "user-1", BusinessID: "biz-1",
		HasAccess: true, CreatedAt: now, UpdatedAt: now,
	}
	suite.mockAccountantService.On("AssignAccountant", mock.Anything, "biz-1", dto.AssignAccountantRequest{AccountantID: "acct-1"}, "user-1").
		Return(grant, nil).Once()

	w := suite.do(http.MethodPost, "/api/businesses/biz-1/accountants", token, dto.AssignAccountantRequest{AccountantID: "acct-1"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GrantResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.HasAccess)
	suite.Equal("grant-1", resp.ID)
}

func (suite *HandlerTestSuite) TestRevokeAccountant() {
	token := suite.generateTestToken("user-1", domain.RoleClient)
	suite.mockAccountantService.On("RevokeAccountant", mock.Anything, "biz-1", "acct-1", "user-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/businesses/biz-1/accountants/acct-1", token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
}

func (suite *HandlerTestSuite) TestRevokeAccountant_NoGrant() {
	token := suite.generateTestToken("user-1", domain.RoleClient)
	suite.mockAccountantService.On("RevokeAccountant", mock.Anything, "biz-1", "acct-9", "user-1").
		Return(apperrors.NewNotFoundError("grant", fmt.Sprintf("%s/%s", "acct-9", "biz-1"))).Once()

	w := suite.do(http.MethodDelete, "/api/businesses/biz-1/accountants/acct-9", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestAcceptInvitation_Expired() {
	token := suite.generateTestToken("user-1", domain.RoleClient)
	suite.mockAccountantService.On("AcceptInvitation", mock.Anything, "tok-1", dto.AcceptInvitationRequest{BusinessID: "biz-1"}, "user-1").
		Return(nil, apperrors.NewValidationFailedError("invitation has expired")).Once()

	w := suite.do(http.MethodPost, "/api/invitations/tok-1/accept", token, dto.AcceptInvitationRequest{BusinessID: "biz-1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("invitation has expired", suite.errorBody(w))
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

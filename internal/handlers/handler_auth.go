package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/middleware"
	"github.com/SscSPs/taxbooks_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles login and registration.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	metrics      *metrics.Metrics
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, m *metrics.Metrics) *authHandler {
	return &authHandler{userService: us, tokenService: ts, metrics: m}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate limited per client IP.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, m *metrics.Metrics, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(services.User, services.Token, m)

	auth := rg.Group("/auth")
	{
		if loginLimiter != nil {
			auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
		} else {
			auth.POST("/login", h.login)
		}
		auth.POST("/register", h.register)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user by email and password and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.RecordAuthAttempt("login", "failure")
		respondWithError(c, err, "Failed to log in")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		h.metrics.RecordAuthAttempt("login", "failure")
		respondWithError(c, err, "Failed to generate token")
		return
	}

	h.metrics.RecordAuthAttempt("login", "success")
	logger.Info("User logged in", slog.String("user_id", user.ID))
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)})
}

// register godoc
// @Summary Register new user
// @Description Creates a client or accountant account and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		h.metrics.RecordAuthAttempt("register", "failure")
		respondWithError(c, err, "Failed to register user")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, err, "Failed to generate token")
		return
	}

	h.metrics.RecordAuthAttempt("register", "success")
	logger.Info("User registered", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)})
}

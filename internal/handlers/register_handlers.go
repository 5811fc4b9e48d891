package handlers

import (
	"net/http"

	"github.com/SscSPs/taxbooks_app/cmd/docs"
	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/middleware"
	"github.com/SscSPs/taxbooks_app/internal/platform/config"
	"github.com/SscSPs/taxbooks_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Platform carries the cross-cutting collaborators routes need besides the services.
type Platform struct {
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	// LoginLimiter throttles POST /api/auth/login; nil disables throttling.
	LoginLimiter *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	platform Platform,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if platform.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(platform.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	registerAuthRoutes(api, services, platform.Metrics, platform.LoginLimiter)

	setupProtectedRoutes(api, cfg, services, platform.Metrics)

	setupSwaggerRoutes(r, cfg)
}

// setupProtectedRoutes applies AuthMiddleware and delegates to specific entity route registrations.
func setupProtectedRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) {
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(protected, services.User)
	registerBusinessRoutes(protected, services.Business, m)
	registerDocumentRoutes(protected, services.Document, m)
	registerTransactionRoutes(protected, services.Transaction, services.Dashboard, m)
	registerInvoiceRoutes(protected, services.Invoice, m)
	registerVatReturnRoutes(protected, services.VatReturn, m)
	registerAccountantRoutes(protected, services.Accountant, m)
	registerActivityRoutes(protected, services.Activity)
	registerDashboardRoutes(protected, services.Dashboard)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/middleware"
	"github.com/SscSPs/taxbooks_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
	metrics         *metrics.Metrics
}

func newBusinessHandler(bs portssvc.BusinessSvcFacade, m *metrics.Metrics) *businessHandler {
	return &businessHandler{businessService: bs, metrics: m}
}

func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade, m *metrics.Metrics) {
	h := newBusinessHandler(businessService, m)

	businesses := rg.Group("/businesses")
	{
		businesses.GET("", h.listBusinesses)
		businesses.POST("", h.createBusiness)
		businesses.GET("/:businessId", h.getBusiness)
		businesses.PUT("/:businessId", h.updateBusiness)
	}
}

// listBusinesses godoc
// @Summary List businesses visible to the caller
// @Description Clients see the businesses they own; accountants see the ones they have been granted.
// @Tags businesses
// @Produce json
// @Success 200 {array} dto.BusinessResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [get]
func (h *businessHandler) listBusinesses(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list businesses")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessResponses(businesses))
}

// createBusiness godoc
// @Summary Create a business owned by the caller
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create business")
		return
	}

	h.metrics.RecordOperation("business", "create")
	logger.Info("Business created", slog.String("business_id", business.ID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// getBusiness godoc
// @Summary Get a business
// @Tags businesses
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessId} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	business, err := h.businessService.GetBusinessByID(c.Request.Context(), c.Param("businessId"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve business")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// updateBusiness godoc
// @Summary Update a business
// @Description Only the owner (or an admin) may update. Send "version" to guard against concurrent edits.
// @Tags businesses
// @Accept json
// @Produce json
// @Param businessId path string true "Business ID"
// @Param business body dto.UpdateBusinessRequest true "Business changes"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessId} [put]
func (h *businessHandler) updateBusiness(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	business, err := h.businessService.UpdateBusiness(c.Request.Context(), c.Param("businessId"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update business")
		return
	}

	h.metrics.RecordOperation("business", "update")
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

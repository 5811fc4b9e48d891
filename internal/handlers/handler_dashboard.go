package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard/stats", h.getStats)
}

// getStats godoc
// @Summary Dashboard statistics for a business
// @Description Revenue, expenses and profit for a UTC calendar year, plus outstanding VAT.
// @Tags dashboard
// @Produce json
// @Param businessId query string true "Business ID"
// @Param year query int false "Calendar year (UTC), defaults to the current year"
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.DashboardStatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	stats, err := h.dashboardService.ComputeDashboardStats(c.Request.Context(), params.BusinessID, yearOrCurrent(params.Year), userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute dashboard stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

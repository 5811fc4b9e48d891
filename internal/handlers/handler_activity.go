package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := &activityHandler{activityService: activityService}
	rg.GET("/activity-logs", h.listActivityLogs)
}

// listActivityLogs godoc
// @Summary List activity logs
// @Description With businessId returns that business's log, otherwise the caller's own actions.
// @Tags activity
// @Produce json
// @Param businessId query string false "Business ID"
// @Success 200 {array} dto.ActivityLogResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-logs [get]
func (h *activityHandler) listActivityLogs(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListActivityLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	logs, err := h.activityService.ListActivityLogs(c.Request.Context(), userID, params.BusinessID)
	if err != nil {
		respondWithError(c, err, "Failed to list activity logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityLogResponses(logs))
}

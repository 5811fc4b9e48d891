package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

type vatReturnHandler struct {
	vatReturnService portssvc.VatReturnSvcFacade
	metrics          *metrics.Metrics
}

func newVatReturnHandler(vs portssvc.VatReturnSvcFacade, m *metrics.Metrics) *vatReturnHandler {
	return &vatReturnHandler{vatReturnService: vs, metrics: m}
}

func registerVatReturnRoutes(rg *gin.RouterGroup, vatReturnService portssvc.VatReturnSvcFacade, m *metrics.Metrics) {
	h := newVatReturnHandler(vatReturnService, m)

	scoped := rg.Group("/businesses/:businessId/vat-returns")
	{
		scoped.GET("", h.listVatReturns)
		scoped.POST("", h.createVatReturn)
	}

	vatReturns := rg.Group("/vat-returns")
	{
		vatReturns.GET("/:id", h.getVatReturn)
		vatReturns.PUT("/:id", h.updateVatReturn)
	}
}

// listVatReturns godoc
// @Summary List a business's VAT returns
// @Tags vat-returns
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {array} dto.VatReturnResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessId}/vat-returns [get]
func (h *vatReturnHandler) listVatReturns(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	returns, err := h.vatReturnService.ListVatReturnsByBusiness(c.Request.Context(), c.Param("businessId"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list VAT returns")
		return
	}
	c.JSON(http.StatusOK, dto.ToVatReturnResponses(returns))
}

// createVatReturn godoc
// @Summary Prepare a VAT return
// @Tags vat-returns
// @Accept json
// @Produce json
// @Param businessId path string true "Business ID"
// @Param vatReturn body dto.CreateVatReturnRequest true "VAT return"
// @Success 201 {object} dto.VatReturnResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessId}/vat-returns [post]
func (h *vatReturnHandler) createVatReturn(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateVatReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	vr, err := h.vatReturnService.CreateVatReturn(c.Request.Context(), c.Param("businessId"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create VAT return")
		return
	}

	h.metrics.RecordOperation("vat_return", "create")
	c.JSON(http.StatusCreated, dto.ToVatReturnResponse(vr))
}

// getVatReturn godoc
// @Summary Get a VAT return
// @Tags vat-returns
// @Produce json
// @Param id path string true "VAT return ID"
// @Success 200 {object} dto.VatReturnResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vat-returns/{id} [get]
func (h *vatReturnHandler) getVatReturn(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vr, err := h.vatReturnService.GetVatReturnByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve VAT return")
		return
	}
	c.JSON(http.StatusOK, dto.ToVatReturnResponse(vr))
}

// updateVatReturn godoc
// @Summary Update a VAT return
// @Description Moving to approved stamps the approver; moving to submitted stamps the submission time.
// @Tags vat-returns
// @Accept json
// @Produce json
// @Param id path string true "VAT return ID"
// @Param vatReturn body dto.UpdateVatReturnRequest true "VAT return changes"
// @Success 200 {object} dto.VatReturnResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /vat-returns/{id} [put]
func (h *vatReturnHandler) updateVatReturn(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateVatReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	vr, err := h.vatReturnService.UpdateVatReturn(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update VAT return")
		return
	}

	h.metrics.RecordOperation("vat_return", "update")
	c.JSON(http.StatusOK, dto.ToVatReturnResponse(vr))
}

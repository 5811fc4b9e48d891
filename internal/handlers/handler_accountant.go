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

// accountantHandler serves the accountant/client relationship routes.
type accountantHandler struct {
	accountantService portssvc.AccountantSvcFacade
	metrics           *metrics.Metrics
}

func newAccountantHandler(as portssvc.AccountantSvcFacade, m *metrics.Metrics) *accountantHandler {
	return &accountantHandler{accountantService: as, metrics: m}
}

func registerAccountantRoutes(rg *gin.RouterGroup, accountantService portssvc.AccountantSvcFacade, m *metrics.Metrics) {
	h := newAccountantHandler(accountantService, m)

	accountant := rg.Group("/accountant")
	{
		accountant.GET("/clients", h.listClients)
		accountant.POST("/invite-client", h.inviteClient)
	}

	rg.GET("/client/accountants", h.listAccountants)

	grants := rg.Group("/businesses/:businessId/accountants")
	{
		grants.POST("", h.assignAccountant)
		grants.DELETE("/:accountantId", h.revokeAccountant)
	}

	rg.POST("/invitations/:token/accept", h.acceptInvitation)
}

// listClients godoc
// @Summary List the accountant's clients
// @Description Distinct clients with at least one active grant, in the order they were first granted.
// @Tags accountant
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} ErrorResponse "Caller is not an accountant"
// @Security BearerAuth
// @Router /accountant/clients [get]
func (h *accountantHandler) listClients(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	clients, err := h.accountantService.ListMyClients(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(clients))
}

// listAccountants godoc
// @Summary List the caller's accountants
// @Tags client
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /client/accountants [get]
func (h *accountantHandler) listAccountants(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	accountants, err := h.accountantService.AccountantsOf(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list accountants")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(accountants))
}

// inviteClient godoc
// @Summary Invite a prospective client
// @Tags accountant
// @Accept json
// @Produce json
// @Param invitation body dto.InviteClientRequest true "Client email"
// @Success 201 {object} dto.InvitationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not an accountant"
// @Security BearerAuth
// @Router /accountant/invite-client [post]
func (h *accountantHandler) inviteClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.InviteClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	invitation, err := h.accountantService.InviteClient(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to invite client")
		return
	}

	h.metrics.RecordOperation("client_invitation", "create")
	logger.Info("Client invited", slog.String("invitation_id", invitation.ID))
	c.JSON(http.StatusCreated, dto.ToInvitationResponse(invitation))
}

// assignAccountant godoc
// @Summary Grant an accountant access to a business
// @Description Idempotent: re-assigning re-enables a revoked grant.
// @Tags client
// @Accept json
// @Produce json
// @Param businessId path string true "Business ID"
// @Param grant body dto.AssignAccountantRequest true "Accountant"
// @Success 200 {object} dto.GrantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessId}/accountants [post]
func (h *accountantHandler) assignAccountant(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.AssignAccountantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	grant, err := h.accountantService.AssignAccountant(c.Request.Context(), c.Param("businessId"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to assign accountant")
		return
	}

	h.metrics.RecordOperation("grant", "assign")
	c.JSON(http.StatusOK, dto.ToGrantResponse(grant))
}

// revokeAccountant godoc
// @Summary Revoke an accountant's access to a business
// @Tags client
// @Param businessId path string true "Business ID"
// @Param accountantId path string true "Accountant user ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No grant exists"
// @Security BearerAuth
// @Router /businesses/{businessId}/accountants/{accountantId} [delete]
func (h *accountantHandler) revokeAccountant(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	err := h.accountantService.RevokeAccountant(c.Request.Context(), c.Param("businessId"), c.Param("accountantId"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to revoke accountant")
		return
	}

	h.metrics.RecordOperation("grant", "revoke")
	c.Status(http.StatusNoContent)
}

// acceptInvitation godoc
// @Summary Accept an accountant's invitation
// @Description Grants the inviting accountant access to one of the caller's businesses.
// @Tags client
// @Accept json
// @Produce json
// @Param token path string true "Invitation token"
// @Param accept body dto.AcceptInvitationRequest true "Business to share"
// @Success 200 {object} dto.GrantResponse
// @Failure 400 {object} ErrorResponse "Expired or already used"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invitations/{token}/accept [post]
func (h *accountantHandler) acceptInvitation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	grant, err := h.accountantService.AcceptInvitation(c.Request.Context(), c.Param("token"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to accept invitation")
		return
	}

	h.metrics.RecordOperation("client_invitation", "accept")
	c.JSON(http.StatusOK, dto.ToGrantResponse(grant))
}

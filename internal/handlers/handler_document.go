package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
	metrics         *metrics.Metrics
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade, m *metrics.Metrics) *documentHandler {
	return &documentHandler{documentService: ds, metrics: m}
}

func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, m *metrics.Metrics) {
	h := newDocumentHandler(documentService, m)

	scoped := rg.Group("/businesses/:businessId/documents")
	{
		scoped.GET("", h.listDocuments)
		scoped.POST("", h.createDocument)
	}

	documents := rg.Group("/documents")
	{
		documents.GET("", h.listDocumentsByStatus)
		documents.GET("/:id", h.getDocument)
		documents.PUT("/:id", h.updateDocument)
	}
}

// listDocuments godoc
// @Summary List a business's documents
// @Tags documents
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {array} dto.DocumentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessId}/documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	docs, err := h.documentService.ListDocumentsByBusiness(c.Request.Context(), c.Param("businessId"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponses(docs))
}

// createDocument godoc
// @Summary Register an uploaded document
// @Tags documents
// @Accept json
// @Produce json
// @Param businessId path string true "Business ID"
// @Param document body dto.CreateDocumentRequest true "Document metadata"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessId}/documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), c.Param("businessId"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create document")
		return
	}

	h.metrics.RecordOperation("document", "create")
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// listDocumentsByStatus godoc
// @Summary List documents in a status across the caller's businesses
// @Tags documents
// @Produce json
// @Param status query string true "Document status"
// @Success 200 {array} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocumentsByStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	docs, err := h.documentService.ListDocumentsByStatus(c.Request.Context(), params.Status, userID)
	if err != nil {
		respondWithError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponses(docs))
}

// getDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	doc, err := h.documentService.GetDocumentByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// updateDocument godoc
// @Summary Update a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param document body dto.UpdateDocumentRequest true "Document changes"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update document")
		return
	}

	h.metrics.RecordOperation("document", "update")
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/taxbooks_app/internal/core/ports/services"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/SscSPs/taxbooks_app/internal/middleware"
	"github.com/SscSPs/taxbooks_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	dashboardService   portssvc.DashboardSvcFacade
	metrics            *metrics.Metrics
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, ds portssvc.DashboardSvcFacade, m *metrics.Metrics) *transactionHandler {
	return &transactionHandler{transactionService: ts, dashboardService: ds, metrics: m}
}

func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, ds portssvc.DashboardSvcFacade, m *metrics.Metrics) {
	h := newTransactionHandler(ts, ds, m)

	scoped := rg.Group("/businesses/:businessId/transactions")
	{
		scoped.GET("", h.listTransactions)
		scoped.POST("", h.createTransaction)
		scoped.GET("/export", h.exportTransactions)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
	}
}

// yearOrCurrent defaults an omitted year to the current UTC year.
func yearOrCurrent(year int) int {
	if year == 0 {
		return time.Now().UTC().Year()
	}
	return year
}

// listTransactions godoc
// @Summary List a business's transactions
// @Tags transactions
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessId}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txns, err := h.transactionService.ListTransactionsByBusiness(c.Request.Context(), c.Param("businessId"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// createTransaction godoc
// @Summary Record an income or expense
// @Description Net amount defaults to amount minus VAT when omitted.
// @Tags transactions
// @Accept json
// @Produce json
// @Param businessId path string true "Business ID"
// @Param transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessId}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), c.Param("businessId"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create transaction")
		return
	}

	h.metrics.RecordOperation("transaction", "create")
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// exportTransactions godoc
// @Summary Export a year's transactions as a spreadsheet
// @Tags transactions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param businessId path string true "Business ID"
// @Param year query int false "Calendar year (UTC), defaults to the current year"
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessId}/transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.YearParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}
	year := yearOrCurrent(params.Year)
	businessID := c.Param("businessId")

	content, err := h.dashboardService.ExportTransactions(c.Request.Context(), businessID, year, userID)
	if err != nil {
		respondWithError(c, err, "Failed to export transactions")
		return
	}

	logger.Info("Transactions exported", slog.String("business_id", businessID), slog.Int("year", year), slog.Int("bytes", len(content)))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions-%d.xlsx"`, year))
	c.Data(http.StatusOK, xlsxContentType, content)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Transaction changes"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update transaction")
		return
	}

	h.metrics.RecordOperation("transaction", "update")
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

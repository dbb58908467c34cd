package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneytrack/money_tracker_app/internal/apperrors"
	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	portssvc "github.com/moneytrack/money_tracker_app/internal/core/ports/services"
	"github.com/moneytrack/money_tracker_app/internal/dto"
	"github.com/moneytrack/money_tracker_app/internal/middleware"
)

// transactionHandler handles HTTP requests related to the ledger.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/grouped", h.listGrouped)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Appends a transaction to the ledger and applies its delta to the account balance
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response "Invalid amount or transaction type"
// @Failure 404 {object} dto.Response "Account not found"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}

	txn, err := h.ledgerService.Record(c.Request.Context(),
		req.AccountID,
		domain.TransactionType(req.TransactionType),
		req.Amount,
		req.Note,
	)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrInvalidType):
			logger.Warn("Validation error recording transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.Fail("Account not found"))
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, dto.Fail("Concurrent update conflict, please retry"))
		default:
			logger.Error("Failed to record transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Failed to record transaction"))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToTransactionResponse(txn)))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves the ledger newest first, paginated
// @Tags transactions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(50)
// @Success 200 {object} dto.TransactionListResponse
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for listTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters: "+err.Error()))
		return
	}

	txns, total, err := h.ledgerService.ListTransactions(c.Request.Context(), params.Page, params.PerPage)
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to list transactions"))
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Success:    true,
		Data:       dto.ToTransactionListResponse(txns),
		Pagination: dto.NewPagination(params.Page, params.PerPage, total),
	})
}

// listGrouped godoc
// @Summary List transactions grouped by date
// @Description Retrieves the full ledger bucketed by calendar date, newest date first
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.DayGroupResponse}
// @Router /transactions/grouped [get]
func (h *transactionHandler) listGrouped(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groups, err := h.ledgerService.ListGroupedByDate(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list grouped transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to list transactions"))
		return
	}

	res := make([]dto.DayGroupResponse, len(groups))
	for i, g := range groups {
		res[i] = dto.ToDayGroupResponse(g)
	}
	c.JSON(http.StatusOK, dto.OK(res))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moneytrack/money_tracker_app/internal/apperrors"
	portssvc "github.com/moneytrack/money_tracker_app/internal/core/ports/services"
	"github.com/moneytrack/money_tracker_app/internal/dto"
	"github.com/moneytrack/money_tracker_app/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id/balance", h.updateBalance)
	}
}

func parseAccountID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid account id"))
		return 0, false
	}
	return id, true
}

// listAccounts godoc
// @Summary List all accounts
// @Description Retrieves all accounts with their current balances
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.AccountResponse}
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to list accounts"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListAccountResponse(accounts)))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details for a specific account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.Response{data=dto.AccountResponse}
// @Failure 404 {object} dto.Response "Account not found"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail("Account not found"))
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
			c.JSON(http.StatusInternalServerError, dto.Fail("Failed to retrieve account"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

// updateBalance godoc
// @Summary Override an account balance
// @Description Sets an account balance to an absolute value, bypassing the ledger. Intended for corrections.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param balance body dto.UpdateBalanceRequest true "New balance"
// @Success 200 {object} dto.Response{data=dto.AccountResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 404 {object} dto.Response "Account not found"
// @Router /accounts/{id}/balance [put]
func (h *accountHandler) updateBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}

	account, err := h.accountService.OverrideBalance(c.Request.Context(), accountID, req.Balance)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail("Account not found"))
		} else {
			logger.Error("Failed to override balance in service", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
			c.JSON(http.StatusInternalServerError, dto.Fail("Failed to update balance"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

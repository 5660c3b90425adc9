package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/retailware/cashbox_backend/internal/middleware"
)

const defaultTxnPageLimit = 20

// cashBoxHandler handles HTTP requests for the authenticated user's till.
type cashBoxHandler struct {
	cashBoxService portssvc.CashBoxSvcFacade
}

func newCashBoxHandler(cs portssvc.CashBoxSvcFacade) *cashBoxHandler {
	return &cashBoxHandler{cashBoxService: cs}
}

// registerCashBoxRoutes registers routes related to the personal cash box.
func registerCashBoxRoutes(rg *gin.RouterGroup, cashBoxService portssvc.CashBoxSvcFacade) {
	h := newCashBoxHandler(cashBoxService)

	box := rg.Group("/cash-box")
	{
		box.POST("/open", h.openCashBox)
		box.POST("/close", h.closeCashBox)
		box.GET("", h.getCashBox)
		box.GET("/transactions", h.listTransactions)
		box.GET("/transactions/range", h.getTransactionsByDateRange)
	}
}

// openCashBox godoc
// @Summary Open a cash box for the current shift
// @Description Opens the user's till with an optional opening balance
// @Tags cash-box
// @Accept  json
// @Produce  json
// @Param   box body dto.OpenCashBoxRequest true "Opening details"
// @Success 201 {object} dto.CashBoxResponse
// @Failure 409 {object} map[string]string "User already has an open cash box"
// @Security BearerAuth
// @Router /cash-box/open [post]
func (h *cashBoxHandler) openCashBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.OpenCashBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenCashBox", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	box, err := h.cashBoxService.OpenCashBox(c.Request.Context(), userID, req.OpeningBalance)
	if err != nil {
		respondError(c, logger, err, "Failed to open cash box")
		return
	}

	logger.Info("Cash box opened", slog.String("cash_box_id", box.CashBoxID))
	c.JSON(http.StatusCreated, dto.ToCashBoxResponse(box))
}

// closeCashBox godoc
// @Summary Close the user's open cash box
// @Tags cash-box
// @Produce  json
// @Success 200 {object} dto.CashBoxResponse
// @Failure 409 {object} map[string]string "No open cash box"
// @Security BearerAuth
// @Router /cash-box/close [post]
func (h *cashBoxHandler) closeCashBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	box, err := h.cashBoxService.CloseCashBox(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to close cash box")
		return
	}

	logger.Info("Cash box closed", slog.String("cash_box_id", box.CashBoxID), slog.String("closing_balance", box.Balance.String()))
	c.JSON(http.StatusOK, dto.ToCashBoxResponse(box))
}

// getCashBox godoc
// @Summary Get the user's open cash box
// @Tags cash-box
// @Produce  json
// @Success 200 {object} dto.CashBoxResponse
// @Failure 404 {object} map[string]string "No open cash box"
// @Security BearerAuth
// @Router /cash-box [get]
func (h *cashBoxHandler) getCashBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	box, err := h.cashBoxService.GetUserCashBox(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve cash box")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashBoxResponse(box))
}

// listTransactions godoc
// @Summary List ledger entries of the user's open cash box
// @Tags cash-box
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListCashBoxTransactionsResponse
// @Security BearerAuth
// @Router /cash-box/transactions [get]
func (h *cashBoxHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, nextToken := parsePageParams(c)

	txns, newToken, err := h.cashBoxService.ListTransactions(c.Request.Context(), userID, limit, nextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListCashBoxTransactionsResponse{
		Transactions: dto.ToCashBoxTransactionResponses(txns),
		NextToken:    newToken,
	})
}

// getTransactionsByDateRange godoc
// @Summary List ledger entries of the user's open cash box within a date range
// @Tags cash-box
// @Produce  json
// @Param   from query string true "Range start (RFC3339)"
// @Param   to query string true "Range end (RFC3339)"
// @Success 200 {array} dto.CashBoxTransactionResponse
// @Security BearerAuth
// @Router /cash-box/transactions/range [get]
func (h *cashBoxHandler) getTransactionsByDateRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		logger.Warn("Invalid date range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txns, err := h.cashBoxService.GetTransactionsByDateRange(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashBoxTransactionResponses(txns))
}

// parsePageParams reads limit/nextToken query parameters with defaults.
func parsePageParams(c *gin.Context) (int, *string) {
	limit := defaultTxnPageLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	var nextToken *string
	if raw := c.Query("nextToken"); raw != "" {
		nextToken = &raw
	}
	return limit, nextToken
}

// parseDateRange reads the from/to query parameters as RFC3339 timestamps.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

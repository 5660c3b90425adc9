package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/retailware/cashbox_backend/internal/middleware"
)

// moneyBoxHandler handles HTTP requests for named money boxes.
type moneyBoxHandler struct {
	moneyBoxService portssvc.MoneyBoxSvcFacade
}

func newMoneyBoxHandler(ms portssvc.MoneyBoxSvcFacade) *moneyBoxHandler {
	return &moneyBoxHandler{moneyBoxService: ms}
}

// registerMoneyBoxRoutes registers routes related to money boxes.
func registerMoneyBoxRoutes(rg *gin.RouterGroup, moneyBoxService portssvc.MoneyBoxSvcFacade) {
	h := newMoneyBoxHandler(moneyBoxService)

	boxes := rg.Group("/money-boxes")
	{
		boxes.POST("", h.createMoneyBox)
		boxes.GET("", h.listMoneyBoxes)
		boxes.POST("/transfer", h.transfer)
		boxes.GET("/:id", h.getMoneyBox)
		boxes.PUT("/:id", h.updateMoneyBox)
		boxes.DELETE("/:id", h.deleteMoneyBox)
		boxes.POST("/:id/transactions", h.addTransaction)
		boxes.GET("/:id/transactions", h.listTransactions)
		boxes.GET("/:id/transactions/range", h.getTransactionsByDateRange)
	}
}

// createMoneyBox godoc
// @Summary Create a money box
// @Description Creates a named fund pool, optionally seeded with an opening balance
// @Tags money-boxes
// @Accept  json
// @Produce  json
// @Param   box body dto.CreateMoneyBoxRequest true "Money box details"
// @Success 201 {object} dto.MoneyBoxResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Name already taken"
// @Security BearerAuth
// @Router /money-boxes [post]
func (h *moneyBoxHandler) createMoneyBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMoneyBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMoneyBox", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	box, err := h.moneyBoxService.CreateMoneyBox(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create money box")
		return
	}

	logger.Info("Money box created", slog.String("money_box_id", box.MoneyBoxID), slog.String("name", box.Name))
	c.JSON(http.StatusCreated, dto.ToMoneyBoxResponse(box))
}

// listMoneyBoxes godoc
// @Summary List all money boxes
// @Tags money-boxes
// @Produce  json
// @Success 200 {object} dto.ListMoneyBoxesResponse
// @Security BearerAuth
// @Router /money-boxes [get]
func (h *moneyBoxHandler) listMoneyBoxes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	boxes, err := h.moneyBoxService.ListMoneyBoxes(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list money boxes")
		return
	}

	responses := make([]dto.MoneyBoxResponse, len(boxes))
	for i := range boxes {
		responses[i] = dto.ToMoneyBoxResponse(&boxes[i])
	}
	c.JSON(http.StatusOK, dto.ListMoneyBoxesResponse{MoneyBoxes: responses})
}

// getMoneyBox godoc
// @Summary Get a money box by ID
// @Tags money-boxes
// @Produce  json
// @Param   id path string true "Money box ID"
// @Success 200 {object} dto.MoneyBoxResponse
// @Failure 404 {object} map[string]string "Money box not found"
// @Security BearerAuth
// @Router /money-boxes/{id} [get]
func (h *moneyBoxHandler) getMoneyBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	box, err := h.moneyBoxService.GetMoneyBoxByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve money box")
		return
	}

	c.JSON(http.StatusOK, dto.ToMoneyBoxResponse(box))
}

// updateMoneyBox godoc
// @Summary Update a money box's name or notes
// @Tags money-boxes
// @Accept  json
// @Produce  json
// @Param   id path string true "Money box ID"
// @Param   box body dto.UpdateMoneyBoxRequest true "Fields to update"
// @Success 200 {object} dto.MoneyBoxResponse
// @Failure 404 {object} map[string]string "Money box not found"
// @Security BearerAuth
// @Router /money-boxes/{id} [put]
func (h *moneyBoxHandler) updateMoneyBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateMoneyBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMoneyBox", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	box, err := h.moneyBoxService.UpdateMoneyBox(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update money box")
		return
	}

	c.JSON(http.StatusOK, dto.ToMoneyBoxResponse(box))
}

// deleteMoneyBox godoc
// @Summary Delete a money box with no ledger history
// @Tags money-boxes
// @Produce  json
// @Param   id path string true "Money box ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Money box not found"
// @Failure 409 {object} map[string]string "Money box has transactions"
// @Security BearerAuth
// @Router /money-boxes/{id} [delete]
func (h *moneyBoxHandler) deleteMoneyBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.moneyBoxService.DeleteMoneyBox(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete money box")
		return
	}

	c.Status(http.StatusNoContent)
}

// addTransaction godoc
// @Summary Post a manual deposit or withdrawal
// @Tags money-boxes
// @Accept  json
// @Produce  json
// @Param   id path string true "Money box ID"
// @Param   transaction body dto.BoxTransactionRequest true "Transaction details"
// @Success 200 {object} dto.MoneyBoxTransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount or type"
// @Failure 422 {object} dto.InsufficientBalanceResponse "Insufficient balance"
// @Security BearerAuth
// @Router /money-boxes/{id}/transactions [post]
func (h *moneyBoxHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BoxTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BoxTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.moneyBoxService.ManualTransaction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post transaction")
		return
	}

	logger.Info("Manual money box transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
	)
	c.JSON(http.StatusOK, dto.ToMoneyBoxTransactionResponse(txn))
}

// transfer godoc
// @Summary Transfer funds between two money boxes
// @Description Atomically posts a transfer_out on the source and a transfer_in on the destination
// @Tags money-boxes
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} map[string]dto.MoneyBoxTransactionResponse
// @Failure 400 {object} map[string]string "Invalid transfer"
// @Failure 422 {object} dto.InsufficientBalanceResponse "Insufficient balance"
// @Security BearerAuth
// @Router /money-boxes/transfer [post]
func (h *moneyBoxHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	out, in, err := h.moneyBoxService.TransferBetweenBoxes(c.Request.Context(), req.FromBoxID, req.ToBoxID, req.Amount, req.Notes, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to transfer between boxes")
		return
	}

	logger.Info("Transfer completed",
		slog.String("from_box_id", req.FromBoxID),
		slog.String("to_box_id", req.ToBoxID),
		slog.String("amount", req.Amount.String()),
	)
	c.JSON(http.StatusOK, gin.H{
		"out": dto.ToMoneyBoxTransactionResponse(out),
		"in":  dto.ToMoneyBoxTransactionResponse(in),
	})
}

// listTransactions godoc
// @Summary List ledger entries of a money box
// @Tags money-boxes
// @Produce  json
// @Param   id path string true "Money box ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListMoneyBoxTransactionsResponse
// @Security BearerAuth
// @Router /money-boxes/{id}/transactions [get]
func (h *moneyBoxHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, nextToken := parsePageParams(c)

	txns, newToken, err := h.moneyBoxService.ListTransactions(c.Request.Context(), c.Param("id"), limit, nextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListMoneyBoxTransactionsResponse{
		Transactions: dto.ToMoneyBoxTransactionResponses(txns),
		NextToken:    newToken,
	})
}

// getTransactionsByDateRange godoc
// @Summary List ledger entries of a money box within a date range
// @Tags money-boxes
// @Produce  json
// @Param   id path string true "Money box ID"
// @Param   from query string true "Range start (RFC3339)"
// @Param   to query string true "Range end (RFC3339)"
// @Success 200 {array} dto.MoneyBoxTransactionResponse
// @Security BearerAuth
// @Router /money-boxes/{id}/transactions/range [get]
func (h *moneyBoxHandler) getTransactionsByDateRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parseDateRange(c)
	if err != nil {
		logger.Warn("Invalid date range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txns, err := h.moneyBoxService.GetTransactionsByDateRange(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToMoneyBoxTransactionResponses(txns))
}

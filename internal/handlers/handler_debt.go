package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/retailware/cashbox_backend/internal/middleware"
)

// debtHandler handles HTTP requests related to customer debts.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers routes related to debts.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:id", h.getDebt)
		debts.POST("/:id/repay", h.repayDebt)
	}
}

// createDebt godoc
// @Summary Register a customer debt
// @Description Records the amount owed; no money moves until a repayment is posted
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create debt")
		return
	}

	logger.Info("Debt registered", slog.String("debt_id", debt.DebtID))
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List all debts, unpaid first
// @Tags debts
// @Produce  json
// @Success 200 {array} dto.DebtResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	debts, err := h.debtService.ListDebts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list debts")
		return
	}

	responses := make([]dto.DebtResponse, len(debts))
	for i := range debts {
		responses[i] = dto.ToDebtResponse(&debts[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getDebt godoc
// @Summary Get a debt by ID
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve debt")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// repayDebt godoc
// @Summary Record a repayment against a debt
// @Description Advances the debt status; a cash repayment credits the target box as a customer receipt
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   id path string true "Debt ID"
// @Param   repayment body dto.RepayDebtRequest true "Repayment details"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 409 {object} map[string]string "Debt already fully repaid"
// @Security BearerAuth
// @Router /debts/{id}/repay [post]
func (h *debtHandler) repayDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RepayDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RepayDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.debtService.RepayDebt(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to repay debt")
		return
	}

	logger.Info("Debt repayment recorded", slog.String("debt_id", debt.DebtID), slog.String("status", string(debt.Status)))
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

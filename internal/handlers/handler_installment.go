package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/retailware/cashbox_backend/internal/middleware"
)

// installmentHandler handles HTTP requests related to installments.
type installmentHandler struct {
	installmentService portssvc.InstallmentSvcFacade
}

func newInstallmentHandler(is portssvc.InstallmentSvcFacade) *installmentHandler {
	return &installmentHandler{installmentService: is}
}

// registerInstallmentRoutes registers routes related to installments.
func registerInstallmentRoutes(rg *gin.RouterGroup, installmentService portssvc.InstallmentSvcFacade) {
	h := newInstallmentHandler(installmentService)

	installments := rg.Group("/installments")
	{
		installments.POST("", h.createInstallment)
		installments.GET("", h.listInstallments)
		installments.GET("/:id", h.getInstallment)
		installments.POST("/:id/payment", h.payInstallment)
	}
}

// createInstallment godoc
// @Summary Schedule an installment for a sale
// @Tags installments
// @Accept  json
// @Produce  json
// @Param   installment body dto.CreateInstallmentRequest true "Installment details"
// @Success 201 {object} dto.InstallmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /installments [post]
func (h *installmentHandler) createInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInstallment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	inst, err := h.installmentService.CreateInstallment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create installment")
		return
	}

	logger.Info("Installment scheduled", slog.String("installment_id", inst.InstallmentID))
	c.JSON(http.StatusCreated, dto.ToInstallmentResponse(inst))
}

// listInstallments godoc
// @Summary List all installments ordered by due date
// @Tags installments
// @Produce  json
// @Success 200 {array} dto.InstallmentResponse
// @Security BearerAuth
// @Router /installments [get]
func (h *installmentHandler) listInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	insts, err := h.installmentService.ListInstallments(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list installments")
		return
	}

	responses := make([]dto.InstallmentResponse, len(insts))
	for i := range insts {
		responses[i] = dto.ToInstallmentResponse(&insts[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getInstallment godoc
// @Summary Get an installment by ID
// @Tags installments
// @Produce  json
// @Param   id path string true "Installment ID"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 404 {object} map[string]string "Installment not found"
// @Security BearerAuth
// @Router /installments/{id} [get]
func (h *installmentHandler) getInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	inst, err := h.installmentService.GetInstallmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve installment")
		return
	}

	c.JSON(http.StatusOK, dto.ToInstallmentResponse(inst))
}

// payInstallment godoc
// @Summary Record a payment against an installment
// @Description Advances the installment status; a cash payment credits the target box as a customer receipt
// @Tags installments
// @Accept  json
// @Produce  json
// @Param   id path string true "Installment ID"
// @Param   payment body dto.PayInstallmentRequest true "Payment details"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Installment not found"
// @Failure 409 {object} map[string]string "Installment already fully paid"
// @Security BearerAuth
// @Router /installments/{id}/payment [post]
func (h *installmentHandler) payInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PayInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayInstallment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	inst, err := h.installmentService.PayInstallment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to pay installment")
		return
	}

	logger.Info("Installment payment recorded", slog.String("installment_id", inst.InstallmentID), slog.String("status", string(inst.Status)))
	c.JSON(http.StatusOK, dto.ToInstallmentResponse(inst))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/retailware/cashbox_backend/internal/middleware"
)

// purchaseHandler handles HTTP requests related to supplier purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers routes related to purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("/:id", h.getPurchase)
		purchases.POST("/:id/returns", h.processReturn)
	}
}

// createPurchase godoc
// @Summary Record a supplier purchase
// @Description Persists the purchase; a cash payment debits the target box. If the box cannot cover the payment the purchase is rolled back and the shortfall returned
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 422 {object} dto.InsufficientBalanceResponse "Insufficient balance"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create purchase")
		return
	}

	logger.Info("Purchase recorded", slog.String("purchase_id", purchase.PurchaseID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// getPurchase godoc
// @Summary Get a purchase by ID
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string "Purchase not found"
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve purchase")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// processReturn godoc
// @Summary Process a return to a supplier
// @Description Records the return; a cash refund credits the box the purchase was paid from
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Param   return body dto.CreatePurchaseReturnRequest true "Return details"
// @Success 201 {object} dto.PurchaseReturnResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Security BearerAuth
// @Router /purchases/{id}/returns [post]
func (h *purchaseHandler) processReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PurchaseReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ret, err := h.purchaseService.ProcessPurchaseReturn(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to process purchase return")
		return
	}

	logger.Info("Purchase return processed", slog.String("return_id", ret.ReturnID))
	c.JSON(http.StatusCreated, dto.ToPurchaseReturnResponse(ret))
}

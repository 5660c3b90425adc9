package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/retailware/cashbox_backend/internal/middleware"
)

// receiptHandler handles standalone customer receipts and supplier payments.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers routes for both receipt kinds.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	customer := rg.Group("/customer-receipts")
	{
		customer.POST("", h.createCustomerReceipt)
		customer.GET("/:id", h.getCustomerReceipt)
	}

	supplier := rg.Group("/supplier-payment-receipts")
	{
		supplier.POST("", h.createSupplierPayment)
		supplier.GET("/:id", h.getSupplierPayment)
	}
}

// createCustomerReceipt godoc
// @Summary Record money collected from a customer
// @Description Persists the receipt; a cash payment credits the target box
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receipt body dto.CreateCustomerReceiptRequest true "Receipt details"
// @Success 201 {object} dto.CustomerReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /customer-receipts [post]
func (h *receiptHandler) createCustomerReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCustomerReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CustomerReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	receipt, err := h.receiptService.CreateCustomerReceipt(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create customer receipt")
		return
	}

	logger.Info("Customer receipt recorded", slog.String("receipt_id", receipt.ReceiptID))
	c.JSON(http.StatusCreated, dto.ToCustomerReceiptResponse(receipt))
}

// getCustomerReceipt godoc
// @Summary Get a customer receipt by ID
// @Tags receipts
// @Produce  json
// @Param   id path string true "Receipt ID"
// @Success 200 {object} dto.CustomerReceiptResponse
// @Failure 404 {object} map[string]string "Receipt not found"
// @Security BearerAuth
// @Router /customer-receipts/{id} [get]
func (h *receiptHandler) getCustomerReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receipt, err := h.receiptService.GetCustomerReceiptByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve receipt")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerReceiptResponse(receipt))
}

// createSupplierPayment godoc
// @Summary Record money paid out to a supplier
// @Description Persists the payment receipt; a cash payment debits the target box
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receipt body dto.CreateSupplierPaymentRequest true "Payment details"
// @Success 201 {object} dto.SupplierPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /supplier-payment-receipts [post]
func (h *receiptHandler) createSupplierPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSupplierPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SupplierPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	receipt, err := h.receiptService.CreateSupplierPayment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create supplier payment")
		return
	}

	logger.Info("Supplier payment recorded", slog.String("receipt_id", receipt.ReceiptID))
	c.JSON(http.StatusCreated, dto.ToSupplierPaymentResponse(receipt))
}

// getSupplierPayment godoc
// @Summary Get a supplier payment receipt by ID
// @Tags receipts
// @Produce  json
// @Param   id path string true "Receipt ID"
// @Success 200 {object} dto.SupplierPaymentResponse
// @Failure 404 {object} map[string]string "Receipt not found"
// @Security BearerAuth
// @Router /supplier-payment-receipts/{id} [get]
func (h *receiptHandler) getSupplierPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receipt, err := h.receiptService.GetSupplierPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve receipt")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierPaymentResponse(receipt))
}

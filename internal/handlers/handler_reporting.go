package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/retailware/cashbox_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for ledger reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/cash-flow", h.getCashFlowSummary)
	}
}

// getCashFlowSummary godoc
// @Summary Aggregate fund movement over both ledgers for a date range
// @Tags reports
// @Produce  json
// @Param   from query string true "Range start (RFC3339)"
// @Param   to query string true "Range end (RFC3339)"
// @Success 200 {object} dto.CashFlowSummaryResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlowSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parseDateRange(c)
	if err != nil {
		logger.Warn("Invalid date range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.reportingService.GetCashFlowSummary(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build cash flow summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowSummaryResponse(summary))
}

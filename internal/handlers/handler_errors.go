package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/dto"
)

// respondError maps service errors onto HTTP responses. An
// InsufficientBalanceError gets the structured wire shape clients key on;
// everything else follows the sentinel taxonomy.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var insufficientErr *apperrors.InsufficientBalanceError
	if errors.As(err, &insufficientErr) {
		logger.Warn("Posting refused on balance", slog.String("box", insufficientErr.BoxName))
		c.JSON(http.StatusUnprocessableEntity, dto.ToInsufficientBalanceResponse(insufficientErr))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoOpenCashBox):
		logger.Warn("No open cash box", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

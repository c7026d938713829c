package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError maps service errors to HTTP responses. Sentinel
// errors carry their own status; everything else is a 500 with a generic
// message so internals never leak to the client.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting state", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotInitialized):
		logger.Warn("Balance not initialized", slog.String("action", action))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "company balance not initialized"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("action", action))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.As(err, &appErr):
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
	default:
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

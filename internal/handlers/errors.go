package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dh467/coindesk/internal/apperrors"
	"github.com/dh467/coindesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the structured error body returned for every failure.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	// Errors carries per-field messages for validation failures.
	Errors []string `json:"errors,omitempty"`
}

// Fixed user-facing messages. Upstream and internal failures never leak
// details to the caller.
const (
	msgEmptyFeed       = "No currency information available from CoinGecko."
	msgFeedParse       = "Failed to parse CoinGecko data."
	msgFeedUnavailable = "Failed to retrieve data from external API."
	msgNoTracked       = "Currency mapping table is empty. Please add currencies to proceed."
	msgInternal        = "Unexpected error occurred. Please try again later."
	msgInvalidInput    = "Invalid input"
)

// respondError is the single boundary translator: it pattern-matches the
// error taxonomy into an HTTP status and a structured body. It is stateless
// and carries no business logic.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var bindErr *bindError
	var validationErr *validationError
	switch {
	case errors.As(err, &bindErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Status: http.StatusBadRequest, Message: bindErr.message})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Status: http.StatusBadRequest, Message: msgInvalidInput, Errors: validationErr.fields})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Status: http.StatusBadRequest, Message: msgInvalidInput, Errors: []string{validationDetail(err)}})
	case errors.Is(err, apperrors.ErrNoTrackedCurrencies):
		c.JSON(http.StatusNotFound, ErrorResponse{Status: http.StatusNotFound, Message: msgNoTracked})
	case errors.Is(err, apperrors.ErrEmptyFeed):
		c.JSON(http.StatusNotFound, ErrorResponse{Status: http.StatusNotFound, Message: msgEmptyFeed})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Status: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Status: http.StatusConflict, Message: err.Error()})
	case errors.Is(err, apperrors.ErrFeedParse):
		logger.Error("Failed to parse feed response", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Status: http.StatusBadGateway, Message: msgFeedParse})
	case errors.Is(err, apperrors.ErrFeedUnavailable):
		logger.Error("Feed request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Status: http.StatusBadGateway, Message: msgFeedUnavailable})
	default:
		logger.Error("Unhandled error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Status: http.StatusInternalServerError, Message: msgInternal})
	}
}

// validationDetail strips the sentinel prefix from a wrapped validation
// error, leaving the per-field message (e.g. "displayName is required").
func validationDetail(err error) string {
	return strings.TrimPrefix(err.Error(), apperrors.ErrValidation.Error()+": ")
}

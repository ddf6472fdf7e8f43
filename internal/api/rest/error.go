package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/mythicforge/hero-forge/internal/api/shared/errors"
	"github.com/mythicforge/hero-forge/internal/domain"
	"github.com/mythicforge/hero-forge/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code apierrors.ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: apierrors.APIError{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.ErrCodeBadRequest, message, details...)
}

// respondValidationError sends a 422 Unprocessable Entity response
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusUnprocessableEntity, apierrors.ErrCodeValidationFailed, "Validation failed", details)
}

// respondDomainError maps a domain error onto its HTTP status: budget and
// trait failures are 422, unknown resources 404, uniqueness and exhaustion
// conflicts 409, failures of external collaborators 502, everything else
// 500.
func respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrBudgetMismatch),
		errors.Is(err, domain.ErrBudgetExceeded),
		errors.Is(err, domain.ErrUnknownTrait):
		respondWithError(c, http.StatusUnprocessableEntity, apierrors.ErrCodeValidationFailed, message, err.Error())

	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrCharacterNotFound),
		errors.Is(err, domain.ErrTokenNameNotFound),
		errors.Is(err, domain.ErrTokenNotRevealed):
		respondWithError(c, http.StatusNotFound, apierrors.ErrCodeNotFound, message, err.Error())

	case errors.Is(err, domain.ErrTokenAlreadyRevealed),
		errors.Is(err, domain.ErrTokenAlreadyCustomized),
		errors.Is(err, domain.ErrPoolExhausted):
		respondWithError(c, http.StatusConflict, apierrors.ErrCodeConflict, message, err.Error())

	case errors.Is(err, domain.ErrRenderFailed),
		errors.Is(err, domain.ErrUploadFailed),
		errors.Is(err, domain.ErrChainUpdateFailed):
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusBadGateway, apierrors.ErrCodeUpstreamError, message, err.Error())

	default:
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, apierrors.ErrCodeInternalError, message)
	}
}

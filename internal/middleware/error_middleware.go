package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avaldez/inscripciones/internal/app/models/dto"
	"github.com/avaldez/inscripciones/internal/pkg/apperrors"
	"github.com/avaldez/inscripciones/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Known constraint
// violations on the write path are client errors; anything unrecognized is a
// generic internal error, logged server-side and never allowed to crash the
// process.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeMissingParameter, errorMessage(err, "Bad request"))))
	case errors.Is(err, apperrors.ErrSubjectNotInPlan):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeConstraintViolation, errorMessage(err, "Subject does not belong to the given program and year"))))
	case errors.Is(err, apperrors.ErrRegistrationRejected):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeConstraintViolation, errorMessage(err, "Submission rejected by a storage constraint"))))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errorMessage(err, "Resource not found"))))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeConflict, errorMessage(err, "Conflict"))))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error in request")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// errorMessage prefers the CustomError message when one is attached
func errorMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}

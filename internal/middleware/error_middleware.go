package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HandleAPIError writes the error response matching err. Unrecognized
// errors become a 500 carrying the generic internal error message.
func HandleAPIError(c *gin.Context, err error) {
	HandleAPIErrorWithMessage(c, err, "Internal server error")
}

// HandleAPIErrorWithMessage is HandleAPIError with the message used when err
// is not a known application error.
func HandleAPIErrorWithMessage(c *gin.Context, err error, internalMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageFor(err, "Resource not found"))))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrWebhookUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid webhook secret")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, messageFor(err, "Bad request"))))
	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Username already exists")))
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg(internalMessage)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, internalMessage)))
	}
}

// messageFor returns the CustomError message in err, capitalized, or def.
func messageFor(err error, def string) string {
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return strings.ToUpper(ce.Message[:1]) + ce.Message[1:]
	}
	return def
}

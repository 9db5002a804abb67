package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	"github.com/sa-023/ticketing-project-rest-23/internal/services"
)

// DefaultFallbackMessage is returned for failures the boundary layer has no
// operation-specific message for.
const DefaultFallbackMessage = "Action failed: An error occurred!"

// RespondWithError sends an error envelope
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Failure(message, statusCode))
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, message)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, message)
}

// HandleServiceError translates a service-layer error into the envelope.
// Business-rule violations map to 404/409; anything else is an
// infrastructure failure answered with the operation's fallback message.
func HandleServiceError(c *gin.Context, err error, fallback string) {
	var conflict *services.ConflictError

	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		NotFound(c, err.Error())
	case errors.As(err, &conflict):
		Conflict(c, conflict.Reason)
	case errors.Is(err, services.ErrInvalidCredentials):
		Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrRoleNotFound),
		errors.Is(err, services.ErrTaskStatusRequired),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrPasswordMismatch):
		BadRequest(c, err.Error())
	default:
		if fallback == "" {
			fallback = DefaultFallbackMessage
		}
		RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}

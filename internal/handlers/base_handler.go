package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/profile-service/internal/services"
	"github.com/SAP-F-2025/profile-service/internal/utils"
	"github.com/SAP-F-2025/profile-service/internal/validator"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Message string                     `json:"message"`
	Details string                     `json:"details,omitempty"`
	Errors  validator.ValidationErrors `json:"errors,omitempty"`
}

// BaseHandler carries shared behavior for all handlers.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs an inbound request with the request-scoped logger.
func (h BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.LoggerFromContext(c, h.logger).Info(msg, args...)
}

// LogError logs a handler failure with the request-scoped logger.
func (h BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err)
	utils.LoggerFromContext(c, h.logger).Error(msg, args...)
}

// handleServiceError maps service errors onto HTTP responses.
func (h BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Errors:  validationErrs,
		})
	case errors.Is(err, services.ErrEmailExists):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Email already registered",
		})
	case errors.Is(err, services.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "User not found",
		})
	default:
		h.LogError(c, err, "Unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}

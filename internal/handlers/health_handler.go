package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/profile-service/internal/models"
	"github.com/SAP-F-2025/profile-service/internal/services"
	"github.com/SAP-F-2025/profile-service/internal/utils"
)

type HealthHandler struct {
	BaseHandler
	service services.HealthService
}

func NewHealthHandler(service services.HealthService, logger utils.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Root is the liveness/info endpoint
// @Summary Service info
// @Produce json
// @Success 200 {object} models.ServiceInfoResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceInfoResponse{
		Service:  "profile-service",
		Message:  "Welcome to the Profile API",
		Database: "PostgreSQL",
	})
}

// Check reports storage reachability plus a live user row count
// @Summary Health check
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} ErrorResponse "Storage unreachable"
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	health, err := h.service.Check(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "Health check failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Message: "Storage unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, health)
}

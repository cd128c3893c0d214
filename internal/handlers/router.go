package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/profile-service/internal/services"
	"github.com/SAP-F-2025/profile-service/internal/utils"
)

type HandlerManager struct {
	profileHandler *ProfileHandler
	healthHandler  *HealthHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		profileHandler: NewProfileHandler(serviceManager.Profile(), serviceManager.Export(), logger),
		healthHandler:  NewHealthHandler(serviceManager.Health(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Liveness and health endpoints
	router.GET("/", hm.healthHandler.Root)
	router.GET("/health", hm.healthHandler.Check)

	// Profile routes
	profiles := router.Group("/profiles")
	{
		profiles.POST("/", hm.profileHandler.CreateProfile)
		profiles.GET("/", hm.profileHandler.ListProfiles)
		profiles.GET("/export", hm.profileHandler.ExportProfiles)

		profiles.GET("/:user_id", hm.profileHandler.GetProfile)
		profiles.PUT("/:user_id", hm.profileHandler.UpdateProfile)
		profiles.DELETE("/:user_id", hm.profileHandler.DeleteProfile)

		profiles.PATCH("/:user_id/increment-test", hm.profileHandler.IncrementTestCount)
		profiles.PATCH("/:user_id/update-score", hm.profileHandler.UpdateScore)
	}
}

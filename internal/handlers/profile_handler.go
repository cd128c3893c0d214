package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/profile-service/internal/models"
	"github.com/SAP-F-2025/profile-service/internal/repositories"
	"github.com/SAP-F-2025/profile-service/internal/services"
	"github.com/SAP-F-2025/profile-service/internal/utils"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type ProfileHandler struct {
	BaseHandler
	service       services.ProfileService
	exportService services.ExportService
}

func NewProfileHandler(service services.ProfileService, exportService services.ExportService, logger utils.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:   NewBaseHandler(logger),
		service:       service,
		exportService: exportService,
	}
}

// CreateProfile creates a new user profile
// @Summary Create profile
// @Tags profiles
// @Accept json
// @Produce json
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse "Validation error or duplicate email"
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req services.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating profile", "email", req.Email)

	user, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListProfiles lists profiles with optional filtering
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Param user_type query string false "Filter by user type (student, professor, teacher)"
// @Param skip query int false "Records to skip (default: 0)"
// @Param limit query int false "Page size (default: 100, max: 1000)"
// @Success 200 {array} models.User
// @Failure 400 {object} ErrorResponse "Bad filter"
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	h.LogRequest(c, "Listing profiles")

	filters, ok := h.parseProfileFilters(c)
	if !ok {
		return
	}

	users, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if users == nil {
		users = []*models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetProfile fetches one profile by identifier
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /profiles/{user_id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := h.parseUserID(c)
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update
// @Summary Update profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /profiles/{user_id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := h.parseUserID(c)
	if !ok {
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating profile", "user_id", id)

	user, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteProfile deletes a profile and its education rows
// @Summary Delete profile
// @Tags profiles
// @Param user_id path int true "User ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /profiles/{user_id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, ok := h.parseUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Deleting profile", "user_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// IncrementTestCount increments the profile's test counter by one
// @Summary Increment test count
// @Tags profiles
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /profiles/{user_id}/increment-test [patch]
func (h *ProfileHandler) IncrementTestCount(c *gin.Context) {
	id, ok := h.parseUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Incrementing test count", "user_id", id)

	user, err := h.service.IncrementTestCount(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateScore sets the profile's score from the new_score query parameter
// @Summary Update score
// @Tags profiles
// @Produce json
// @Param user_id path int true "User ID"
// @Param new_score query number true "New score in [0,100]"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Score out of range"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /profiles/{user_id}/update-score [patch]
func (h *ProfileHandler) UpdateScore(c *gin.Context) {
	id, ok := h.parseUserID(c)
	if !ok {
		return
	}

	scoreStr := c.Query("new_score")
	if scoreStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Query parameter 'new_score' is required",
		})
		return
	}

	newScore, err := strconv.ParseFloat(scoreStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Query parameter 'new_score' must be a number",
		})
		return
	}

	h.LogRequest(c, "Updating score", "user_id", id, "new_score", newScore)

	user, err := h.service.UpdateScore(c.Request.Context(), id, newScore)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ExportProfiles downloads the profile list as an xlsx workbook
// @Summary Export profiles
// @Tags profiles
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param user_type query string false "Filter by user type"
// @Success 200 {file} binary
// @Router /profiles/export [get]
func (h *ProfileHandler) ExportProfiles(c *gin.Context) {
	h.LogRequest(c, "Exporting profiles")

	filters, ok := h.parseProfileFilters(c)
	if !ok {
		return
	}
	// Export covers the full filtered set, not a page
	filters.Skip = 0
	filters.Limit = 0

	buf, err := h.exportService.ExportProfiles(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("profiles-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ===== HELPER METHODS =====

func (h *ProfileHandler) parseUserID(c *gin.Context) (uint, bool) {
	idStr := c.Param("user_id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "User ID must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func (h *ProfileHandler) parseProfileFilters(c *gin.Context) (repositories.ProfileFilters, bool) {
	filters := repositories.ProfileFilters{
		Limit: defaultListLimit,
	}

	if typeStr := c.Query("user_type"); typeStr != "" {
		userType := models.UserType(typeStr)
		if !userType.Valid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "user_type must be one of: student, professor, teacher",
			})
			return filters, false
		}
		filters.UserType = &userType
	}

	if skipStr := c.Query("skip"); skipStr != "" {
		skip, err := strconv.Atoi(skipStr)
		if err != nil || skip < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "skip must be a non-negative integer",
			})
			return filters, false
		}
		filters.Skip = skip
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxListLimit {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "limit must be between 1 and 1000",
			})
			return filters, false
		}
		filters.Limit = limit
	}

	return filters, true
}

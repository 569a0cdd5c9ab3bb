package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CareerPath-2025/recommendation-service/internal/services"
	"github.com/CareerPath-2025/recommendation-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	service services.DashboardService
}

func NewDashboardHandler(service services.DashboardService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ===== DASHBOARD ENDPOINTS =====

// GetDashboardStats returns overall dashboard statistics
// @Summary Get dashboard statistics
// @Description Get opportunity inventory counts and recommendation quality metrics
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} services.DashboardStatsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	h.LogRequest(c, "Getting dashboard stats")

	stats, err := h.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetTopMissingSkills returns the most common skill gaps
// @Summary Get top missing skills
// @Description Get the skills that most often block students, ranked by frequency
// @Tags dashboard
// @Accept json
// @Produce json
// @Param limit query int false "Number of skills to return (default: 10, max: 50)"
// @Success 200 {array} services.MissingSkillResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard/missing-skills [get]
func (h *DashboardHandler) GetTopMissingSkills(c *gin.Context) {
	h.LogRequest(c, "Getting top missing skills")

	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	skills, err := h.service.GetTopMissingSkills(c.Request.Context(), limit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

// GetTargetRoleDistribution returns the distribution of analyzed roles
// @Summary Get target role distribution
// @Description Get how many students target each role, with percentages
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {array} services.RoleDistributionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard/role-distribution [get]
func (h *DashboardHandler) GetTargetRoleDistribution(c *gin.Context) {
	h.LogRequest(c, "Getting target role distribution")

	distribution, err := h.service.GetTargetRoleDistribution(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, distribution)
}

// GetRecentRecommendations returns recent generation activity
// @Summary Get recent recommendations
// @Description Get the most recently generated project and skill gap records
// @Tags dashboard
// @Accept json
// @Produce json
// @Param limit query int false "Number of records to return (default: 20, max: 50)"
// @Success 200 {array} services.RecentRecommendationResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard/recent [get]
func (h *DashboardHandler) GetRecentRecommendations(c *gin.Context) {
	h.LogRequest(c, "Getting recent recommendations")

	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	recent, err := h.service.GetRecentRecommendations(c.Request.Context(), limit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recent)
}

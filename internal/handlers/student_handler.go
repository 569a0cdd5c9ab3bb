package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CareerPath-2025/recommendation-service/internal/services"
	"github.com/CareerPath-2025/recommendation-service/internal/utils"
)

type StudentHandler struct {
	BaseHandler
	projectService  services.ProjectService
	skillGapService services.SkillGapService
}

func NewStudentHandler(projectService services.ProjectService, skillGapService services.SkillGapService, logger utils.Logger) *StudentHandler {
	return &StudentHandler{
		BaseHandler:     NewBaseHandler(logger),
		projectService:  projectService,
		skillGapService: skillGapService,
	}
}

// ===== STUDENT ENDPOINTS =====

// GetMyProjectRecommendations returns stored project recommendations for the current student
// @Summary Get my project recommendations
// @Description Get the most recently generated project recommendations for the current student
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {array} models.ProjectRecommendation
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students/me/recommendations/projects [get]
func (h *StudentHandler) GetMyProjectRecommendations(c *gin.Context) {
	h.LogRequest(c, "Getting project recommendations for current student")

	studentID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:     "unauthorized",
			Message:   "User not authenticated",
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	recommendations, err := h.projectService.GetByUser(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recommendations)
}

// GetMySkillGaps returns stored skill gap reports for the current student
// @Summary Get my skill gaps
// @Description Get the skill gap analyses previously generated for the current student
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {array} models.SkillGap
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /students/me/skill-gap [get]
func (h *StudentHandler) GetMySkillGaps(c *gin.Context) {
	h.LogRequest(c, "Getting skill gaps for current student")

	studentID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:     "unauthorized",
			Message:   "User not authenticated",
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	gaps, err := h.skillGapService.GetByUser(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gaps)
}

// GetTargetRoles lists the target roles the skill gap analyzer recognizes
// @Summary List recognized target roles
// @Description Get the target roles a skill gap analysis can be generated for
// @Tags students
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /roles [get]
func (h *StudentHandler) GetTargetRoles(c *gin.Context) {
	h.LogRequest(c, "Listing recognized target roles")

	c.JSON(http.StatusOK, gin.H{"roles": h.skillGapService.Roles()})
}

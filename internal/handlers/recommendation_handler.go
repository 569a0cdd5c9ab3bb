package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/services"
	"github.com/CareerPath-2025/recommendation-service/internal/utils"
	"github.com/CareerPath-2025/recommendation-service/internal/validator"
)

type RecommendationHandler struct {
	BaseHandler
	service   services.RecommendationService
	validator *validator.Validator
}

func NewRecommendationHandler(service services.RecommendationService, v *validator.Validator, logger utils.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		validator:   v,
	}
}

// GenerateRecommendations runs one generation pass for a user
// @Summary Generate recommendations
// @Description Generate internship, project or skill gap recommendations for a student profile
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body models.GenerateRecommendationsRequest true "Generation request"
// @Success 200 {object} services.RecommendationsResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /recommendations [post]
func (h *RecommendationHandler) GenerateRecommendations(c *gin.Context) {
	h.LogRequest(c, "Generating recommendations")

	var req models.GenerateRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "invalid_request",
			Message:   "Invalid request body",
			Details:   err.Error(),
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	if verrs := h.validator.GetBusinessValidator().ValidateGenerateRequest(&req); len(verrs) > 0 {
		h.handleServiceError(c, verrs)
		return
	}

	callerID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:     "unauthorized",
			Message:   "User not authenticated",
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	// Students can only generate for themselves; counselors and admins
	// may target another user
	targetID := callerID
	if req.UserID != "" && req.UserID != callerID {
		role, err := GetUserRoleFromContext(c)
		if err != nil || role == models.RoleStudent {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error:     "forbidden",
				Message:   "Students can only generate their own recommendations",
				Timestamp: time.Now().UTC(),
				Path:      c.Request.URL.Path,
			})
			return
		}
		targetID = req.UserID
	}

	response, err := h.service.Generate(c.Request.Context(), targetID, req.Type)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

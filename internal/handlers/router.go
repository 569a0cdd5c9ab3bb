package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/CareerPath-2025/recommendation-service/internal/config"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
	"github.com/CareerPath-2025/recommendation-service/internal/services"
	"github.com/CareerPath-2025/recommendation-service/internal/utils"
	"github.com/CareerPath-2025/recommendation-service/internal/validator"
)

type HandlerManager struct {
	recommendationHandler *RecommendationHandler
	opportunityHandler    *OpportunityHandler
	dashboardHandler      *DashboardHandler
	studentHandler        *StudentHandler
	userHandler           *UserHandler
	authMiddleware        *CasdoorAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
	casdoorConfig config.CasdoorConfig,
	userRepo repositories.UserRepository,
) *HandlerManager {
	authMiddleware := NewCasdoorAuthMiddleware(casdoorConfig, userRepo)

	return &HandlerManager{
		recommendationHandler: NewRecommendationHandler(serviceManager.Recommendation(), validator, logger),
		opportunityHandler:    NewOpportunityHandler(serviceManager.Opportunity(), serviceManager.OpportunityImport(), validator, logger),
		dashboardHandler:      NewDashboardHandler(serviceManager.Dashboard(), logger),
		studentHandler:        NewStudentHandler(serviceManager.Project(), serviceManager.SkillGap(), logger),
		userHandler:           NewUserHandler(userRepo, logger),
		authMiddleware:        authMiddleware,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// API v1 routes with authentication
	v1 := router.Group("/api/v1")
	v1.Use(hm.authMiddleware.AuthMiddleware()) // Apply authentication to all API routes
	{
		// Recommendation generation - all authenticated users
		v1.POST("/recommendations", hm.recommendationHandler.GenerateRecommendations)

		// Target roles the skill gap analyzer recognizes - all authenticated users
		v1.GET("/roles", hm.studentHandler.GetTargetRoles)

		// Opportunity routes
		opportunities := v1.Group("/opportunities")
		{
			// Manage postings - Counselors and Admins only
			opportunities.POST("", hm.authMiddleware.RequireRoleMiddleware(models.RoleCounselor, models.RoleAdmin), hm.opportunityHandler.CreateOpportunity)
			opportunities.PUT("/:id/status", hm.authMiddleware.RequireRoleMiddleware(models.RoleCounselor, models.RoleAdmin), hm.opportunityHandler.UpdateOpportunityStatus)
			opportunities.POST("/import", hm.authMiddleware.RequireRoleMiddleware(models.RoleCounselor, models.RoleAdmin), hm.opportunityHandler.ImportOpportunities)

			// View postings - All authenticated users
			opportunities.GET("", hm.opportunityHandler.ListOpportunities)
			opportunities.GET("/:id", hm.opportunityHandler.GetOpportunity)
		}

		// Dashboard routes - Counselors and Admins only
		dashboard := v1.Group("/dashboard")
		dashboard.Use(hm.authMiddleware.RequireRoleMiddleware(models.RoleCounselor, models.RoleAdmin))
		{
			dashboard.GET("/stats", hm.dashboardHandler.GetDashboardStats)
			dashboard.GET("/missing-skills", hm.dashboardHandler.GetTopMissingSkills)
			dashboard.GET("/role-distribution", hm.dashboardHandler.GetTargetRoleDistribution)
			dashboard.GET("/recent", hm.dashboardHandler.GetRecentRecommendations)
		}

		// Student routes - Students only
		students := v1.Group("/students")
		students.Use(hm.authMiddleware.RequireRoleMiddleware(models.RoleStudent))
		{
			students.GET("/me/recommendations/projects", hm.studentHandler.GetMyProjectRecommendations)
			students.GET("/me/skill-gap", hm.studentHandler.GetMySkillGaps)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", hm.userHandler.ListUsers)
			users.GET("/search", hm.userHandler.SearchUsers)
			users.GET("/:id", hm.userHandler.GetUser)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "recommendation-service",
		})
	})
}

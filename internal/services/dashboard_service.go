package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
)

// ===== RESPONSE DTOs =====

type DashboardStatsResponse struct {
	Overview DashboardOverview `json:"overview"`
	Metrics  DashboardMetrics  `json:"metrics"`
}

type DashboardOverview struct {
	TotalOpportunities          int64 `json:"total_opportunities"`
	ActiveOpportunities         int64 `json:"active_opportunities"`
	TotalProjectRecommendations int64 `json:"total_project_recommendations"`
	TotalSkillGaps              int64 `json:"total_skill_gaps"`
	StudentsWithRecommendations int64 `json:"students_with_recommendations"`
}

type DashboardMetrics struct {
	AverageMatchPercentage float64 `json:"average_match_percentage"`
	AverageProjectScore    float64 `json:"average_project_score"`
}

type MissingSkillResponse struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

type RoleDistributionResponse struct {
	TargetRole string  `json:"target_role"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type RecentRecommendationResponse struct {
	UserID     string    `json:"user_id"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Score      int       `json:"score"`
	OccurredAt time.Time `json:"occurred_at"`
	TimeAgo    string    `json:"time_ago"`
}

// ===== SERVICE INTERFACE =====

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStatsResponse, error)
	GetTopMissingSkills(ctx context.Context, limit int) ([]MissingSkillResponse, error)
	GetTargetRoleDistribution(ctx context.Context) ([]RoleDistributionResponse, error)
	GetRecentRecommendations(ctx context.Context, limit int) ([]RecentRecommendationResponse, error)
}

// ===== SERVICE IMPLEMENTATION =====

type dashboardService struct {
	repo   repositories.Repository
	db     *gorm.DB
	logger *slog.Logger
}

func NewDashboardService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*DashboardStatsResponse, error) {
	s.logger.Info("Getting dashboard stats")

	totalOpportunities, err := s.repo.Dashboard().GetTotalOpportunities(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get total opportunities: %w", err)
	}

	activeOpportunities, err := s.repo.Dashboard().GetActiveOpportunities(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get active opportunities: %w", err)
	}

	totalProjects, err := s.repo.Dashboard().GetTotalProjectRecommendations(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get total project recommendations: %w", err)
	}

	totalSkillGaps, err := s.repo.Dashboard().GetTotalSkillGaps(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get total skill gaps: %w", err)
	}

	studentsWithRecs, err := s.repo.Dashboard().GetStudentsWithRecommendations(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get students with recommendations: %w", err)
	}

	avgMatch, err := s.repo.Dashboard().GetAverageMatchPercentage(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get average match percentage: %w", err)
	}

	avgProjectScore, err := s.repo.Dashboard().GetAverageProjectScore(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get average project score: %w", err)
	}

	return &DashboardStatsResponse{
		Overview: DashboardOverview{
			TotalOpportunities:          totalOpportunities,
			ActiveOpportunities:         activeOpportunities,
			TotalProjectRecommendations: totalProjects,
			TotalSkillGaps:              totalSkillGaps,
			StudentsWithRecommendations: studentsWithRecs,
		},
		Metrics: DashboardMetrics{
			AverageMatchPercentage: roundFloat(avgMatch, 1),
			AverageProjectScore:    roundFloat(avgProjectScore, 1),
		},
	}, nil
}

func (s *dashboardService) GetTopMissingSkills(ctx context.Context, limit int) ([]MissingSkillResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	skills, err := s.repo.Dashboard().GetTopMissingSkills(ctx, nil, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top missing skills: %w", err)
	}

	response := make([]MissingSkillResponse, len(skills))
	for i, sk := range skills {
		response[i] = MissingSkillResponse{
			Skill: sk.Skill,
			Count: sk.Count,
		}
	}
	return response, nil
}

func (s *dashboardService) GetTargetRoleDistribution(ctx context.Context) ([]RoleDistributionResponse, error) {
	distribution, err := s.repo.Dashboard().GetTargetRoleDistribution(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get target role distribution: %w", err)
	}

	response := make([]RoleDistributionResponse, len(distribution))
	for i, dist := range distribution {
		response[i] = RoleDistributionResponse{
			TargetRole: dist.TargetRole,
			Count:      dist.Count,
			Percentage: roundFloat(dist.Percentage, 1),
		}
	}
	return response, nil
}

func (s *dashboardService) GetRecentRecommendations(ctx context.Context, limit int) ([]RecentRecommendationResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	recent, err := s.repo.Dashboard().GetRecentRecommendations(ctx, nil, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent recommendations: %w", err)
	}

	response := make([]RecentRecommendationResponse, len(recent))
	for i, rec := range recent {
		response[i] = RecentRecommendationResponse{
			UserID:     rec.UserID,
			Kind:       rec.Kind,
			Title:      rec.Title,
			Score:      rec.Score,
			OccurredAt: rec.OccurredAt,
			TimeAgo:    formatTimeAgo(rec.OccurredAt),
		}
	}
	return response, nil
}

// ===== HELPER FUNCTIONS =====

func roundFloat(val float64, precision int) float64 {
	ratio := 1.0
	for i := 0; i < precision; i++ {
		ratio *= 10
	}
	return float64(int(val*ratio+0.5)) / ratio
}

func formatTimeAgo(t time.Time) string {
	duration := time.Since(t)

	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds ago", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm ago", int(duration.Minutes()))
	case duration < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(duration.Hours()))
	case duration < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(duration.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DashboardRepository interface for recommendation analytics
type DashboardRepository interface {
	// Counters
	GetTotalOpportunities(ctx context.Context, tx *gorm.DB) (int64, error)
	GetActiveOpportunities(ctx context.Context, tx *gorm.DB) (int64, error)
	GetTotalProjectRecommendations(ctx context.Context, tx *gorm.DB) (int64, error)
	GetTotalSkillGaps(ctx context.Context, tx *gorm.DB) (int64, error)
	GetStudentsWithRecommendations(ctx context.Context, tx *gorm.DB) (int64, error)

	// Metrics
	GetAverageMatchPercentage(ctx context.Context, tx *gorm.DB) (float64, error)
	GetAverageProjectScore(ctx context.Context, tx *gorm.DB) (float64, error)

	// Breakdowns
	GetTopMissingSkills(ctx context.Context, tx *gorm.DB, limit int) ([]SkillFrequencyData, error)
	GetTargetRoleDistribution(ctx context.Context, tx *gorm.DB) ([]RoleDistributionData, error)

	// Recent activity
	GetRecentRecommendations(ctx context.Context, tx *gorm.DB, limit int) ([]RecentRecommendationData, error)
}

// Data structures for dashboard responses

type SkillFrequencyData struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

type RoleDistributionData struct {
	TargetRole string  `json:"target_role"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type RecentRecommendationData struct {
	UserID     string    `json:"user_id"`
	Kind       string    `json:"kind"` // "project" or "skill_gap"
	Title      string    `json:"title"`
	Score      int       `json:"score"`
	OccurredAt time.Time `json:"occurred_at"`
}

package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
)

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) repositories.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// ===== COUNTERS =====

func (r *dashboardRepository) GetTotalOpportunities(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.Opportunity{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get total opportunities: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) GetActiveOpportunities(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.Opportunity{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get active opportunities: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) GetTotalProjectRecommendations(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.ProjectRecommendation{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get total project recommendations: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) GetTotalSkillGaps(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.SkillGap{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get total skill gaps: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) GetStudentsWithRecommendations(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.getDB(tx)
	var count int64

	if err := db.WithContext(ctx).
		Model(&models.ProjectRecommendation{}).
		Distinct("user_id").
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get students with recommendations: %w", err)
	}

	return count, nil
}

// ===== METRICS =====

func (r *dashboardRepository) GetAverageMatchPercentage(ctx context.Context, tx *gorm.DB) (float64, error) {
	db := r.getDB(tx)

	var avg *float64
	if err := db.WithContext(ctx).
		Model(&models.SkillGap{}).
		Select("AVG(current_match_percentage)").
		Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("failed to get average match percentage: %w", err)
	}

	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *dashboardRepository) GetAverageProjectScore(ctx context.Context, tx *gorm.DB) (float64, error) {
	db := r.getDB(tx)

	var avg *float64
	if err := db.WithContext(ctx).
		Model(&models.ProjectRecommendation{}).
		Select("AVG(skill_match_score)").
		Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("failed to get average project score: %w", err)
	}

	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// ===== BREAKDOWNS =====

// GetTopMissingSkills unrolls the missing_skills JSONB arrays and counts
// how often each skill blocks a student.
func (r *dashboardRepository) GetTopMissingSkills(ctx context.Context, tx *gorm.DB, limit int) ([]repositories.SkillFrequencyData, error) {
	db := r.getDB(tx)

	if limit <= 0 {
		limit = 10
	}

	var results []repositories.SkillFrequencyData
	err := db.WithContext(ctx).Raw(`
		SELECT skill, COUNT(*) AS count
		FROM skill_gaps, jsonb_array_elements_text(missing_skills) AS skill
		GROUP BY skill
		ORDER BY count DESC, skill
		LIMIT ?`, limit).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top missing skills: %w", err)
	}

	return results, nil
}

func (r *dashboardRepository) GetTargetRoleDistribution(ctx context.Context, tx *gorm.DB) ([]repositories.RoleDistributionData, error) {
	db := r.getDB(tx)

	var total int64
	if err := db.WithContext(ctx).
		Model(&models.SkillGap{}).
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count skill gaps: %w", err)
	}

	type row struct {
		TargetRole string
		Count      int64
	}
	var rows []row
	err := db.WithContext(ctx).
		Model(&models.SkillGap{}).
		Select("target_role, COUNT(*) as count").
		Group("target_role").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get target role distribution: %w", err)
	}

	results := make([]repositories.RoleDistributionData, len(rows))
	for i, r := range rows {
		pct := 0.0
		if total > 0 {
			pct = float64(r.Count) / float64(total) * 100
		}
		results[i] = repositories.RoleDistributionData{
			TargetRole: r.TargetRole,
			Count:      r.Count,
			Percentage: pct,
		}
	}

	return results, nil
}

// ===== RECENT ACTIVITY =====

func (r *dashboardRepository) GetRecentRecommendations(ctx context.Context, tx *gorm.DB, limit int) ([]repositories.RecentRecommendationData, error) {
	db := r.getDB(tx)

	if limit <= 0 {
		limit = 20
	}

	var results []repositories.RecentRecommendationData
	err := db.WithContext(ctx).Raw(`
		SELECT user_id, 'project' AS kind, title, skill_match_score AS score, updated_at AS occurred_at
		FROM project_recommendations
		UNION ALL
		SELECT user_id, 'skill_gap' AS kind, target_role AS title, current_match_percentage AS score, updated_at AS occurred_at
		FROM skill_gaps
		ORDER BY occurred_at DESC
		LIMIT ?`, limit).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent recommendations: %w", err)
	}

	return results, nil
}

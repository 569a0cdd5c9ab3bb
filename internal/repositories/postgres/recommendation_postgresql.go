package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
)

// ===== PROJECT RECOMMENDATIONS =====

type projectRecommendationRepository struct {
	db *gorm.DB
}

func NewProjectRecommendationPostgreSQL(db *gorm.DB) repositories.ProjectRecommendationRepository {
	return &projectRecommendationRepository{db: db}
}

func (r *projectRecommendationRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// UpsertBatch writes recommendations keyed on (user_id, title). A rerun
// for an unchanged profile overwrites scores instead of duplicating rows.
func (r *projectRecommendationRepository) UpsertBatch(ctx context.Context, tx *gorm.DB, recs []*models.ProjectRecommendation) error {
	if len(recs) == 0 {
		return nil
	}
	db := r.getDB(tx)

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "title"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"description", "difficulty", "estimated_duration",
				"tech_stack", "learning_outcomes", "impact_score",
				"skill_match_score", "matching_skills", "updated_at",
			}),
		}).
		Create(recs).Error
	if err != nil {
		return fmt.Errorf("failed to upsert project recommendations: %w", err)
	}

	return nil
}

func (r *projectRecommendationRepository) GetByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*models.ProjectRecommendation, error) {
	db := r.getDB(tx)

	var recs []*models.ProjectRecommendation
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("skill_match_score DESC, title").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to get project recommendations: %w", err)
	}

	return recs, nil
}

func (r *projectRecommendationRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID string) error {
	db := r.getDB(tx)

	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ProjectRecommendation{}).Error; err != nil {
		return fmt.Errorf("failed to delete project recommendations: %w", err)
	}

	return nil
}

// ===== SKILL GAPS =====

type skillGapRepository struct {
	db *gorm.DB
}

func NewSkillGapPostgreSQL(db *gorm.DB) repositories.SkillGapRepository {
	return &skillGapRepository{db: db}
}

func (r *skillGapRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// Upsert writes the report keyed on (user_id, target_role).
func (r *skillGapRepository) Upsert(ctx context.Context, tx *gorm.DB, gap *models.SkillGap) error {
	db := r.getDB(tx)

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "target_role"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"missing_skills", "current_match_percentage", "learning_path", "updated_at",
			}),
		}).
		Create(gap).Error
	if err != nil {
		return fmt.Errorf("failed to upsert skill gap: %w", err)
	}

	return nil
}

func (r *skillGapRepository) GetByUserAndRole(ctx context.Context, tx *gorm.DB, userID, targetRole string) (*models.SkillGap, error) {
	db := r.getDB(tx)

	var gap models.SkillGap
	err := db.WithContext(ctx).
		First(&gap, "user_id = ? AND target_role = ?", userID, targetRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get skill gap: %w", err)
	}

	return &gap, nil
}

func (r *skillGapRepository) GetByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*models.SkillGap, error) {
	db := r.getDB(tx)

	var gaps []*models.SkillGap
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&gaps).Error; err != nil {
		return nil, fmt.Errorf("failed to get skill gaps: %w", err)
	}

	return gaps, nil
}

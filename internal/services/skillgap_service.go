package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/catalog"
	"github.com/CareerPath-2025/recommendation-service/internal/matching"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
)

// defaultTargetRole is used when the profile declares no target role.
const defaultTargetRole = "Software Developer"

type skillGapService struct {
	repo    repositories.Repository
	db      *gorm.DB
	logger  *slog.Logger
	catalog *catalog.Catalog
	scorer  *matching.Scorer
}

func NewSkillGapService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, cat *catalog.Catalog, scorer *matching.Scorer) SkillGapService {
	return &skillGapService{
		repo:    repo,
		db:      db,
		logger:  logger,
		catalog: cat,
		scorer:  scorer,
	}
}

// Analyze builds the skill gap report for the profile's target role and
// persists it keyed on (user_id, target_role).
func (s *skillGapService) Analyze(ctx context.Context, profile *models.Profile) (*SkillGapReport, error) {
	report := BuildSkillGapReport(s.catalog, s.scorer, profile)

	if !report.RoleRecognized {
		s.logger.Warn("Unrecognized target role, using baseline skill profile",
			"user_id", profile.ID, "target_role", report.TargetRole)
	}

	gap := &models.SkillGap{
		UserID:                 profile.ID,
		TargetRole:             report.TargetRole,
		MissingSkills:          datatypes.JSONSlice[string](report.MissingSkills),
		CurrentMatchPercentage: report.CurrentMatchPercentage,
		LearningPath:           datatypes.NewJSONType(report.LearningPath),
	}
	if err := s.repo.SkillGap().Upsert(ctx, nil, gap); err != nil {
		return nil, fmt.Errorf("failed to persist skill gap: %w", err)
	}

	s.logger.Info("Generated skill gap report",
		"user_id", profile.ID,
		"target_role", report.TargetRole,
		"missing", len(report.MissingSkills),
		"match_percentage", report.CurrentMatchPercentage)

	return report, nil
}

func (s *skillGapService) GetByUser(ctx context.Context, userID string) ([]*models.SkillGap, error) {
	gaps, err := s.repo.SkillGap().GetByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill gaps: %w", err)
	}
	return gaps, nil
}

// Roles lists the target roles the catalog carries a skill profile for,
// sorted for stable output.
func (s *skillGapService) Roles() []string {
	roles := s.catalog.Roles()
	sort.Strings(roles)
	return roles
}

// BuildSkillGapReport computes the report without touching storage.
// TargetRole in the result echoes the profile's declared role (or the
// default when blank), even when the catalog fell back to the baseline
// skill profile.
func BuildSkillGapReport(cat *catalog.Catalog, scorer *matching.Scorer, profile *models.Profile) *SkillGapReport {
	targetRole := profile.TargetRole
	if targetRole == "" {
		targetRole = defaultTargetRole
	}

	required, recognized := cat.RequiredSkills(targetRole)
	userSkills := profile.SkillNames()

	missing := scorer.Missing(userSkills, required)

	matchPct := 100
	if len(required) > 0 {
		matchPct = int(math.Round(float64(len(required)-len(missing)) / float64(len(required)) * 100))
	}

	path := make([]models.LearningPathItem, len(missing))
	for i, skill := range missing {
		path[i] = models.LearningPathItem{
			Skill:          skill,
			Priority:       cat.Priority(skill),
			EstimatedWeeks: cat.EstimatedWeeks(skill),
			Resources:      cat.Resources(skill),
		}
	}

	return &SkillGapReport{
		UserID:                 profile.ID,
		TargetRole:             targetRole,
		RoleRecognized:         recognized,
		RequiredSkills:         required,
		MissingSkills:          missing,
		CurrentMatchPercentage: matchPct,
		LearningPath:           path,
	}
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/catalog"
	"github.com/CareerPath-2025/recommendation-service/internal/matching"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
)

// maxProjectResults caps how many project suggestions are persisted per run.
const maxProjectResults = 3

type projectService struct {
	repo    repositories.Repository
	db      *gorm.DB
	logger  *slog.Logger
	catalog *catalog.Catalog
	scorer  *matching.Scorer
}

func NewProjectService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, cat *catalog.Catalog, scorer *matching.Scorer) ProjectService {
	return &projectService{
		repo:    repo,
		db:      db,
		logger:  logger,
		catalog: cat,
		scorer:  scorer,
	}
}

// Recommend filters catalog templates by the profile's branch, scores
// their tech stacks against the declared skills and persists the top
// picks. A branch with no eligible templates yields an empty result,
// not an error.
func (s *projectService) Recommend(ctx context.Context, profile *models.Profile) ([]*models.ProjectRecommendation, error) {
	recs := BuildProjectRecommendations(s.catalog, s.scorer, profile)

	if len(recs) == 0 {
		s.logger.Info("No eligible project templates for branch",
			"user_id", profile.ID, "branch", profile.Branch)
		return []*models.ProjectRecommendation{}, nil
	}

	if err := s.repo.ProjectRecommendation().UpsertBatch(ctx, nil, recs); err != nil {
		return nil, fmt.Errorf("failed to persist project recommendations: %w", err)
	}

	s.logger.Info("Generated project recommendations",
		"user_id", profile.ID, "branch", profile.Branch, "count", len(recs))

	return recs, nil
}

func (s *projectService) GetByUser(ctx context.Context, userID string) ([]*models.ProjectRecommendation, error) {
	recs, err := s.repo.ProjectRecommendation().GetByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project recommendations: %w", err)
	}
	return recs, nil
}

// BuildProjectRecommendations computes the scored top picks without
// touching storage. Eligibility is an exact branch match; the sort is
// stable so equal scores keep catalog order.
func BuildProjectRecommendations(cat *catalog.Catalog, scorer *matching.Scorer, profile *models.Profile) []*models.ProjectRecommendation {
	userSkills := profile.SkillNames()

	type scored struct {
		template catalog.ProjectTemplate
		result   matching.Result
	}

	eligible := make([]scored, 0)
	for _, tmpl := range cat.Templates() {
		if !tmpl.SuitableForBranch(profile.Branch) {
			continue
		}
		eligible = append(eligible, scored{
			template: tmpl,
			result:   scorer.Score(userSkills, tmpl.TechStack),
		})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].result.Score > eligible[j].result.Score
	})

	if len(eligible) > maxProjectResults {
		eligible = eligible[:maxProjectResults]
	}

	recs := make([]*models.ProjectRecommendation, len(eligible))
	for i, e := range eligible {
		recs[i] = &models.ProjectRecommendation{
			UserID:            profile.ID,
			Title:             e.template.Title,
			Description:       e.template.Description,
			Difficulty:        e.template.Difficulty,
			EstimatedDuration: e.template.EstimatedDuration,
			TechStack:         datatypes.JSONSlice[string](e.template.TechStack),
			LearningOutcomes:  datatypes.JSONSlice[string](e.template.LearningOutcomes),
			ImpactScore:       e.template.ImpactScore,
			SkillMatchScore:   e.result.Score,
			MatchingSkills:    datatypes.JSONSlice[string](e.result.MatchingSkills),
		}
	}
	return recs
}

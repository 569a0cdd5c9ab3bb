package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"gorm.io/gorm"

	"github.com/CareerPath-2025/recommendation-service/internal/cache"
	"github.com/CareerPath-2025/recommendation-service/internal/matching"
	"github.com/CareerPath-2025/recommendation-service/internal/models"
	"github.com/CareerPath-2025/recommendation-service/internal/repositories"
)

// maxInternshipResults caps the ranked list returned to a student.
const maxInternshipResults = 20

// activeOpportunitiesCacheKey lives under the "list:" namespace so the
// opportunity write paths invalidate it together with the paginated
// listing cache.
const activeOpportunitiesCacheKey = "list:active"

type internshipService struct {
	repo   repositories.Repository
	db     *gorm.DB
	logger *slog.Logger
	scorer *matching.Scorer
	cache  *cache.CacheManager
}

func NewInternshipService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, scorer *matching.Scorer, cacheManager *cache.CacheManager) InternshipService {
	if cacheManager == nil {
		cacheManager = cache.NewCacheManager(nil)
	}
	return &internshipService{
		repo:   repo,
		db:     db,
		logger: logger,
		scorer: scorer,
		cache:  cacheManager,
	}
}

// Recommend scores every active posting against the profile's declared
// skills and returns the best matches. Stored rows are never mutated;
// match annotations live on copies.
func (s *internshipService) Recommend(ctx context.Context, profile *models.Profile) ([]*models.Opportunity, error) {
	opportunities, err := s.listActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active opportunities: %w", err)
	}

	ranked := RankOpportunities(s.scorer, profile.SkillNames(), opportunities)

	s.logger.Info("Ranked internship opportunities",
		"user_id", profile.ID,
		"candidates", len(opportunities),
		"returned", len(ranked))

	return ranked, nil
}

// listActive loads the active postings through the opportunity cache.
// Every student generation run reads the same listing, so one cached
// copy serves them all until a write path invalidates it.
func (s *internshipService) listActive(ctx context.Context) ([]*models.Opportunity, error) {
	var opportunities []*models.Opportunity
	err := s.cache.Opportunity.CacheOrExecute(ctx, activeOpportunitiesCacheKey, &opportunities,
		cache.OpportunityCacheConfig.TTL, func() (interface{}, error) {
			return s.repo.Opportunity().ListActive(ctx, nil)
		})
	if err != nil {
		return nil, err
	}
	return opportunities, nil
}

// RankOpportunities scores each posting, sorts by score descending and
// returns the top results as annotated copies. The sort is stable, so
// postings with equal scores keep their input order.
func RankOpportunities(scorer *matching.Scorer, userSkills []string, opportunities []*models.Opportunity) []*models.Opportunity {
	ranked := make([]*models.Opportunity, 0, len(opportunities))
	for _, opp := range opportunities {
		result := scorer.Score(userSkills, opp.SkillsRequired)

		annotated := *opp
		score := result.Score
		annotated.MatchScore = &score
		annotated.MatchingSkills = result.MatchingSkills
		ranked = append(ranked, &annotated)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].MatchScore > *ranked[j].MatchScore
	})

	if len(ranked) > maxInternshipResults {
		ranked = ranked[:maxInternshipResults]
	}
	return ranked
}
